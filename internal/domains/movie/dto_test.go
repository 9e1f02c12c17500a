package movie

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr bool
	}{
		{name: "number", body: `{"year": 2024}`, want: 2024},
		{name: "numeric string", body: `{"year": "2024"}`, want: 2024},
		{name: "null", body: `{"year": null}`, want: 0},
		{name: "non-numeric string", body: `{"year": "twenty"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateMovieReq
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(req.Year))
		})
	}
}

func TestCreateMovieReqValidate(t *testing.T) {
	valid := CreateMovieReq{
		Title:        "X",
		Year:         2024,
		VideoURL:     "http://localhost:9000/videos/a.mp4",
		ThumbnailURL: "http://localhost:9000/images/a.png",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateMovieReq)
	}{
		{"missing title", func(r *CreateMovieReq) { r.Title = "" }},
		{"missing year", func(r *CreateMovieReq) { r.Year = 0 }},
		{"missing videoUrl", func(r *CreateMovieReq) { r.VideoURL = "" }},
		{"missing thumbnailUrl", func(r *CreateMovieReq) { r.ThumbnailURL = "" }},
		{"malformed videoUrl", func(r *CreateMovieReq) { r.VideoURL = "::not-a-url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
