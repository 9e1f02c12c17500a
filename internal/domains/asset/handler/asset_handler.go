package handler

import (
	"io"
	"net/http"

	"media-catalog/internal/domains/asset"
	"media-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type AssetHandler struct {
	service  asset.Service
	maxBytes int64
}

func NewAssetHandler(svc asset.Service, maxBytes int64) *AssetHandler {
	return &AssetHandler{
		service:  svc,
		maxBytes: maxBytes,
	}
}

// Upload handles POST /upload?fileType={videos|images} with a multipart
// "file" part.
func (h *AssetHandler) Upload(c *gin.Context) {
	fileType := c.Query("fileType")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Message(c, http.StatusBadRequest, "No file was uploaded.")
		return
	}
	if fileHeader.Size > h.maxBytes {
		response.Message(c, http.StatusBadRequest, "File exceeds the upload size limit.")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Uploaded file could not be read.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Uploaded file could not be read.")
		return
	}

	url, err := h.service.Upload(c.Request.Context(), fileType, &asset.File{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		status := asset.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.Message(c, status, "Internal server error.")
			return
		}
		response.Message(c, status, err.Error())
		return
	}

	response.Upload(c, url)
}
