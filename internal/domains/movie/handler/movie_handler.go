package handler

import (
	"errors"
	"net/http"

	"media-catalog/internal/domains/movie"
	"media-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	service movie.Service
}

func NewMovieHandler(svc movie.Service) *MovieHandler {
	return &MovieHandler{
		service: svc,
	}
}

// Create handles POST /movies.
func (h *MovieHandler) Create(c *gin.Context) {
	var req movie.CreateMovieReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		status := movie.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.Message(c, status, "Internal server error.")
			return
		}
		response.Message(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, m)
}

// GetByID handles GET /movies/:id.
func (h *MovieHandler) GetByID(c *gin.Context) {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, movie.ErrNotFound) {
		response.Message(c, http.StatusNotFound, "Movie not found.")
		return
	}
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.JSON(http.StatusOK, m)
}

// List handles GET /movies. An empty catalog keeps the original wire
// shape: 404 with a message body rather than an empty array.
func (h *MovieHandler) List(c *gin.Context) {
	movies, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Message(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if len(movies) == 0 {
		response.Message(c, http.StatusNotFound, "No movies found.")
		return
	}

	c.JSON(http.StatusOK, movies)
}
