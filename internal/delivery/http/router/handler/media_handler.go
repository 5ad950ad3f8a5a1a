package handler

import (
	"net/http"

	"dealfinder/internal/domain/service"
	"dealfinder/internal/errors"

	"github.com/labstack/echo/v4"
)

// MediaHandler serves stored uploads back from the image bucket.
type MediaHandler struct {
	storage service.ImageStorage
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(storage service.ImageStorage) *MediaHandler {
	return &MediaHandler{storage: storage}
}

// Serve streams the object named by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	image, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return echo.ErrNotFound
		}

		return errors.WithStack(err)
	}
	defer image.Body.Close()

	contentType := image.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, image.Body)
}
