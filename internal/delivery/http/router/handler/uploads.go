package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"dealfinder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// formFiles returns the uploads sent under field. Non-multipart requests have none.
func formFiles(c echo.Context, field string) []service.ImageUpload {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	headers := form.File[field]
	uploads := make([]service.ImageUpload, 0, len(headers))
	for _, fh := range headers {
		uploads = append(uploads, toUpload(fh))
	}

	return uploads
}

// formFile returns the first upload sent under field, or nil.
func formFile(c echo.Context, field string) *service.ImageUpload {
	uploads := formFiles(c, field)
	if len(uploads) == 0 {
		return nil
	}

	return &uploads[0]
}

func toUpload(fh *multipart.FileHeader) service.ImageUpload {
	return service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
