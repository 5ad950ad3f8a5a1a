// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success     bool                    `json:"success"`
	Code        int                     `json:"code"`    // HTTP status code
	Message     string                  `json:"message"` // User-friendly message
	Data        any                     `json:"data,omitempty"`
	RedirectURL string                  `json:"redirectUrl,omitempty"`
	Count       *int                    `json:"count,omitempty"` // Items on this page
	Total       *int64                  `json:"total,omitempty"`
	TotalPages  *int                    `json:"totalPages,omitempty"`
	CurrentPage *int                    `json:"currentPage,omitempty"`
	Error       *domainerrors.ErrorInfo `json:"error,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Redirect tells the client where to send the visitor next.
func Redirect(c echo.Context, url, message string) error {
	return c.JSON(http.StatusOK, Response{
		Success:     true,
		Code:        http.StatusOK,
		Message:     message,
		RedirectURL: url,
	})
}

// Paginated renders one page of a listing. Data is always an array, empty past the last page,
// and count is the number of items on this page.
func Paginated[T any](c echo.Context, page *entity.Page[T], message string) error {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	count := len(items)
	total := page.Total
	totalPages := page.TotalPages()
	currentPage := page.Page

	return c.JSON(http.StatusOK, Response{
		Success:     true,
		Code:        http.StatusOK,
		Message:     message,
		Data:        items,
		Count:       &count,
		Total:       &total,
		TotalPages:  &totalPages,
		CurrentPage: &currentPage,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	// Details should not be included for 5xx errors
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
