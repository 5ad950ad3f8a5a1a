package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/promotions", nil), rec)

	m.HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_ValidationErrors(t *testing.T) {
	var fieldErrs entity.ValidationErrors
	fieldErrs.Add("title", "is required")

	rec, body := handle(t, errors.Wrap(fieldErrs, "invalid promotion"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.JSONEq(t, `[{"field":"title","reason":"is required"}]`, string(body.Error.Details))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handle(t, domainerrors.ErrPromotionNotFound.WrapMessage("failed to find promotion"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, "PROMOTION_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "method not allowed", body.Message)
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handle(t, errors.New("pq: relation \"promotions\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Empty(t, body.Error.Details)
}

func TestErrorMiddleware_LogsErrorOrigin(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/promotions", nil), rec)

	m.HandleHTTPError(errors.Wrap(errors.New("connection reset"), "count promotions"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"Unhandled error"`)
	assert.Contains(t, buf.String(), "error_middleware_test.go")
}
