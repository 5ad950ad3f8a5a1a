package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "dealfinder/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/promotions", http.NoBody)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var seen string
	m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))
	err := m.Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFrom(c.Request().Context())

		return nil
	})(c)
	require.NoError(t, err)

	return seen, rec
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	seen, rec := runRequestID(t, "client-abc")

	assert.Equal(t, "client-abc", seen)
	assert.Equal(t, "client-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	seen, rec := runRequestID(t, "")

	id, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	seen, _ := runRequestID(t, strings.Repeat("x", maxRequestIDLength+1))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}
