// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"dealfinder/internal/delivery/http/middleware"
	"dealfinder/internal/domain/entity"
	domainerrors "dealfinder/internal/domain/errors"
	"dealfinder/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

// requireActor returns the caller placed in the context by the auth middleware.
func requireActor(c echo.Context) (entity.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthorized.WrapMessage("actor missing from context")
	}

	return actor, nil
}

// pathID parses a UUID path parameter. Malformed ids are reported as notFound.
func pathID(c echo.Context, name string, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, notFound.WrapMessage("malformed id " + c.Param(name))
	}

	return id, nil
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// queryInt reads a positive integer query parameter; anything else yields 0.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

// queryBool reads an optional boolean query parameter.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &b
}

// formFields reads optional form values and collects the ones that fail to parse.
type formFields struct {
	c    echo.Context
	errs entity.ValidationErrors
}

func newFormFields(c echo.Context) *formFields {
	return &formFields{c: c}
}

// has reports whether the field was sent at all, even empty.
func (f *formFields) has(name string) bool {
	params, err := f.c.FormParams()
	if err != nil {
		return false
	}
	_, ok := params[name]

	return ok
}

func (f *formFields) str(name string) string {
	return strings.TrimSpace(f.c.FormValue(name))
}

// optStr is nil when the field is absent.
func (f *formFields) optStr(name string) *string {
	if !f.has(name) {
		return nil
	}
	v := f.str(name)

	return &v
}

// optFloat accepts finite numbers only. NaN and Inf cannot be encoded as JSON.
func (f *formFields) optFloat(name string) *float64 {
	raw := f.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		f.errs.Add(name, "must be a number")

		return nil
	}

	return &v
}

func (f *formFields) optDecimal(name string) *decimal.Decimal {
	raw := f.str(name)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		f.errs.Add(name, "must be a number")

		return nil
	}

	return &v
}

func (f *formFields) optBool(name string) *bool {
	raw := f.str(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		f.errs.Add(name, "must be true or false")

		return nil
	}

	return &v
}

// optTime accepts RFC 3339 timestamps and plain dates.
func (f *formFields) optTime(name string) *time.Time {
	raw := f.str(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, dateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	f.errs.Add(name, "must be a date")

	return nil
}

// optJSON decodes a JSON encoded form field into out and reports whether it was present.
func (f *formFields) optJSON(name string, out any) bool {
	raw := f.str(name)
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		f.errs.Add(name, "must be valid JSON")

		return false
	}

	return true
}

func (f *formFields) err() error {
	return f.errs.Err()
}
