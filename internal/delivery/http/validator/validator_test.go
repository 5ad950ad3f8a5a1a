package validator

import (
	"testing"

	"dealfinder/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Website  string `json:"website" validate:"omitempty,httpurl"`
	Role     string `json:"role" validate:"omitempty,oneof=user business"`
	Internal string `json:"-"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&signupRequest{Name: "Luigi", Email: "luigi@example.com", Website: "https://luigi.example.com"}))

	err := v.Validate(&signupRequest{Name: "Lu", Email: "nope", Website: "ftp://example.com", Role: "admin"})
	require.Error(t, err)

	fieldErrs, ok := err.(entity.ValidationErrors)
	require.True(t, ok)

	got := map[string]string{}
	for _, fe := range fieldErrs {
		got[fe.Field] = fe.Reason
	}
	assert.Equal(t, map[string]string{
		"name":    "must be at least 3 characters",
		"email":   "must be a valid email address",
		"website": "must be a valid URL with HTTP or HTTPS",
		"role":    "must be one of: user business",
	}, got)
}
