package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required,min=2"`
	Status string `json:"status" validate:"omitempty,is-event-status"`
	Method string `json:"method" validate:"omitempty,is-application-method"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "jamie@example.com",
		Name:   "Jamie",
		Status: "PUBLISHED",
		Method: "PLATFORM",
	})
	assert.NoError(t, err)
}

func TestValidator_FieldNamesUseJSONTags(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Name: "J"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "name")
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "Must be at least 2 characters long", vErr.Errors["name"])
}

func TestValidator_EnumRules(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "jamie@example.com",
		Name:   "Jamie",
		Status: "OPEN",
	})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be one of: PUBLISHED, CANCELLED, ARCHIVED, DRAFT", vErr.Errors["status"])
}

func TestValidator_ApplicationMethodRule(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:  "jamie@example.com",
		Name:   "Jamie",
		Method: "CARRIER_PIGEON",
	})
	require.Error(t, err)

	vErr := err.(*ValidationError)
	assert.Equal(t, "Must be one of: PLATFORM, EXTERNAL", vErr.Errors["method"])
}
