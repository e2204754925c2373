package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Backend Engineer", "backend-engineer-"},
		{"Go & gRPC: a deep dive!", "go-grpc-a-deep-dive-"},
		{"  spaced   out  ", "spaced-out-"},
		{"!!!", "untitled-"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			slug := MakeSlug(tt.title)
			assert.True(t, strings.HasPrefix(slug, tt.want), "got %q, want prefix %q", slug, tt.want)
		})
	}

	// Two slugs from the same title stay distinct via the suffix format.
	a := MakeSlug("Same Title")
	assert.Regexp(t, `^same-title-\d+$`, a)
}

func TestRegistrationTotal(t *testing.T) {
	price := 50000.0
	assert.Equal(t, 52500.0, RegistrationTotal(true, &price))
	assert.Equal(t, 0.0, RegistrationTotal(false, nil))
	assert.Equal(t, 0.0, RegistrationTotal(false, &price))
	assert.Equal(t, 0.0, RegistrationTotal(true, nil))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
	assert.False(t, isUUID("backend-engineer-1724900000000"))
}
