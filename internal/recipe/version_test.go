package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dawnmagnet/mirrorgen/internal/recipe"
)

func TestExtractMajorVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
	}{
		{"8", "8"},
		{"8.5", "8"},
		{"8.5-beta", "8"},
		{"9-stream", "9"},
		{"8_1", "8"},
		{"stream9", "9"},
		{"v8.5", "8"},
		// No digits at all: fall back to the candidate unchanged.
		{"latest", "latest"},
		{"stream-9", "stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, recipe.ExtractMajorVersion(tt.version), "version %q", tt.version)
	}
}

func TestExtractMajorVersionSeparatorPriority(t *testing.T) {
	t.Parallel()

	// "." wins over "-" even when the dash comes first in the string.
	assert.Equal(t, "81", recipe.ExtractMajorVersion("8-1.2"))
}
