package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFix(t *testing.T, content string) *Source {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fix")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return NewSource(path)
}

func TestSampleParsesSpaceAndCommaSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "space", content: "-17.78 -63.18"},
		{name: "comma", content: "-17.78,-63.18"},
		{name: "comma with spaces", content: "-17.78, -63.18\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := writeFix(t, tt.content)
			require.True(t, source.Available())

			sample, err := source.Sample(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "-17.78", sample.Latitude)
			assert.Equal(t, "-63.18", sample.Longitude)
		})
	}
}

func TestMissingFileMeansUnavailable(t *testing.T) {
	t.Parallel()

	source := NewSource(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, source.Available())

	_, err := source.Sample(context.Background())
	require.Error(t, err)
}

func TestMalformedFixRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "one field", content: "-17.78"},
		{name: "three fields", content: "1 2 3"},
		{name: "not numbers", content: "north south"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := writeFix(t, tt.content)
			assert.False(t, source.Available())

			_, err := source.Sample(context.Background())
			require.ErrorIs(t, err, ErrMalformedFix)
		})
	}
}
