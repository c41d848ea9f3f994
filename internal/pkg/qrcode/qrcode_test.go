package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := DefaultGenerator{BaseURL: "http://localhost:8000"}

	png, err := gen.Generate("abc-123")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected a PNG payload")

	other, err := gen.Generate("def-456")
	require.NoError(t, err)
	assert.NotEqual(t, png, other)
}
