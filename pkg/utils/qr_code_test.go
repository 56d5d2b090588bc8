package utils

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQRCode(t *testing.T) {
	data, err := GenerateQRCode("https://example.com?utm_source=newsletter", 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestGenerateQRCode_SizeDefaults(t *testing.T) {
	data, err := GenerateQRCode("https://example.com", 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultQRSize, img.Bounds().Dx())

	data, err = GenerateQRCode("https://example.com", 5000)
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, MaxQRSize, img.Bounds().Dx())
}

func TestGenerateQRCode_Empty(t *testing.T) {
	_, err := GenerateQRCode("  ", 128)
	assert.ErrorIs(t, err, ErrEmptyQRContent)
}
