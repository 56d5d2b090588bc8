package utils

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MaxQRSize     = 1024
	minQRSize     = 64
)

var ErrEmptyQRContent = errors.New("QR content cannot be empty")

// GenerateQRCode renders content as a square PNG of size pixels.
// A size <= 0 means DefaultQRSize; sizes are clamped to [64, 1024].
func GenerateQRCode(content string, size int) ([]byte, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyQRContent
	}
	switch {
	case size <= 0:
		size = DefaultQRSize
	case size < minQRSize:
		size = minQRSize
	case size > MaxQRSize:
		size = MaxQRSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
