package main

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ericlagergren/radix/base64"
)

// qrSize is the side length in pixels of PNG QR codes.
const qrSize = 256

// qrText renders s as a QR code drawn with block characters.
func qrText(s string) (string, error) {
	if s == "" {
		return "", errors.New("qr: empty content")
	}
	q, err := qrcode.New(s, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("qr: %w", err)
	}
	return q.ToString(false), nil
}

// qrDataURI returns s as a PNG QR code in a data URI, ready to
// embed in HTML.
func qrDataURI(s string) (string, error) {
	if s == "" {
		return "", errors.New("qr: empty content")
	}
	png, err := qrcode.Encode(s, qrcode.Medium, qrSize)
	if err != nil {
		return "", fmt.Errorf("qr: %w", err)
	}
	return "data:image/png;base64," + base64.EncodeToString(png), nil
}
