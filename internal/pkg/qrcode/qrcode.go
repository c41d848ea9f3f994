// Package qrcode renders pickup tokens as scannable PNG codes.
package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

type Generator interface {
	Generate(pickupToken string) ([]byte, error)
}

// DefaultGenerator encodes a verification URL containing the pickup token.
type DefaultGenerator struct {
	BaseURL string
}

func (g DefaultGenerator) Generate(pickupToken string) ([]byte, error) {
	data := fmt.Sprintf("%s/pickup?token=%s", g.BaseURL, pickupToken)
	return qr.Encode(data, qr.Medium, 256)
}
