package services

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(gameID uint) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the public game result page as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(gameID uint) ([]byte, error) {
	qrData := fmt.Sprintf("%s/game/%d", strings.TrimRight(g.BaseURL, "/"), gameID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
