package checkin

import (
	"bytes"
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/ritrovo/ritrovo/internal/xio"
)

const (
	// MemberQRWidth renders a code small enough for a phone screen.
	MemberQRWidth uint8 = 10
	// EventQRWidth renders a code large enough to print and hang at the
	// venue entrance.
	EventQRWidth uint8 = 40
)

// RenderQR encodes the payload into a PNG QR code.
func RenderQR(payload string, width uint8) ([]byte, error) {
	qr, err := qrcode.New(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create qrcode: %w", err)
	}

	buf := new(bytes.Buffer)
	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(buf),
		standard.WithQRWidth(width),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		return nil, fmt.Errorf("failed to save qrcode: %w", err)
	}

	return buf.Bytes(), nil
}
