package lib

import (
	"io"

	"github.com/yeqown/go-qrcode"
)

// WriteQRCode encodes text as a JPEG QR code into w.
func WriteQRCode(w io.Writer, text string) error {
	qrc, err := qrcode.New(text)
	if err != nil {
		return err
	}
	return qrc.SaveTo(w)
}
