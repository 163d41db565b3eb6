package imagepkg

import (
	"image"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/cardforge/internal/cards"
)

// QRModulePixels is the minimum edge length of one QR module in the encoded
// raster. At 300 DPI this keeps modules at about 0.34 mm.
const QRModulePixels = 4

var vcardEscaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\r\n", `\n`, "\n", `\n`)

// VCard builds a vCard 3.0 text block for c. Every property is emitted, even
// when its value is empty, so decoders always see the same structure.
func VCard(c cards.Contact) string {
	e := vcardEscaper.Replace
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + e(c.Name),
		"ORG:" + e(c.Company),
		"TITLE:" + e(c.JobTitle),
		"EMAIL:" + e(c.Email),
		"TEL:" + e(c.Phone),
		"URL:" + e(c.Website),
		"ADR:;;" + e(c.Address) + ";;;;",
		"END:VCARD",
	}
	return strings.Join(lines, "\r\n")
}

// EncodeContactQR renders the vCard for c as a QR code with medium error
// correction and QRModulePixels pixels per module. Output is deterministic.
func EncodeContactQR(c cards.Contact) (image.Image, error) {
	q, err := qrcode.New(VCard(c), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	modules := len(q.Bitmap())
	return q.Image(modules * QRModulePixels), nil
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}
