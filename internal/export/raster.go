package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	imagepkg "github.com/youruser/cardforge/internal/image"
)

// DPI written into raster metadata.
const DPI = 300

// JPEGQuality is the fixed lossy quality.
const JPEGQuality = 95

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return withPNGDensity(buf.Bytes(), DPI)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	flat := imagepkg.Flatten(img, color.White)
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, err
	}
	return withJFIFDensity(buf.Bytes(), DPI)
}

// withPNGDensity inserts a pHYs chunk right after IHDR.
func withPNGDensity(data []byte, dpi int) ([]byte, error) {
	const ihdrEnd = 8 + 4 + 4 + 13 + 4
	if len(data) < ihdrEnd || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, errors.New("png: unexpected header")
	}
	ppm := uint32(float64(dpi)/0.0254 + 0.5)

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:ihdrEnd]...)
	out = append(out, chunk...)
	return append(out, data[ihdrEnd:]...), nil
}

// withJFIFDensity inserts (or rewrites) the JFIF APP0 segment so it carries
// the density in dots per inch.
func withJFIFDensity(data []byte, dpi int) ([]byte, error) {
	if len(data) < 4 || data[0] != 0xff || data[1] != 0xd8 {
		return nil, errors.New("jpeg: missing SOI")
	}
	app0 := []byte{
		0xff, 0xe0, 0x00, 0x10,
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x01, // version 1.1
		0x01, // units: dots per inch
		byte(dpi >> 8), byte(dpi), byte(dpi >> 8), byte(dpi),
		0x00, 0x00, // no thumbnail
	}
	rest := data[2:]
	if len(rest) >= 4 && rest[0] == 0xff && rest[1] == 0xe0 {
		segLen := int(rest[2])<<8 | int(rest[3])
		if 2+segLen <= len(rest) {
			rest = rest[2+segLen:]
		}
	}
	out := make([]byte, 0, len(data)+len(app0))
	out = append(out, 0xff, 0xd8)
	out = append(out, app0...)
	return append(out, rest...), nil
}
