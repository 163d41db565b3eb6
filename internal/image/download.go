package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/youruser/cardforge/internal/util"
)

// LoadLogo opens a logo image from disk. EXIF orientation is applied; the
// file itself is only read.
func LoadLogo(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", path, err)
	}
	return img, nil
}

// DecodeLogo decodes an uploaded logo.
func DecodeLogo(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	return img, nil
}

// DownloadImage downloads an image from URL and returns image.Image (decoded).
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return DecodeLogo(bytes.NewReader(body))
}
