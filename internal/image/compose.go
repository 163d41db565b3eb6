package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// OverlayKind tells logo and QR overlays apart.
type OverlayKind string

const (
	OverlayLogo OverlayKind = "logo"
	OverlayQR   OverlayKind = "qr"
)

// Overlay is a raster painted onto the card with its top-left corner at Pos.
type Overlay struct {
	Kind  OverlayKind
	Image image.Image
	Pos   image.Point
}

// Bounds is the card-space rectangle the overlay covers.
func (o Overlay) Bounds() image.Rectangle {
	return image.Rectangle{Min: o.Pos, Max: o.Pos.Add(o.Image.Bounds().Size())}
}

// Composite paints overlays onto a copy of base in order, later ones on top.
// Overlays with transparency are alpha-blended so transparent pixels leave the
// base visible; opaque overlays are pasted as-is.
func Composite(base image.Image, overlays []Overlay) *image.NRGBA {
	out := imaging.Clone(base)
	for _, o := range overlays {
		if o.Image == nil {
			continue
		}
		if hasAlpha(o.Image) {
			out = imaging.Overlay(out, o.Image, o.Pos, 1.0)
		} else {
			out = imaging.Paste(out, o.Image, o.Pos)
		}
	}
	return out
}

// Flatten composites img over a solid background, removing transparency.
func Flatten(img image.Image, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Point{}, 1.0)
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}
