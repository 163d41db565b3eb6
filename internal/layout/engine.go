// Package layout turns a contact and a palette into a card raster using one of
// a fixed set of template routines.
package layout

import (
	"image"
	"sort"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/cardforge/internal/cards"
	imagepkg "github.com/youruser/cardforge/internal/image"
	"github.com/youruser/cardforge/internal/style"
)

// Card geometry: 3.5" x 2" at 300 DPI.
const (
	Width  = 1050
	Height = 600
	DPI    = 300
)

// Fallback is the template used for unknown ids.
const Fallback = "generic"

// FaceSource supplies font faces by role. *style.Catalog implements it.
type FaceSource interface {
	Face(role style.FontRole, size float64) font.Face
}

// Options are the per-card inputs besides contact and palette.
type Options struct {
	Template string
	Font     style.FontRole // headline face; empty uses the template's own
	Logo     image.Image
	QR       image.Image
}

// Card is a rendered base raster plus the overlays still to be composited.
type Card struct {
	Template string // resolved id, Fallback when the requested one is unknown
	Base     *image.RGBA
	Overlays []imagepkg.Overlay
}

// Engine renders cards. It holds no per-render state and may be shared.
type Engine struct {
	fonts FaceSource
}

// NewEngine returns an engine that draws text with faces from fonts.
func NewEngine(fonts FaceSource) *Engine {
	return &Engine{fonts: fonts}
}

// Render paints the selected template. Unknown template ids render the
// Fallback layout.
func (e *Engine) Render(c cards.Contact, p style.Palette, opts Options) *Card {
	id, t := lookup(opts.Template)

	cv := &canvas{
		dc:       gg.NewContext(Width, Height),
		fonts:    e.fonts,
		pal:      p,
		rec:      c,
		opts:     opts,
		headline: t.headline,
		faces:    map[faceKey]font.Face{},
	}
	if opts.Font != "" {
		cv.headline = opts.Font
	}
	t.render(cv)

	return &Card{
		Template: id,
		Base:     cv.dc.Image().(*image.RGBA),
		Overlays: cv.overlays,
	}
}

// Templates returns the registered template ids, sorted.
func Templates() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Known reports whether id names a registered template.
func Known(id string) bool {
	_, ok := templates[id]
	return ok
}

func lookup(id string) (string, template) {
	if t, ok := templates[id]; ok {
		return id, t
	}
	return Fallback, templates[Fallback]
}
