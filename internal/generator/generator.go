// Package generator runs the single-card pipeline shared by the HTTP and CLI
// front ends: resolve style, load logo, encode QR, lay out, composite, encode.
package generator

import (
	"image"
	"time"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/export"
	imagepkg "github.com/youruser/cardforge/internal/image"
	"github.com/youruser/cardforge/internal/layout"
	"github.com/youruser/cardforge/internal/logging"
	"github.com/youruser/cardforge/internal/style"
)

// Request is one card to produce. At most one logo source is used, in the
// order Logo, LogoPath, LogoURL.
type Request struct {
	Contact  cards.Contact
	Style    cards.Style
	Format   string
	Logo     image.Image
	LogoPath string
	LogoURL  string
}

// Generator is safe for concurrent use.
type Generator struct {
	catalog  *style.Catalog
	engine   *layout.Engine
	lifetime time.Duration

	download func(url string) (image.Image, error)
}

// New returns a generator drawing from catalog. Artifacts carry lifetime as
// their recommended retention; zero keeps export.DefaultLifetime.
func New(catalog *style.Catalog, lifetime time.Duration) *Generator {
	if lifetime <= 0 {
		lifetime = export.DefaultLifetime
	}
	return &Generator{
		catalog:  catalog,
		engine:   layout.NewEngine(catalog),
		lifetime: lifetime,
		download: imagepkg.DownloadImage,
	}
}

// Catalog exposes the palettes and fonts the generator renders with.
func (g *Generator) Catalog() *style.Catalog { return g.catalog }

// Generate renders and encodes one card. Unknown formats and palettes are
// rejected before any rendering happens. A logo that cannot be loaded is
// logged and the card is produced without it.
func (g *Generator) Generate(req Request) (*export.Artifact, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	img, pal, err := g.Render(req)
	if err != nil {
		return nil, err
	}
	art, err := export.Encode(img, format, req.Contact, pal)
	if err != nil {
		return nil, err
	}
	art.Lifetime = g.lifetime
	return art, nil
}

// Render produces the composited raster without encoding it.
func (g *Generator) Render(req Request) (image.Image, style.Palette, error) {
	pal, err := g.catalog.Palette(req.Style.Palette)
	if err != nil {
		return nil, style.Palette{}, err
	}

	opts := layout.Options{
		Template: req.Style.Template,
		Font:     style.FontRole(req.Style.Font),
		Logo:     g.logo(req),
	}
	if req.Style.IncludeQR {
		qr, err := imagepkg.EncodeContactQR(req.Contact)
		if err != nil {
			return nil, style.Palette{}, domain.EncodeFailed("qr", err)
		}
		opts.QR = qr
	}

	if !layout.Known(req.Style.Template) {
		logging.Warn("unknown template, using fallback", "requested", req.Style.Template, "used", layout.Fallback)
	}
	card := g.engine.Render(req.Contact, pal, opts)
	return imagepkg.Composite(card.Base, card.Overlays), pal, nil
}

func (g *Generator) logo(req Request) image.Image {
	switch {
	case req.Logo != nil:
		return req.Logo
	case req.LogoPath != "":
		img, err := imagepkg.LoadLogo(req.LogoPath)
		if err != nil {
			logging.Warn("logo skipped", "path", req.LogoPath, "error", err)
			return nil
		}
		return img
	case req.LogoURL != "":
		img, err := g.download(req.LogoURL)
		if err != nil {
			logging.Warn("logo skipped", "url", req.LogoURL, "error", err)
			return nil
		}
		return img
	}
	return nil
}
