// Package style is the static registry of color palettes and font roles.
package style

import (
	"sort"

	"golang.org/x/image/font"

	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/logging"
)

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	palettes map[string]Palette
	fonts    map[FontRole]loadedFont
}

// NewCatalog registers the built-in palettes and loads one face per font role
// from fontDir.
func NewCatalog(fontDir string) *Catalog {
	c := &Catalog{
		palettes: make(map[string]Palette, len(builtinPalettes)),
		fonts:    make(map[FontRole]loadedFont, len(fontFiles)),
	}
	for id, hex := range builtinPalettes {
		c.palettes[id] = newPalette(id, hex)
	}
	for _, role := range FontRoles() {
		c.fonts[role] = loadFont(fontDir, role)
	}
	return c
}

// Palette resolves a palette id.
func (c *Catalog) Palette(id string) (Palette, error) {
	p, ok := c.palettes[id]
	if !ok {
		return Palette{}, domain.UnknownPalette(id)
	}
	return p, nil
}

// PaletteIDs returns the registered palette ids, sorted.
func (c *Catalog) PaletteIDs() []string {
	ids := make([]string, 0, len(c.palettes))
	for id := range c.palettes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Face returns a new face for role at size pixels. Faces are not safe for
// concurrent use, so every render asks for its own.
func (c *Catalog) Face(role FontRole, size float64) font.Face {
	lf, ok := c.fonts[role]
	if !ok {
		lf = c.fonts[DefaultFontRole]
	}
	face, err := newFace(lf.font, size)
	if err != nil {
		logging.Warn("Font face creation failed, using embedded fallback", "role", string(role), "error", err)
		face, _ = newFace(embeddedFont(role).font, size)
	}
	return face
}

// FontSource reports where a role's face was loaded from (a file path or
// "embedded:<name>").
func (c *Catalog) FontSource(role FontRole) string {
	if lf, ok := c.fonts[role]; ok {
		return lf.source
	}
	return c.fonts[DefaultFontRole].source
}
