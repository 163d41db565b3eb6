package style

import (
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/youruser/cardforge/internal/logging"
)

// FontRole names a typographic role independent of the installed face.
type FontRole string

const (
	SerifElegant FontRole = "serif_elegant"
	SansModern   FontRole = "sans_modern"
	SansRounded  FontRole = "sans_rounded"
	MonoTech     FontRole = "mono_tech"
	ScriptLuxury FontRole = "script_luxury"
)

// DefaultFontRole is used for unknown or empty roles.
const DefaultFontRole = SansModern

var fontFiles = map[FontRole]string{
	SerifElegant: "DejaVuSerif.ttf",
	SansModern:   "DejaVuSans.ttf",
	SansRounded:  "DejaVuSans.ttf",
	MonoTech:     "DejaVuSansMono.ttf",
	ScriptLuxury: "DejaVuSerif.ttf",
}

// FontRoles lists the supported roles.
func FontRoles() []FontRole {
	return []FontRole{SerifElegant, SansModern, SansRounded, MonoTech, ScriptLuxury}
}

type loadedFont struct {
	font   *opentype.Font
	source string
}

// loadFont reads the role's face from dir, falling back to the embedded Go
// fonts when the file is missing or unparsable.
func loadFont(dir string, role FontRole) loadedFont {
	path := filepath.Join(dir, fontFiles[role])
	raw, err := os.ReadFile(path)
	if err == nil {
		var f *opentype.Font
		if f, err = opentype.Parse(raw); err == nil {
			return loadedFont{font: f, source: path}
		}
	}
	logging.Warn("Font unavailable, using embedded fallback", "role", string(role), "path", path, "error", err)
	return embeddedFont(role)
}

func embeddedFont(role FontRole) loadedFont {
	raw, name := goregular.TTF, "embedded:goregular"
	if role == MonoTech {
		raw, name = gomono.TTF, "embedded:gomono"
	}
	f, err := opentype.Parse(raw)
	if err != nil {
		panic("style: embedded font: " + err.Error())
	}
	return loadedFont{font: f, source: name}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
