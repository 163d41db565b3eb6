package style

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Role is a semantic color slot. Templates reference roles, never literal colors.
type Role int

const (
	Primary Role = iota
	Secondary
	Accent
	Text
	Light
	Dark
	Metallic
	Highlight
	roleCount
)

var roleNames = [roleCount]string{"primary", "secondary", "accent", "text", "light", "dark", "metallic", "highlight"}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Roles lists every role in declaration order.
func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// Palette maps each role to a color. The zero value is not useful; palettes
// come from the Catalog.
type Palette struct {
	ID     string
	colors [roleCount]color.NRGBA
	hex    [roleCount]string
}

// Color returns the opaque color assigned to r.
func (p Palette) Color(r Role) color.NRGBA {
	return p.colors[r]
}

// Hex returns the "#rrggbb" form of the color assigned to r.
func (p Palette) Hex(r Role) string {
	return p.hex[r]
}

// Readable returns whichever candidate role has the larger perceptual
// distance from bg.
func (p Palette) Readable(bg color.Color, candidates ...Role) Role {
	base, _ := colorful.MakeColor(bg)
	best, bestDist := Text, -1.0
	for _, r := range candidates {
		c, _ := colorful.MakeColor(p.colors[r])
		if d := base.DistanceCIEDE2000(c); d > bestDist {
			best, bestDist = r, d
		}
	}
	return best
}

func newPalette(id string, hex [roleCount]string) Palette {
	p := Palette{ID: id, hex: hex}
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("style: palette %s role %s: %v", id, Role(i), err))
		}
		r, g, b := c.RGB255()
		p.colors[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}

// builtinPalettes in role order: primary, secondary, accent, text, light, dark, metallic, highlight.
var builtinPalettes = map[string][roleCount]string{
	"executive_navy":  {"#1e3a8a", "#3b82f6", "#60a5fa", "#ffffff", "#dbeafe", "#1e40af", "#c0c0c0", "#fbbf24"},
	"luxury_gold":     {"#92400e", "#d97706", "#f59e0b", "#ffffff", "#fef3c7", "#78350f", "#ffd700", "#fbbf24"},
	"tech_cyan":       {"#0e7490", "#0891b2", "#06b6d4", "#ffffff", "#cffafe", "#164e63", "#67e8f9", "#22d3ee"},
	"creative_purple": {"#7c2d12", "#a21caf", "#c026d3", "#ffffff", "#fae8ff", "#581c87", "#d8b4fe", "#a855f7"},
	"medical_blue":    {"#1e40af", "#2563eb", "#3b82f6", "#ffffff", "#dbeafe", "#1e3a8a", "#93c5fd", "#60a5fa"},
	"finance_green":   {"#065f46", "#059669", "#10b981", "#ffffff", "#d1fae5", "#064e3b", "#6ee7b7", "#34d399"},
	"law_burgundy":    {"#7f1d1d", "#991b1b", "#dc2626", "#ffffff", "#fee2e2", "#7f1d1d", "#fca5a5", "#f87171"},
	"startup_orange":  {"#c2410c", "#ea580c", "#f97316", "#ffffff", "#fed7aa", "#9a3412", "#fdba74", "#fb923c"},
}
