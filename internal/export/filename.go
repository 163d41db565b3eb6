package export

import (
	"strings"

	"github.com/google/uuid"
)

// Filename derives "<slug>_<8 hex chars><ext>" from a contact name.
func Filename(name string, f Format) string {
	return Slug(name) + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + f.Ext()
}

// Slug lowercases name, turns spaces into underscores and drops everything
// outside [a-z0-9_-]. An empty result becomes "card".
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "card"
	}
	return b.String()
}
