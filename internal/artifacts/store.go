// Package artifacts keeps generated files available for download until their
// lifetime runs out.
package artifacts

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/youruser/cardforge/internal/export"
)

var (
	ErrNotFound    = errors.New("artifact not found")
	ErrInvalidName = errors.New("invalid artifact name")
)

// Stored is an artifact read back from a store.
type Stored struct {
	Name        string
	ContentType string
	Data        []byte
}

// Store saves artifacts for at most their Lifetime.
type Store interface {
	Save(ctx context.Context, name string, data []byte, lifetime time.Duration) error
	Get(ctx context.Context, name string) (*Stored, error)
}

// SaveArtifact stores a rendered card under its own file name.
func SaveArtifact(ctx context.Context, s Store, a *export.Artifact) error {
	return s.Save(ctx, a.Filename, a.Data, a.Lifetime)
}

var validName = regexp.MustCompile(`^[a-z0-9_-]+\.(png|jpg|pdf|html|zip)$`)

// CheckName rejects anything that is not a plain generated file name.
func CheckName(name string) error {
	if !validName.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ContentType maps a stored name to its MIME type.
func ContentType(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "zip" {
		return "application/zip"
	}
	if f, err := export.ParseFormat(ext); err == nil {
		return f.ContentType()
	}
	return "application/octet-stream"
}
