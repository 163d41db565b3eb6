// Package export serializes a composed card into its download format.
package export

import (
	"image"
	"strings"
	"time"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/style"
)

// Format is an output encoding.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpg"
	PDF  Format = "pdf"
	HTML Format = "html"
)

// DefaultLifetime is how long callers should keep an artifact before deleting it.
const DefaultLifetime = 60 * time.Second

// Formats lists the supported formats.
func Formats() []Format { return []Format{PNG, JPEG, PDF, HTML} }

// ParseFormat resolves a format name. "jpeg" is accepted as an alias of jpg.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, JPEG, PDF, HTML:
		return f, nil
	case "jpeg":
		return JPEG, nil
	}
	return "", domain.UnknownFormat(s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case PDF:
		return "application/pdf"
	case HTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// Artifact is one encoded card. The core keeps no reference to it; Lifetime
// is the recommended retention for whoever stores it.
type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
	Lifetime    time.Duration
}

// Encode serializes img in the requested format. Contact and palette are used
// for the file name and the HTML back face.
func Encode(img image.Image, format Format, c cards.Contact, p style.Palette) (*Artifact, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case PNG:
		data, err = encodePNG(img)
	case JPEG:
		data, err = encodeJPEG(img)
	case PDF:
		data, err = encodePDF(img)
	case HTML:
		data, err = encodeHTML(img, c, p)
	default:
		return nil, domain.UnknownFormat(string(format))
	}
	if err != nil {
		return nil, domain.EncodeFailed(string(format), err)
	}
	return &Artifact{
		Format:      format,
		Filename:    Filename(c.Name, format),
		ContentType: format.ContentType(),
		Data:        data,
		Lifetime:    DefaultLifetime,
	}, nil
}
