package export

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"regexp"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/cardforge/internal/cards"
	"github.com/youruser/cardforge/internal/domain"
	"github.com/youruser/cardforge/internal/style"
)

func testPalette(t *testing.T) style.Palette {
	t.Helper()
	p, err := style.NewCatalog(t.TempDir()).Palette("executive_navy")
	require.NoError(t, err)
	return p
}

func testCard() image.Image {
	return imaging.New(1050, 600, color.NRGBA{R: 0x1a, G: 0x36, B: 0x5d, A: 0xff})
}

var ada = cards.Contact{Name: "Ada Lovelace", JobTitle: "Engineer", Company: "Analytical Engines"}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"pdf", PDF},
		{" html ", HTML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("svg")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestEncode_PNG(t *testing.T) {
	art, err := Encode(testCard(), PNG, ada, testPalette(t))
	require.NoError(t, err)

	assert.Equal(t, "image/png", art.ContentType)
	assert.Equal(t, DefaultLifetime, art.Lifetime)
	require.True(t, bytes.HasPrefix(art.Data, pngSignature))

	// pHYs directly follows IHDR.
	assert.Equal(t, "pHYs", string(art.Data[37:41]))
	ppm := binary.BigEndian.Uint32(art.Data[41:45])
	assert.Equal(t, uint32(11811), ppm)
	assert.Equal(t, byte(1), art.Data[49])

	img, err := png.Decode(bytes.NewReader(art.Data))
	require.NoError(t, err, "inserted chunk must keep the file valid")
	assert.Equal(t, image.Pt(1050, 600), img.Bounds().Size())
}

func TestEncode_JPEG(t *testing.T) {
	art, err := Encode(testCard(), JPEG, ada, testPalette(t))
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", art.ContentType)
	require.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, art.Data[:4])
	assert.Equal(t, "JFIF\x00", string(art.Data[6:11]))
	assert.Equal(t, byte(1), art.Data[13], "density unit is dots per inch")
	assert.Equal(t, uint16(DPI), binary.BigEndian.Uint16(art.Data[14:16]))
	assert.Equal(t, uint16(DPI), binary.BigEndian.Uint16(art.Data[16:18]))

	img, err := jpeg.Decode(bytes.NewReader(art.Data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(1050, 600), img.Bounds().Size())
}

func TestEncode_JPEGFlattensOnWhite(t *testing.T) {
	transparent := imaging.New(40, 20, color.NRGBA{})
	art, err := Encode(transparent, JPEG, ada, testPalette(t))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(art.Data))
	require.NoError(t, err)
	r, g, b, _ := img.At(20, 10).RGBA()
	assert.Greater(t, r>>8, uint32(0xf0))
	assert.Greater(t, g>>8, uint32(0xf0))
	assert.Greater(t, b>>8, uint32(0xf0))
}

func TestEncode_PDF(t *testing.T) {
	art, err := Encode(testCard(), PDF, ada, testPalette(t))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", art.ContentType)
	assert.True(t, bytes.HasPrefix(art.Data, []byte("%PDF-")))
	assert.Contains(t, string(art.Data), "/MediaBox")
	assert.True(t, bytes.HasSuffix(bytes.TrimSpace(art.Data), []byte("%%EOF")))
}

func TestEncode_HTML(t *testing.T) {
	p := testPalette(t)
	c := ada
	c.Company = "Engines & <Co>"
	art, err := Encode(testCard(), HTML, c, p)
	require.NoError(t, err)

	doc := string(art.Data)
	assert.Equal(t, "text/html; charset=utf-8", art.ContentType)
	assert.Contains(t, doc, `src="data:image/png;base64,`)
	assert.Contains(t, doc, "Ada Lovelace")
	assert.Contains(t, doc, "Engines &amp; &lt;Co&gt;")
	assert.NotContains(t, doc, "<Co>")
	assert.Contains(t, doc, "linear-gradient(135deg, "+p.Hex(style.Primary)+", "+p.Hex(style.Secondary)+")")
	assert.NotContains(t, doc, "ZgotmplZ")
}

func TestEncode_HTMLSkipsEmptyFields(t *testing.T) {
	art, err := Encode(testCard(), HTML, cards.Contact{Name: "Solo"}, testPalette(t))
	require.NoError(t, err)
	assert.Equal(t, 0, strings.Count(string(art.Data), "<p>"))
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(testCard(), Format("tiff"), ada, testPalette(t))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestFilename(t *testing.T) {
	name := Filename("Ada Lovelace", PNG)
	assert.Regexp(t, regexp.MustCompile(`^ada_lovelace_[0-9a-f]{8}\.png$`), name)
	assert.NotEqual(t, name, Filename("Ada Lovelace", PNG))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Ada Lovelace":      "ada_lovelace",
		"José O'Neil":       "jos_oneil",
		"  dash-ok_under  ": "dash-ok_under",
		"":                  "card",
		"!!!":               "card",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}
