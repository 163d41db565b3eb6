package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/cardforge/internal/cards"
)

var (
	navy  = color.NRGBA{R: 0x1e, G: 0x3a, B: 0x8a, A: 0xff}
	amber = color.NRGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}
)

func near(t *testing.T, want, got color.NRGBA, tol int) {
	t.Helper()
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	if d(want.R, got.R) > tol || d(want.G, got.G) > tol || d(want.B, got.B) > tol || got.A != 0xff {
		t.Fatalf("color %v not within %d of %v", got, tol, want)
	}
}

func TestVCard_EmitsEveryTag(t *testing.T) {
	v := VCard(cards.Contact{Name: "Ada Lovelace", Address: "12 St James's Sq, London"})

	lines := strings.Split(v, "\r\n")
	assert.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"ORG:",
		"TITLE:",
		"EMAIL:",
		"TEL:",
		"URL:",
		`ADR:;;12 St James's Sq\, London;;;;`,
		"END:VCARD",
	}, lines)
}

func TestEncodeContactQR(t *testing.T) {
	t.Run("empty record", func(t *testing.T) {
		img, err := EncodeContactQR(cards.Contact{})
		require.NoError(t, err)
		assert.False(t, img.Bounds().Empty())
	})

	t.Run("name only", func(t *testing.T) {
		img, err := EncodeContactQR(cards.Contact{Name: "Ada Lovelace"})
		require.NoError(t, err)
		b := img.Bounds()
		assert.Equal(t, b.Dx(), b.Dy())
		assert.Zero(t, b.Dx()%QRModulePixels)
	})

	t.Run("deterministic", func(t *testing.T) {
		c := cards.Contact{Name: "Ada", Email: "ada@engines.io", Phone: "+44 20"}
		a, err := EncodeContactQR(c)
		require.NoError(t, err)
		b, err := EncodeContactQR(c)
		require.NoError(t, err)
		assert.Equal(t, imaging.Clone(a).Pix, imaging.Clone(b).Pix)
	})
}

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("cardforge:example", 256)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestMakeGradient(t *testing.T) {
	const w, h = 200, 50

	t.Run("horizontal", func(t *testing.T) {
		g := MakeGradient(w, h, navy, amber, Horizontal)
		assert.Equal(t, image.Rect(0, 0, w, h), g.Bounds())
		near(t, navy, g.NRGBAAt(0, 0), 0)
		near(t, amber, g.NRGBAAt(w-1, h-1), 2)
		// constant down each column
		assert.Equal(t, g.NRGBAAt(w/2, 0), g.NRGBAAt(w/2, h-1))
	})

	t.Run("vertical", func(t *testing.T) {
		g := MakeGradient(w, h, navy, amber, Vertical)
		near(t, navy, g.NRGBAAt(w-1, 0), 0)
		near(t, amber, g.NRGBAAt(0, h-1), 6)
		assert.Equal(t, g.NRGBAAt(0, h/2), g.NRGBAAt(w-1, h/2))
	})

	t.Run("truncated opacity", func(t *testing.T) {
		black := color.NRGBA{A: 0xff}
		white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		g := MakeGradient(3, 1, black, white, Horizontal)
		// 255*1/3 = 85, 255*2/3 = 170
		assert.Equal(t, uint8(85), g.NRGBAAt(1, 0).R)
		assert.Equal(t, uint8(170), g.NRGBAAt(2, 0).R)
	})
}

func TestComposite_RespectsAlpha(t *testing.T) {
	base := imaging.New(100, 100, navy)

	logo := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	logo.SetNRGBA(5, 5, amber) // everything else stays fully transparent

	opaque := imaging.New(10, 10, amber)

	out := Composite(base, []Overlay{
		{Kind: OverlayLogo, Image: logo, Pos: image.Pt(10, 10)},
		{Kind: OverlayQR, Image: opaque, Pos: image.Pt(70, 70)},
	})

	assert.Equal(t, navy, out.NRGBAAt(10, 10), "transparent overlay pixel must not occlude")
	assert.Equal(t, amber, out.NRGBAAt(15, 15))
	assert.Equal(t, amber, out.NRGBAAt(75, 75))
	assert.Equal(t, navy, out.NRGBAAt(50, 50))
	assert.Equal(t, navy, base.NRGBAAt(75, 75), "base is not mutated")
}

func TestOverlayBounds(t *testing.T) {
	o := Overlay{Image: imaging.New(30, 20, amber), Pos: image.Pt(5, 7)}
	assert.Equal(t, image.Rect(5, 7, 35, 27), o.Bounds())
}

func TestFlatten(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, amber)

	out := Flatten(img, color.White)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, amber, out.NRGBAAt(1, 1))
}

func TestLoadLogo(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "logo.png")
	require.NoError(t, imaging.Save(imaging.New(40, 20, amber), p))

	img, err := LoadLogo(p)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = LoadLogo(bad)
	assert.Error(t, err)

	_, err = LoadLogo(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestDownloadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(8, 8, navy)))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logo.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	img, err := DownloadImage(srv.URL + "/logo.png")
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	_, err = DownloadImage(srv.URL + "/missing.png")
	assert.Error(t, err)
}
