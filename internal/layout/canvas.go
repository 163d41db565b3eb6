package layout

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/cardforge/internal/cards"
	imagepkg "github.com/youruser/cardforge/internal/image"
	"github.com/youruser/cardforge/internal/style"
)

// minTextSize bounds shrink-to-fit.
const minTextSize = 10

// MinQRModulePixels is the smallest module edge a placed QR code gets. At
// 300 DPI two pixels are about 0.17 mm, which phone scanners still read.
const MinQRModulePixels = 2

type faceKey struct {
	role style.FontRole
	size float64
}

// canvas is the drawing state of a single render.
type canvas struct {
	dc       *gg.Context
	fonts    FaceSource
	pal      style.Palette
	rec      cards.Contact
	opts     Options
	headline style.FontRole
	faces    map[faceKey]font.Face
	overlays []imagepkg.Overlay
}

// textSpec describes how a line of text is set.
type textSpec struct {
	Size  float64
	Font  style.FontRole
	Color color.Color
	MaxW  float64 // shrink until the line fits; 0 disables
	Align float64 // 0 left, 0.5 centred on x
}

func (cv *canvas) role(r style.Role) color.NRGBA { return cv.pal.Color(r) }

func (cv *canvas) fill(c color.Color) {
	cv.rect(0, 0, Width, Height, c)
}

func (cv *canvas) rect(x, y, w, h float64, c color.Color) {
	cv.dc.SetColor(c)
	cv.dc.DrawRectangle(x, y, w, h)
	cv.dc.Fill()
}

func (cv *canvas) gradient(a, b color.Color, dir imagepkg.Direction) {
	cv.dc.DrawImage(imagepkg.MakeGradient(Width, Height, a, b, dir), 0, 0)
}

func (cv *canvas) face(role style.FontRole, size float64) font.Face {
	k := faceKey{role, size}
	if f, ok := cv.faces[k]; ok {
		return f
	}
	f := cv.fonts.Face(role, size)
	cv.faces[k] = f
	return f
}

// text draws s with its top edge at y. Empty strings draw nothing and report
// false.
func (cv *canvas) text(s string, x, y float64, ts textSpec) bool {
	if s == "" {
		return false
	}
	size := ts.Size
	cv.dc.SetFontFace(cv.face(ts.Font, size))
	if ts.MaxW > 0 {
		for w, _ := cv.dc.MeasureString(s); w > ts.MaxW && size > minTextSize; w, _ = cv.dc.MeasureString(s) {
			size = math.Max(minTextSize, math.Floor(size*0.9))
			cv.dc.SetFontFace(cv.face(ts.Font, size))
		}
	}
	cv.dc.SetColor(ts.Color)
	cv.dc.DrawStringAnchored(s, x, y, ts.Align, 1)
	return true
}

// column draws the non-empty values top to bottom starting at y, advancing by
// step only for lines actually drawn. It returns the next free y.
func (cv *canvas) column(values []string, x, y, step float64, ts textSpec) float64 {
	for _, v := range values {
		if cv.text(v, x, y, ts) {
			y += step
		}
	}
	return y
}

// placeLogo scales the logo to fit box, keeping its aspect ratio, and centres
// it there as an overlay.
func (cv *canvas) placeLogo(box image.Rectangle) {
	logo := cv.opts.Logo
	if logo == nil || logo.Bounds().Empty() {
		return
	}
	b := logo.Bounds()
	scale := math.Min(float64(box.Dx())/float64(b.Dx()), float64(box.Dy())/float64(b.Dy()))
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	img := imaging.Resize(logo, w, h, imaging.Lanczos)

	pos := box.Min.Add(image.Pt((box.Dx()-w)/2, (box.Dy()-h)/2))
	cv.overlays = append(cv.overlays, imagepkg.Overlay{Kind: imagepkg.OverlayLogo, Image: img, Pos: pos})
}

// placeQR scales the QR code by a whole number of pixels per module, as many
// as fit in box but never fewer than MinQRModulePixels. A code that needs
// more room than box grows away from the card corner box sits in.
func (cv *canvas) placeQR(box image.Rectangle) {
	qr := cv.opts.QR
	if qr == nil || qr.Bounds().Empty() {
		return
	}
	modules := qrModules(qr)
	ppm := max(MinQRModulePixels, min(box.Dx(), box.Dy())/modules)
	side := modules * ppm
	img := imaging.Resize(qr, side, side, imaging.NearestNeighbor)

	pos := box.Min
	if box.Min.X+box.Dx()/2 > Width/2 {
		pos.X = box.Max.X - side
	}
	if box.Min.Y+box.Dy()/2 > Height/2 {
		pos.Y = box.Max.Y - side
	}
	cv.overlays = append(cv.overlays, imagepkg.Overlay{Kind: imagepkg.OverlayQR, Image: img, Pos: pos})
}

// qrModules recovers the module count of a code encoded at
// imagepkg.QRModulePixels. Other rasters are treated as one pixel per module.
func qrModules(qr image.Image) int {
	w := qr.Bounds().Dx()
	if w%imagepkg.QRModulePixels == 0 {
		return w / imagepkg.QRModulePixels
	}
	return w
}

func (cv *canvas) contactLines() []string {
	return []string{cv.rec.Email, cv.rec.Phone, cv.rec.Website}
}
