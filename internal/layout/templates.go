package layout

import (
	"image"
	"image/color"
	"strings"

	imagepkg "github.com/youruser/cardforge/internal/image"
	"github.com/youruser/cardforge/internal/style"
)

// template is one layout routine plus the face it uses for the name line.
// Adding a template means adding a routine and one entry here.
type template struct {
	render   func(cv *canvas)
	headline style.FontRole
}

var templates = map[string]template{
	"executive_premium": {executivePremium, style.SerifElegant},
	"modern_gradient":   {modernGradient, style.SansModern},
	"minimalist_pro":    {minimalistPro, style.SansModern},
	"tech_neon":         {techNeon, style.MonoTech},
	"luxury_foil":       {luxuryFoil, style.ScriptLuxury},
	"geometric_modern":  {geometricModern, style.SansModern},
	Fallback:            {generic, style.SansModern},
}

// Neutral paper and ink of minimalist_pro.
var (
	paper = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ink   = color.NRGBA{A: 0xff}
)

// Reserved overlay corners. Every template keeps its logo and QR boxes
// disjoint.
func topLeft(inset, side int) image.Rectangle {
	return image.Rect(inset, inset, inset+side, inset+side)
}

func topRight(inset, side int) image.Rectangle {
	return image.Rect(Width-inset-side, inset, Width-inset, inset+side)
}

func bottomRight(inset, side int) image.Rectangle {
	return image.Rect(Width-inset-side, Height-inset-side, Width-inset, Height-inset)
}

func bottomLeft(x, inset, side int) image.Rectangle {
	return image.Rect(x, Height-inset-side, x+side, Height-inset)
}

func executivePremium(cv *canvas) {
	cv.fill(cv.role(style.Primary))
	cv.rect(50, 335, 420, 2, cv.role(style.Metallic))

	maxW := float64(Width - 250 - 50)
	cv.text(cv.rec.Name, 50, 200, textSpec{Size: 48, Font: cv.headline, Color: cv.role(style.Text), MaxW: maxW})
	cv.text(cv.rec.JobTitle, 50, 260, textSpec{Size: 24, Font: style.SansModern, Color: cv.role(style.Accent), MaxW: maxW})
	cv.text(cv.rec.Company, 50, 295, textSpec{Size: 24, Font: style.SansModern, Color: cv.role(style.Highlight), MaxW: maxW})
	cv.column(cv.contactLines(), 50, 355, 28,
		textSpec{Size: 18, Font: style.SansModern, Color: cv.role(style.Light), MaxW: maxW})

	cv.placeLogo(topLeft(50, 120))
	cv.placeQR(bottomRight(40, 160))
}

func modernGradient(cv *canvas) {
	cv.gradient(cv.role(style.Primary), cv.role(style.Secondary), imagepkg.Horizontal)
	cv.rect(60, 150, 80, 6, cv.role(style.Highlight))

	maxW := float64(Width - 230 - 60)
	cv.text(cv.rec.Name, 60, 180, textSpec{Size: 52, Font: cv.headline, Color: cv.role(style.Text), MaxW: maxW})
	cv.text(cv.rec.JobTitle, 60, 250, textSpec{Size: 26, Font: style.SansModern, Color: cv.role(style.Light), MaxW: maxW})
	cv.text(cv.rec.Company, 60, 285, textSpec{Size: 26, Font: style.SansModern, Color: cv.role(style.Highlight), MaxW: maxW})
	cv.column(append(cv.contactLines(), cv.rec.Address), 60, 350, 30,
		textSpec{Size: 20, Font: style.SansModern, Color: cv.role(style.Text), MaxW: maxW})

	cv.placeLogo(topRight(40, 150))
	cv.placeQR(bottomRight(40, 150))
}

func minimalistPro(cv *canvas) {
	cv.fill(paper)
	cv.rect(0, 0, 10, Height, cv.role(style.Accent))

	maxW := float64(Width - 200 - 30)
	cv.text(cv.rec.Name, 30, 50, textSpec{Size: 42, Font: cv.headline, Color: ink, MaxW: maxW})
	cv.text(cv.rec.JobTitle, 30, 100, textSpec{Size: 20, Font: style.SansModern, Color: cv.role(style.Primary), MaxW: maxW})
	cv.text(cv.rec.Company, 30, 130, textSpec{Size: 20, Font: style.SansModern, Color: cv.role(style.Accent), MaxW: maxW})
	cv.column(append(cv.contactLines(), cv.rec.Address), 30, 420, 26,
		textSpec{Size: 16, Font: style.SansModern, Color: ink, MaxW: maxW})

	cv.placeLogo(topRight(40, 120))
	cv.placeQR(bottomRight(40, 130))
}

func techNeon(cv *canvas) {
	cv.fill(cv.role(style.Dark))
	cv.rect(0, 0, Width, 6, cv.role(style.Highlight))
	cv.rect(0, Height-6, Width, 6, cv.role(style.Accent))
	cv.rect(48, 140, 4, 240, cv.role(style.Accent))

	maxW := float64(Width - 220 - 70)
	cv.text(cv.rec.Name, 70, 140, textSpec{Size: 46, Font: cv.headline, Color: cv.role(style.Highlight), MaxW: maxW})
	cv.text(cv.rec.JobTitle, 70, 200, textSpec{Size: 24, Font: style.MonoTech, Color: cv.role(style.Accent), MaxW: maxW})
	cv.text(cv.rec.Company, 70, 232, textSpec{Size: 24, Font: style.MonoTech, Color: cv.role(style.Metallic), MaxW: maxW})
	cv.column(cv.contactLines(), 70, 290, 28,
		textSpec{Size: 18, Font: style.MonoTech, Color: cv.role(style.Light), MaxW: maxW})

	cv.placeLogo(topRight(40, 140))
	cv.placeQR(bottomLeft(70, 40, 150))
}

func luxuryFoil(cv *canvas) {
	cv.gradient(cv.role(style.Dark), cv.role(style.Primary), imagepkg.Vertical)

	dc := cv.dc
	dc.SetColor(cv.role(style.Metallic))
	dc.SetLineWidth(3)
	dc.DrawRectangle(24, 24, Width-48, Height-48)
	dc.Stroke()
	dc.SetLineWidth(1)
	dc.DrawRectangle(34, 34, Width-68, Height-68)
	dc.Stroke()

	const cx = Width / 2
	maxW := float64(Width - 2*200)
	center := func(size float64, font style.FontRole, r style.Role) textSpec {
		return textSpec{Size: size, Font: font, Color: cv.role(r), MaxW: maxW, Align: 0.5}
	}
	cv.text(cv.rec.Name, cx, 200, center(50, cv.headline, style.Metallic))
	cv.text(cv.rec.JobTitle, cx, 275, center(24, style.SerifElegant, style.Highlight))
	cv.text(cv.rec.Company, cx, 310, center(24, style.SerifElegant, style.Light))
	cv.text(joinNonEmpty(" · ", cv.contactLines()...), cx, 365, center(18, style.SerifElegant, style.Light))
	cv.text(cv.rec.Address, cx, 395, center(16, style.SerifElegant, style.Light))

	cv.placeLogo(topLeft(60, 100))
	cv.placeQR(bottomRight(60, 130))
}

func geometricModern(cv *canvas) {
	cv.fill(cv.role(style.Light))

	dc := cv.dc
	dc.SetColor(cv.role(style.Primary))
	dc.MoveTo(Width*0.62, 0)
	dc.LineTo(Width, 0)
	dc.LineTo(Width, Height)
	dc.LineTo(Width*0.48, Height)
	dc.ClosePath()
	dc.Fill()
	dc.SetColor(cv.role(style.Accent))
	dc.DrawCircle(Width*0.55, Height*0.5, 40)
	dc.Fill()
	dc.SetColor(cv.role(style.Highlight))
	dc.DrawCircle(Width*0.66, 90, 14)
	dc.Fill()

	maxW := Width*0.48 - 80
	cv.text(cv.rec.Name, 50, 120, textSpec{Size: 46, Font: cv.headline, Color: cv.role(style.Dark), MaxW: maxW})
	cv.text(cv.rec.JobTitle, 50, 180, textSpec{Size: 24, Font: style.SansModern, Color: cv.role(style.Primary), MaxW: maxW})
	cv.text(cv.rec.Company, 50, 212, textSpec{Size: 24, Font: style.SansModern, Color: cv.role(style.Secondary), MaxW: maxW})
	cv.column(append(cv.contactLines(), cv.rec.Address), 50, 300, 28,
		textSpec{Size: 18, Font: style.SansModern, Color: cv.role(style.Dark), MaxW: maxW})

	cv.placeLogo(topRight(40, 150))
	cv.placeQR(bottomRight(40, 150))
}

// generic picks text colors by contrast, so it reads well with any palette.
func generic(cv *canvas) {
	light, primary := cv.role(style.Light), cv.role(style.Primary)
	cv.fill(light)
	cv.rect(0, 0, Width, 140, primary)

	onBand := cv.role(cv.pal.Readable(primary, style.Text, style.Light, style.Dark))
	onBody := cv.role(cv.pal.Readable(light, style.Dark, style.Primary, style.Text))

	maxW := float64(Width - 180 - 50)
	cv.text(cv.rec.Name, 50, 45, textSpec{Size: 44, Font: cv.headline, Color: onBand, MaxW: float64(Width - 160 - 50)})
	cv.text(cv.rec.JobTitle, 50, 180, textSpec{Size: 24, Font: style.SansModern, Color: onBody, MaxW: maxW})
	cv.text(cv.rec.Company, 50, 215, textSpec{Size: 24, Font: style.SansModern, Color: cv.role(style.Secondary), MaxW: maxW})
	cv.column(append(cv.contactLines(), cv.rec.Address), 50, 280, 28,
		textSpec{Size: 18, Font: style.SansModern, Color: onBody, MaxW: maxW})

	cv.placeLogo(topRight(20, 100))
	cv.placeQR(bottomRight(40, 140))
}

func joinNonEmpty(sep string, values ...string) string {
	parts := values[:0:0]
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
