package export

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/go-pdf/fpdf"

	imagepkg "github.com/youruser/cardforge/internal/image"
)

// Card page size in inches.
const (
	pageWidthIn  = 3.5
	pageHeightIn = 2.0
)

func encodePDF(img image.Image) ([]byte, error) {
	var raster bytes.Buffer
	if err := imaging.Encode(&raster, imagepkg.Flatten(img, color.White), imaging.PNG); err != nil {
		return nil, err
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: pageWidthIn, Ht: pageHeightIn},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("card", opts, &raster)
	pdf.ImageOptions("card", 0, 0, pageWidthIn, pageHeightIn, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
