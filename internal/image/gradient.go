package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Direction is the axis a gradient runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// MakeGradient paints b over a with an opacity that grows linearly along dir:
// 255*x/width for Horizontal, 255*y/height for Vertical (truncated). The
// result is fully opaque.
func MakeGradient(width, height int, a, b color.Color, dir Direction) *image.NRGBA {
	img := imaging.New(width, height, a)
	if width <= 0 || height <= 0 {
		return img
	}
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			var m int
			if dir == Horizontal {
				m = 255 * x / width
			} else {
				m = 255 * y / height
			}
			i := x * 4
			row[i+0] = mix(ca.R, cb.R, m)
			row[i+1] = mix(ca.G, cb.G, m)
			row[i+2] = mix(ca.B, cb.B, m)
			row[i+3] = 0xff
		}
	}
	return img
}

func mix(a, b uint8, m int) uint8 {
	return uint8((int(a)*(255-m) + int(b)*m + 127) / 255)
}
