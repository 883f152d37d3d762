package logofix

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

var previewPalette = []color.Color{color.Black, color.White, color.Transparent}

/*
Preview draws img as braille symbols sized to fit within cols x lines terminal
cells. Each cell covers 2x4 pixels, so the image is shrunk (never enlarged) to
at most 2*cols by 4*lines pixels.

The scaled image is redrawn onto a black, white and transparent palette with
Floyd-Steinberg diffusion so that shading survives as dot density. Dark pixels
become dots; light and fully transparent pixels stay blank.
*/
func Preview(w io.Writer, img image.Image, cols, lines int) error {
	if cols < 1 || lines < 1 {
		return nil
	}
	scaled := resize.Thumbnail(uint(cols*2), uint(lines*4), img, resize.Bilinear)

	// Logos tend to be flat; a little extra contrast keeps thin strokes visible.
	scaled = imaging.AdjustContrast(scaled, 20)

	paletted := image.NewPaletted(scaled.Bounds(), previewPalette)
	draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), scaled, scaled.Bounds().Min)
	return writeBraille(w, paletted)
}
