package stage

import (
	"log"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/orthofilm/internal/raster"
)

// RedReduction is subtracted from the red channel before greyscale conversion,
// giving the cyan-leaning response of orthochromatic film.
const RedReduction = 90

type ColorFilterStage struct{}

// Process reduces the red channel (saturating at zero) and replaces each pixel
// with the integer mean of the filtered R, G and B. Alpha is preserved.
func (s *ColorFilterStage) Process(p *raster.Raster) error {
	log.Println("Adding color filter...")

	img := p.Img
	w := p.Width()
	parallel.Line(p.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				i := img.PixOffset(x, y)
				r := int(img.Pix[i+0]) - RedReduction
				if r < 0 {
					r = 0
				}
				grey := uint8((r + int(img.Pix[i+1]) + int(img.Pix[i+2])) / 3)
				img.Pix[i+0] = grey
				img.Pix[i+1] = grey
				img.Pix[i+2] = grey
			}
		}
	})
	return nil
}
