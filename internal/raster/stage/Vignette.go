package stage

import (
	"log"
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/rm-hull/orthofilm/internal/raster"
)

const VignetteStrength = 0.77

type VignetteStage struct {
	Strength float64
}

// Process darkens the colour channels by a factor that falls off with the
// squared distance from the image centre. Alpha is passed through.
func (s *VignetteStage) Process(p *raster.Raster) error {
	log.Println("Adding vignette...")

	img := p.Img
	w, h := p.Width(), p.Height()
	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				factor := VignetteFactor(x, y, w, h, s.Strength)
				i := img.PixOffset(x, y)
				for c := 0; c < 3; c++ {
					img.Pix[i+c] = clampToUint8(float64(img.Pix[i+c]) * factor)
				}
			}
		}
	})
	return nil
}

// VignetteFactor returns the multiplier applied to pixel (x, y) of a w*h image:
// 1 - (d/dmax)^2 * strength clamped to [0, 1], where d is the distance from
// (w/2, h/2) and dmax the distance from the centre to a corner.
// A single pixel image has no radial extent and is never darkened.
func VignetteFactor(x, y, w, h int, strength float64) float64 {
	if w <= 1 && h <= 1 {
		return 1
	}
	cx, cy := float64(w)/2, float64(h)/2
	maxDistance := math.Hypot(cx, cy)
	distance := math.Hypot(float64(x)-cx, float64(y)-cy)
	ratio := distance / maxDistance
	return math.Max(0, math.Min(1, 1-ratio*ratio*strength))
}
