package stage

import (
	"log"
	"math/rand/v2"

	"github.com/rm-hull/orthofilm/internal/raster"
)

const (
	// GrainNoiseRange is the half-width of the uniform noise added to each channel.
	GrainNoiseRange = 24.2
	GrainBlurSigma  = 0.5
)

type FilmGrainStage struct {
	Rand  *rand.Rand
	Sigma float64
}

// Process adds independent uniform noise in [-24.2, 24.2) to the R, G and B
// channels of every pixel, then softens the grain with a Gaussian blur of Sigma.
// A channel already sitting at 0 or 255 only receives half the noise, so blown
// highlights and crushed shadows are not speckled as heavily.
// Pixels are visited in row-major order, so a seeded Rand is reproducible.
func (s *FilmGrainStage) Process(p *raster.Raster) error {
	log.Println("Adding film grain...")

	img := p.Img
	for y := 0; y < p.Height(); y++ {
		for x := 0; x < p.Width(); x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				v := img.Pix[i+c]
				noise := s.noise()
				if v == 0 || v == 255 {
					noise *= 0.5
				}
				img.Pix[i+c] = clampToUint8(float64(v) + noise)
			}
		}
	}

	blur := &GaussianBlurStage{Sigma: s.Sigma}
	return blur.Process(p)
}

func (s *FilmGrainStage) noise() float64 {
	return (s.Rand.Float64()*2 - 1) * GrainNoiseRange
}

// clampToUint8 clamps v to [0, 255] and truncates toward zero.
func clampToUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
