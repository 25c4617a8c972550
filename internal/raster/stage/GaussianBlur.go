package stage

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/rm-hull/orthofilm/internal/raster"
)

type GaussianBlurStage struct {
	Sigma float64
}

// Process applies a Gaussian blur to the colour channels using the specified Sigma value.
// Higher Sigma values result in a more pronounced blur effect. Alpha is left as it was.
// The straight samples are convolved as they are: bild only sees an RGBA header over
// the same pixel buffer, so no premultiplication happens on the way in or out.
func (s *GaussianBlurStage) Process(p *raster.Raster) error {
	if s.Sigma <= 0 {
		return nil
	}
	src := &image.RGBA{Pix: p.Img.Pix, Stride: p.Img.Stride, Rect: p.Img.Rect}
	blurred := convolution.Convolve(src, gaussianKernel(s.Sigma), &convolution.Options{
		Wrap:      false,
		KeepAlpha: true,
	})
	p.Replace(&image.NRGBA{Pix: blurred.Pix, Stride: blurred.Stride, Rect: blurred.Rect})
	return nil
}

// gaussianKernel builds a normalised square kernel reaching out to 3 sigma.
func gaussianKernel(sigma float64) convolution.Matrix {
	radius := int(math.Ceil(3 * sigma))
	size := 2*radius + 1
	k := convolution.NewKernel(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - radius)
			dy := float64(y - radius)
			k.Matrix[y*size+x] = math.Exp(-(dx*dx + dy*dy) / (2 * sigma * sigma))
		}
	}
	return k.Normalized()
}
