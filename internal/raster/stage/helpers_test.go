package stage

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/rm-hull/orthofilm/internal/raster"
)

func makeSolid(w, h int, c color.NRGBA) *raster.Raster {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return raster.New(img)
}

// makeRandom fills a w*h raster with arbitrary colours and alpha.
func makeRandom(w, h int, seed uint64) *raster.Raster {
	rng := rand.New(rand.NewPCG(seed, 0))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	return raster.New(img)
}

func alphas(r *raster.Raster) []uint8 {
	out := make([]uint8, 0, len(r.Img.Pix)/4)
	for i := 3; i < len(r.Img.Pix); i += 4 {
		out = append(out, r.Img.Pix[i])
	}
	return out
}

func clone(r *raster.Raster) *raster.Raster {
	img := image.NewNRGBA(r.Bounds)
	copy(img.Pix, r.Img.Pix)
	return raster.New(img)
}
