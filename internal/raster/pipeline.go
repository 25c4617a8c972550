package raster

import (
	"image"
)

// Raster is the single mutable image buffer that flows through a pipeline.
// Img always holds straight (non-premultiplied) RGBA samples with its origin
// at (0, 0), so Bounds is also the width and height of the image.
type Raster struct {
	Img    *image.NRGBA
	Bounds image.Rectangle
}

type PipelineStage interface {
	Process(r *Raster) error
}

// New wraps img without copying it.
func New(img *image.NRGBA) *Raster {
	return &Raster{
		Img:    img,
		Bounds: img.Bounds(),
	}
}

func (r *Raster) Width() int {
	return r.Bounds.Dx()
}

func (r *Raster) Height() int {
	return r.Bounds.Dy()
}

// Replace swaps in a new image produced by a whole-raster operation.
// The dimensions of img must match the current raster.
func (r *Raster) Replace(img *image.NRGBA) {
	r.Img = img
	r.Bounds = img.Bounds()
}

func (r *Raster) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(r); err != nil {
			return err
		}
	}
	return nil
}
