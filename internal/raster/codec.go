package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats lists the input formats registered with image.Decode by this package.
var Formats = []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"}

// Open decodes the image file at path into a Raster.
func Open(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewRasterFromReader(f)
}

// NewRasterFromReader decodes any registered image format (PNG, JPEG, GIF,
// BMP, TIFF, WebP) and normalises it to an NRGBA raster anchored at (0, 0).
func NewRasterFromReader(r io.Reader) (*Raster, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%s image has no pixels", format)
	}

	return New(toNRGBA(img)), nil
}

func (r *Raster) Write(w io.Writer) error {
	return png.Encode(w, r.Img)
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		rowLen := b.Dx() * 4
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[i:i+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
