package stage

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFilterStage_Process(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		want color.NRGBA
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, color.NRGBA{225, 225, 225, 255}},
		{"black", color.NRGBA{0, 0, 0, 255}, color.NRGBA{0, 0, 0, 255}},
		{"red at threshold saturates", color.NRGBA{90, 30, 60, 200}, color.NRGBA{30, 30, 30, 200}},
		{"red below threshold saturates", color.NRGBA{10, 30, 60, 200}, color.NRGBA{30, 30, 30, 200}},
		{"pure red disappears", color.NRGBA{255, 0, 0, 255}, color.NRGBA{55, 55, 55, 255}},
		{"cyan survives", color.NRGBA{0, 255, 255, 255}, color.NRGBA{170, 170, 170, 255}},
		{"division truncates", color.NRGBA{91, 1, 0, 17}, color.NRGBA{0, 0, 0, 17}},
		{"transparent keeps alpha", color.NRGBA{100, 100, 100, 0}, color.NRGBA{70, 70, 70, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := makeSolid(2, 2, tt.in)
			require.NoError(t, (&ColorFilterStage{}).Process(r))
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					assert.Equal(t, tt.want, r.Img.NRGBAAt(x, y))
				}
			}
		})
	}
}

func TestColorFilterStage_Properties(t *testing.T) {
	r := makeRandom(31, 17, 7)
	before := clone(r)

	require.NoError(t, (&ColorFilterStage{}).Process(r))

	assert.Equal(t, before.Bounds, r.Bounds)
	assert.Equal(t, alphas(before), alphas(r))
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			got := r.Img.NRGBAAt(x, y)
			assert.True(t, got.R == got.G && got.G == got.B, "pixel (%d,%d) is not grey: %v", x, y, got)

			orig := before.Img.NRGBAAt(x, y)
			red := max(0, int(orig.R)-RedReduction)
			assert.Equal(t, uint8((red+int(orig.G)+int(orig.B))/3), got.R)
		}
	}
}
