package stage

import (
	"math/rand/v2"

	"github.com/rm-hull/orthofilm/internal/raster"
)

// Orthochromatic returns the fixed film emulation pipeline. Grain and its blur
// run first so the blur smooths noise in the original colours, before the
// colour filter and vignette.
func Orthochromatic(rng *rand.Rand) []raster.PipelineStage {
	return []raster.PipelineStage{
		&FilmGrainStage{Rand: rng, Sigma: GrainBlurSigma},
		&ColorFilterStage{},
		&VignetteStage{Strength: VignetteStrength},
	}
}
