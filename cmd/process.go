package cmd

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rm-hull/orthofilm/internal/raster"
	"github.com/rm-hull/orthofilm/internal/raster/stage"
	"github.com/spf13/cobra"
)

var (
	ErrMissingArgument = errors.New("missing input image path")
	ErrDecode          = errors.New("could not load image")
	ErrEncode          = errors.New("could not save image")
)

// RequireInput accepts exactly one positional argument, the input image path.
func RequireInput(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: please provide an input image path", ErrMissingArgument)
	}
	return cobra.ExactArgs(1)(c, args)
}

// OutputPath derives the destination for input: the same directory, the
// input's base name without its extension, suffixed with _ortho.png.
func OutputPath(input string) string {
	dir, file := filepath.Split(input)
	stem := strings.TrimSuffix(file, filepath.Ext(file))
	return filepath.Join(dir, stem+"_ortho.png")
}

// Process applies the orthochromatic pipeline to the image at inputPath and
// writes the result alongside it, returning the output path.
func Process(inputPath string, rng *rand.Rand) (string, error) {
	img, err := raster.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %w", ErrDecode, inputPath, err)
	}
	log.Printf("Loaded %s (%dx%d)", inputPath, img.Width(), img.Height())

	if err := img.Pipeline(stage.Orthochromatic(rng)...); err != nil {
		return "", fmt.Errorf("failed to process image: %w", err)
	}

	outputPath := OutputPath(inputPath)
	if err := save(img, outputPath); err != nil {
		return "", fmt.Errorf("%w to %s: %w", ErrEncode, outputPath, err)
	}
	return outputPath, nil
}

// save encodes to a temporary file in the destination directory and renames
// it into place, so a failed write never leaves a partial image behind.
func save(img *raster.Raster, path string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "ortho-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpFile.Name())
	}()

	if err := img.Write(tmpFile); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	// CreateTemp makes owner-only files; give the result the usual permissions
	if err := tmpFile.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// NewRand returns the film grain generator. ORTHO_GRAIN_SEED fixes the seed
// for reproducible output; otherwise a random seed is used.
func NewRand() (*rand.Rand, error) {
	seed := rand.Uint64()
	if val := os.Getenv("ORTHO_GRAIN_SEED"); val != "" {
		s, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ORTHO_GRAIN_SEED %q: %w", val, err)
		}
		seed = s
	}
	log.Printf("Film grain seed: %d", seed)
	return NewSeededRand(seed), nil
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
