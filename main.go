package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/orthofilm/cmd"
	"github.com/rm-hull/orthofilm/internal"
	"github.com/rm-hull/orthofilm/internal/raster"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:   "orthofilm <image>",
		Short: "Apply an orthochromatic film look to an image",
		Long: `Adds film grain, a cyan filter with greyscale conversion and a vignette
to the given image, writing <name>_ortho.png next to it.`,
		Args:          cmd.RequireInput,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			internal.ShowVersion()
			if internal.DebugEnabled() {
				internal.Diagnostics(args[0], raster.Formats)
			}

			rng, err := cmd.NewRand()
			if err != nil {
				return err
			}

			outputPath, err := cmd.Process(args[0], rng)
			if err != nil {
				return err
			}
			log.Printf("Image processed successfully: %s", outputPath)
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
