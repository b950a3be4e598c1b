package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/internal/logger"
	"github.com/woozymasta/geoson/internal/render"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input   string  `short:"i" long:"in"      description:"Input GeoJSON document"   required:"true"`
	Output  string  `short:"o" long:"out"     description:"Output WebP image path"   required:"true"`
	Size    int     `short:"s" long:"size"    description:"Image edge in pixels"     default:"1024"`
	Margin  int     `short:"m" long:"margin"  description:"Blank border in pixels"   default:"32"`
	Quality float32 `short:"q" long:"quality" description:"Lossy WebP quality"       default:"85"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	fc, err := geoson.ReadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read document")
	}

	img, err := render.Render(fc, render.Options{Size: opts.Size, Margin: opts.Margin})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render collection")
	}

	if err := render.WriteWebP(opts.Output, img, opts.Quality); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write image")
	}

	log.Info().
		Str("path", opts.Output).
		Int("features", len(fc.Features)).
		Int("size", opts.Size).
		Msg("Image written")
}
