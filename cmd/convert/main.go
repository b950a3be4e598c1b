package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/pretty"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input  string `short:"i" long:"in"     description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	CRS    string `short:"c" long:"crs"    description:"Output coordinate system (ENU, ECEF, WGS, WGS84, EPSG:4326)" default:"ENU"`
	Indent bool   `long:"indent" description:"Pretty-print the output document"`
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

	crs, err := geoson.ParseCRS(opts.CRS)
	if err != nil {
		log.Fatal().Err(err).Msg("Unknown output CRS")
	}

	var inputData []byte
	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input file")
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
	}

	fc, err := geoson.Decode(inputData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode document")
	}

	outputData := fc.Encode(crs)
	if opts.Indent {
		outputData = pretty.Pretty(outputData)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			log.Fatal().Err(err).Msg("Failed to write output file")
		}
		fmt.Fprintf(os.Stderr, "Converted %d features to %s (crs: %s)\n", len(fc.Features), opts.Output, crs)
	} else {
		fmt.Println(string(outputData))
	}
}
