package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Args struct {
		Files []string `positional-arg-name:"file" required:"1" description:"GeoJSON documents to summarize"`
	} `positional-args:"yes"`
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

	for _, path := range opts.Args.Files {
		fc, err := geoson.ReadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to read document")
		}

		if len(opts.Args.Files) > 1 {
			fmt.Printf("%s:\n", path)
		}
		fmt.Print(fc)
	}
}
