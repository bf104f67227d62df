package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gnote/dnttools/config"
	"github.com/gnote/dnttools/convert"
	"github.com/gnote/dnttools/log"
	flag "github.com/ogier/pflag"
)

func main() {
	css := flag.String("css", "", "stylesheet referenced from svg output")
	formats := flag.StringP("format", "f", "", "comma separated output formats: svg,png,pdf,zip,dnt")
	outputDir := flag.StringP("output", "o", "", "output directory, defaults to the input directory")
	workers := flag.IntP("jobs", "j", 0, "files converted at once")
	noRotate := flag.Bool("no-rotate", false, "keep the device orientation")
	flag.Parse()

	log.InitLog()

	if err := run(flag.Args(), *css, *formats, *outputDir, *workers, *noRotate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputs []string, css, formats, outputDir string, workers int, noRotate bool) error {
	if len(inputs) == 0 {
		return errors.New("missing input file")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if formats != "" {
		cfg.Formats = strings.Split(formats, ",")
	}
	if css != "" {
		cfg.Stylesheet = css
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if noRotate {
		cfg.Normalize = false
	}

	opts, err := convert.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.OutputDir = outputDir

	results, err := convert.Run(context.Background(), inputs, opts)
	for _, r := range results {
		for _, o := range r.Outputs {
			log.Info.Println(o)
		}
	}
	return err
}
