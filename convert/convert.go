// Package convert turns DNT files into SVG, PNG, PDF or bundle outputs.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/gnote/dnttools/annotations"
	"github.com/gnote/dnttools/archive"
	"github.com/gnote/dnttools/config"
	"github.com/gnote/dnttools/encoding/dnt"
	"github.com/gnote/dnttools/render"
	"github.com/gnote/dnttools/svg"
	"github.com/pkg/errors"
)

type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
	PDF Format = "pdf"
	Zip Format = "zip"
	DNT Format = "dnt"
)

var formats = []Format{SVG, PNG, PDF, Zip, DNT}

// ParseFormat accepts a format name, case insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q", s)
}

func ParseFormats(names []string) ([]Format, error) {
	var out []Format
	for _, n := range names {
		f, err := ParseFormat(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case SVG:
		return "image/svg+xml"
	case PNG:
		return "image/png"
	case PDF:
		return "application/pdf"
	case Zip:
		return "application/zip"
	}
	return "application/octet-stream"
}

type Options struct {
	Formats     []Format
	Normalize   bool
	Stylesheet  string
	PNGWidth    uint
	PageNumbers bool
	Workers     int
	// OutputDir receives the outputs. Empty means next to the input.
	OutputDir string
}

// OptionsFromConfig maps the user configuration onto conversion options.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	fs, err := ParseFormats(cfg.Formats)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Formats:     fs,
		Normalize:   cfg.Normalize,
		Stylesheet:  cfg.Stylesheet,
		PNGWidth:    cfg.PNGWidth,
		PageNumbers: cfg.PageNumbers,
		Workers:     cfg.Workers,
	}, nil
}

// Render writes doc to w in the given format. doc is rendered as is.
func Render(w io.Writer, doc *dnt.Document, f Format, opts Options) error {
	switch f {
	case SVG:
		return svg.Write(w, doc, svg.Options{Stylesheet: opts.Stylesheet})
	case PNG:
		return render.PNG(w, doc, render.Options{Width: opts.PNGWidth})
	case PDF:
		gen := annotations.CreatePdfGenerator(doc, annotations.PdfGeneratorOptions{AddPageNumbers: opts.PageNumbers})
		return gen.Generate(w)
	case Zip:
		z, err := archive.Build(doc, svg.Options{Stylesheet: opts.Stylesheet})
		if err != nil {
			return err
		}
		return z.Write(w)
	case DNT:
		_, err := doc.WriteTo(w)
		return err
	}
	return errors.Errorf("unknown format %q", f)
}

// OutputName derives an output file name by dropping the 4 character
// extension of input and appending the page index and ext.
func OutputName(input string, index int, ext string) string {
	base := ""
	if len(input) >= 4 {
		base = input[:len(input)-4]
	}
	return fmt.Sprintf("%s%d.%s", base, index, ext)
}
