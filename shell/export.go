package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/ishell"
	"github.com/gnote/dnttools/convert"
	flag "github.com/ogier/pflag"
)

var exportFormats = []convert.Format{convert.SVG, convert.PNG, convert.PDF, convert.Zip, convert.DNT}

func exportHelp(f convert.Format) string {
	if f == convert.DNT {
		return "save the document, usage: dnt [-o file]"
	}
	return fmt.Sprintf("export as %s, usage: %s [-o file] [--css stylesheet]", f, f)
}

func exportCmd(ctx *ShellCtxt, f convert.Format) *ishell.Cmd {
	return &ishell.Cmd{
		Name: string(f),
		Help: exportHelp(f),
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet(string(f), flag.ContinueOnError)
			var output, css string
			flagSet.StringVarP(&output, "output", "o", "", "output file")
			flagSet.StringVar(&css, "css", ctx.Config.Stylesheet, "stylesheet referenced from svg output")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			doc, err := ctx.document()
			if err != nil {
				c.Err(err)
				return
			}

			if output == "" {
				if ctx.Path == "" {
					c.Err(errors.New("missing output file"))
					return
				}
				output = convert.OutputName(ctx.Path, 0, string(f))
			}

			opts := convert.Options{
				Stylesheet:  css,
				PNGWidth:    ctx.Config.PNGWidth,
				PageNumbers: ctx.Config.PageNumbers,
			}
			err = convert.WriteFile(output, func(w io.Writer) error {
				return convert.Render(w, doc, f, opts)
			})
			if err != nil {
				c.Err(fmt.Errorf("failed to write %s: %w", output, err))
				return
			}

			c.Println(output)
		},
	}
}
