package shell

import (
	"context"
	"io/ioutil"
	"os"

	"github.com/abiosoft/ishell"
	"github.com/gnote/dnttools/hwr"
	flag "github.com/ogier/pflag"
)

func hwrCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "hwr",
		Help: "perform handwriting recognition on the page",
		LongHelp: `Usage: hwr [options]

Options:
  --type=<Text|Math|Diagram>  Content type (default: Text)
  --lang=<lang>               Language code (default: en_US)
  -o, --output=<file>         Write the text to a file instead of printing it

Needs DNT_HWR_APPLICATIONKEY and DNT_HWR_HMAC.`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("hwr", flag.ContinueOnError)
			var cfg hwr.Config
			var output string
			flagSet.StringVar(&cfg.InputType, "type", "Text", "content type")
			flagSet.StringVar(&cfg.Lang, "lang", "en_US", "language code")
			flagSet.StringVarP(&output, "output", "o", "", "output file")
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

			page, err := doc.Normalized()
			if err != nil {
				c.Err(err)
				return
			}

			text, err := hwr.Recognize(context.Background(), page, cfg,
				os.Getenv(hwr.ApplicationKeyEnvVar), os.Getenv(hwr.HmacEnvVar))
			if err != nil {
				c.Err(err)
				return
			}

			if output == "" {
				c.Println(text)
				return
			}
			if err := ioutil.WriteFile(output, []byte(text), 0644); err != nil {
				c.Err(err)
				return
			}
			c.Println(output)
		},
	}
}
