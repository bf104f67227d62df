package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
	"github.com/gnote/dnttools/encoding/dnt"
)

func (ctx *ShellCtxt) open(path string) error {
	doc, err := dnt.Open(path)
	if err != nil {
		return err
	}
	ctx.Doc = doc
	ctx.Path = path
	return nil
}

func openCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "open",
		Help:      "load a dnt file, usage: open <file>",
		Completer: createFsEntryCompleter(),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing source file"))
				return
			}

			if err := ctx.open(c.Args[0]); err != nil {
				c.Err(err)
				return
			}

			c.SetPrompt(ctx.prompt())
			c.Printf("loaded %s: %d samples\n", ctx.Path, len(ctx.Doc.Samples))
		},
	}
}
