package shell

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/abiosoft/ishell"
	"github.com/gnote/dnttools/config"
	"github.com/gnote/dnttools/encoding/dnt"
)

var errNoDocument = errors.New("no document loaded, use open <file>")

type ShellCtxt struct {
	Doc        *dnt.Document
	Path       string
	Config     config.Config
	JSONOutput bool
}

func (ctx *ShellCtxt) prompt() string {
	if ctx.Doc == nil {
		return "[dnt]>"
	}
	return fmt.Sprintf("[%s]>", filepath.Base(ctx.Path))
}

func (ctx *ShellCtxt) document() (*dnt.Document, error) {
	if ctx.Doc == nil {
		return nil, errNoDocument
	}
	return ctx.Doc, nil
}

// RunShell starts the inspector. With args it runs them as a single
// command and returns, otherwise it reads commands interactively.
func RunShell(cfg config.Config, input string, args []string) error {
	ctx := &ShellCtxt{Config: cfg}
	if input != "" {
		if err := ctx.open(input); err != nil {
			return err
		}
	}

	shell := ishell.New()

	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(openCmd(ctx))
	shell.AddCmd(infoCmd(ctx))
	shell.AddCmd(statCmd(ctx))
	shell.AddCmd(rotateCmd(ctx))
	shell.AddCmd(pathsCmd(ctx))
	shell.AddCmd(hwrCmd(ctx))
	for _, f := range exportFormats {
		shell.AddCmd(exportCmd(ctx, f))
	}

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Println("DNT stroke file shell, type help for commands")
	shell.Run()
	return nil
}
