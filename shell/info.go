package shell

import (
	"github.com/abiosoft/ishell"
)

func infoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "info",
		Help: "print the document header",
		Func: func(c *ishell.Context) {
			doc, err := ctx.document()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(doc.String())
		},
	}
}

func statCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "stat",
		Help: "print document statistics as json",
		Func: func(c *ishell.Context) {
			doc, err := ctx.document()
			if err != nil {
				c.Err(err)
				return
			}
			if err := displayJSON(c, DocumentToJSON(ctx.Path, doc)); err != nil {
				c.Err(err)
			}
		},
	}
}
