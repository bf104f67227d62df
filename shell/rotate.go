package shell

import (
	"github.com/abiosoft/ishell"
)

func rotateCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "rotate",
		Help: "turn the page upright",
		Func: func(c *ishell.Context) {
			doc, err := ctx.document()
			if err != nil {
				c.Err(err)
				return
			}

			if doc.Rotation == 0 {
				c.Println("already upright")
				return
			}

			from := doc.Rotation
			if err := doc.Rotate(); err != nil {
				c.Err(err)
				return
			}
			c.Printf("rotated %d degrees, page is now %dx%d\n", int(from)*90, doc.XSize, doc.YSize)
		},
	}
}
