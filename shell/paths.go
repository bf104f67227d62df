package shell

import (
	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"
)

func pathsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "paths",
		Help: "list strokes, usage: paths [-n max]",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("paths", flag.ContinueOnError)
			var limit int
			flagSet.IntVarP(&limit, "max", "n", 0, "stop after this many strokes")
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

			n := 0
			s := doc.Paths()
			for s.Next() {
				if limit > 0 && n >= limit {
					c.Println("...")
					return
				}
				line := s.Polyline()
				first, last := line.Points[0], line.Points[len(line.Points)-1]
				c.Printf("%4d [%s]\t%d points\t(%d,%d) -> (%d,%d)\n",
					n, line.Class(), len(line.Points), first.X, first.Y, last.X, last.Y)
				n++
			}
			if err := s.Err(); err != nil {
				c.Err(err)
			}
		},
	}
}
