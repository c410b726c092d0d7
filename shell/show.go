package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func showCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "show",
		Help:      "show details of a drawing",
		Completer: createDrawingCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing drawing name"))
				return
			}

			meta, err := ctx.resolve(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			_, sk, err := ctx.store.Load(meta.ID)
			if err != nil {
				c.Err(err)
				return
			}

			points := 0
			for _, shape := range sk.Shapes {
				points += len(shape.Points)
			}

			c.Printf("id:       %s\n", meta.ID)
			c.Printf("name:     %s\n", meta.Name)
			c.Printf("canvas:   %dx%d\n", meta.Width, meta.Height)
			c.Printf("shapes:   %d\n", len(sk.Shapes))
			c.Printf("points:   %d\n", points)
			c.Printf("created:  %s\n", meta.CreatedAt.Format("2006-01-02 15:04:05"))
			c.Printf("modified: %s\n", meta.ModifiedAt.Format("2006-01-02 15:04:05"))
		},
	}
}
