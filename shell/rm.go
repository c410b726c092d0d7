package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func rmCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "rm",
		Help:      "delete a drawing",
		Completer: createDrawingCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing drawing name"))
				return
			}

			for _, arg := range c.Args {
				meta, err := ctx.resolve(arg)
				if err != nil {
					c.Err(err)
					continue
				}

				if err := ctx.store.Delete(meta.ID); err != nil {
					c.Err(err)
				}
			}
		},
	}
}
