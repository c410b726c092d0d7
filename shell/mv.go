package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func mvCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "mv",
		Help:      "rename a drawing",
		Completer: createDrawingCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: mv <drawing> <new name>"))
				return
			}

			meta, err := ctx.resolve(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}

			if err := ctx.store.Rename(meta.ID, c.Args[1]); err != nil {
				c.Err(err)
			}
		},
	}
}
