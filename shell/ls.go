package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/model"
)

func displayDrawing(c *ishell.Context, d *model.Drawing) {
	c.Printf("%s\t%dx%d\t%s\n", d.ID, d.Width, d.Height, d.Name)
}

func lsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ls",
		Help: "list stored drawings",
		Func: func(c *ishell.Context) {
			drawings, err := ctx.store.List()
			if err != nil {
				c.Err(err)
				return
			}

			for i := range drawings {
				displayDrawing(c, &drawings[i])
			}
		},
	}
}
