package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/config"
)

func setCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "set",
		Help: "set a default pen property: set <color|style> <value>",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(errors.New("usage: set <color|style> <value>"))
				return
			}

			key, value := c.Args[0], c.Args[1]

			switch key {
			case "color":
				ctx.cfg.Pen.Color = value
			case "style":
				switch value {
				case "solid", "dashed", "dotted":
					ctx.cfg.Pen.Style = value
				default:
					c.Err(fmt.Errorf("unknown style: %s", value))
					return
				}
			default:
				c.Err(fmt.Errorf("unknown property: %s", key))
				return
			}

			if err := config.Save(ctx.cfg); err != nil {
				c.Err(err)
			}
		},
	}
}
