package shell

import (
	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/version"
)

func versionCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "version",
		Help: "print inkpad version",
		Func: func(c *ishell.Context) {
			c.Println(version.Version)
		},
	}
}
