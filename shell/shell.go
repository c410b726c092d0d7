// Package shell implements the interactive store shell.
package shell

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/config"
	"github.com/inkpad/inkpad/model"
	"github.com/inkpad/inkpad/store"
	"github.com/inkpad/inkpad/version"
)

type ShellCtxt struct {
	store *store.Store
	cfg   config.Config
}

// resolve finds a drawing by name first, then by id.
func (ctx *ShellCtxt) resolve(nameOrID string) (model.Drawing, error) {
	d, err := ctx.store.FindByName(nameOrID)
	if err == nil {
		return d, nil
	}

	d, _, err = ctx.store.Load(nameOrID)
	return d, err
}

// createDrawingCompleter completes command arguments with the names
// of stored drawings.
func createDrawingCompleter(ctx *ShellCtxt) func(args []string) []string {
	return func(args []string) []string {
		drawings, err := ctx.store.List()
		if err != nil {
			return nil
		}

		var names []string
		for _, d := range drawings {
			names = append(names, d.Name)
		}
		return names
	}
}

// RunShell starts the interactive shell over the store. When args is
// non-empty it is run as a single command instead.
func RunShell(s *store.Store, cfg config.Config, args []string) error {
	shell := ishell.New()
	shell.Println(fmt.Sprintf("inkpad version: %s", version.Version))
	shell.SetPrompt("[inkpad]> ")

	ctx := &ShellCtxt{store: s, cfg: cfg}

	shell.AddCmd(lsCmd(ctx))
	shell.AddCmd(showCmd(ctx))
	shell.AddCmd(rmCmd(ctx))
	shell.AddCmd(mvCmd(ctx))
	shell.AddCmd(putCmd(ctx))
	shell.AddCmd(getCmd(ctx))
	shell.AddCmd(normalizeCmd(ctx))
	shell.AddCmd(setCmd(ctx))
	shell.AddCmd(versionCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Run()
	return nil
}
