package shell

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
)

func putCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "put",
		Help: "import a sketch file into the store",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing source file"))
				return
			}

			srcName := c.Args[0]

			data, err := os.ReadFile(srcName)
			if err != nil {
				c.Err(err)
				return
			}

			sk := &sketch.Sketch{}
			if err := sk.UnmarshalBinary(data); err != nil {
				c.Err(err)
				return
			}

			name := strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName))
			if len(c.Args) > 1 {
				name = c.Args[1]
			}

			meta := model.NewDrawing(name, ctx.cfg.CanvasWidth, ctx.cfg.CanvasHeight)
			if err := ctx.store.Save(meta, sk); err != nil {
				c.Err(err)
				return
			}

			c.Printf("imported %s as %s\n", srcName, meta.ID)
		},
	}
}
