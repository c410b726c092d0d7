package shell

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/render"
)

func getCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "get",
		Help:      "export a drawing: get <drawing> [svg|pdf|png|sketch]",
		Completer: createDrawingCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing drawing name"))
				return
			}

			format := "svg"
			if len(c.Args) > 1 {
				format = strings.ToLower(c.Args[1])
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

			outputName := fmt.Sprintf("%s.%s", meta.Name, format)

			switch format {
			case "pdf":
				err = render.WritePDF(outputName, meta, sk)
			case "svg", "png", "sketch":
				f, ferr := os.Create(outputName)
				if ferr != nil {
					c.Err(ferr)
					return
				}
				defer f.Close()

				switch format {
				case "svg":
					err = render.WriteSVG(f, meta, sk, render.SVGOptions{})
				case "png":
					err = render.WritePNG(f, meta, sk)
				case "sketch":
					var data []byte
					data, err = sk.MarshalBinary()
					if err == nil {
						_, err = f.Write(data)
					}
				}
			default:
				err = fmt.Errorf("unsupported format: %s", format)
			}

			if err != nil {
				c.Err(err)
				return
			}

			c.Printf("written %s\n", outputName)
		},
	}
}
