package shell

import (
	"errors"

	"github.com/abiosoft/ishell"

	"github.com/inkpad/inkpad/gesture"
	"github.com/inkpad/inkpad/model"
)

func normalizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "normalize",
		Help:      "run the gesture normalization pipeline over a drawing's shapes",
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

			opts := gesture.Options{
				SampleCount:   ctx.cfg.Gesture.SampleCount,
				CanonicalSize: ctx.cfg.Gesture.CanonicalSize,
			}

			for i, shape := range sk.Shapes {
				normalized, err := gesture.Normalize(model.GesturePoints(shape), opts)
				if err != nil {
					c.Err(err)
					continue
				}

				c.Printf("shape %d:\n", i)
				for _, p := range normalized {
					c.Printf("  %8.3f %8.3f\n", p.X, p.Y)
				}
			}
		},
	}
}
