package cli

import (
	"context"
	"fmt"

	"github.com/anvil3d/scenevault/pkg/codec"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// showCommand decodes a saved scene and prints its records. Useful for
// checking hand-edited files without touching any live scene.
func showCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "show",
		Usage:     "Print the contents of a saved scene",
		ArgsUsage: "<name>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.newLogger()

			name := c.Args().Get(0)
			if name == "" {
				return goerr.New("scene name is required")
			}

			store, err := cfg.newStore()
			if err != nil {
				return err
			}

			data, err := store.Read(name)
			if err != nil {
				return err
			}

			requests, err := codec.Decode(data)
			if err != nil {
				return err
			}

			for i, req := range requests {
				line := fmt.Sprintf("%d: %s", i, req.Kind)
				if req.Name != nil {
					line += fmt.Sprintf(" name=%q", *req.Name)
				}
				if req.Parent != nil {
					line += fmt.Sprintf(" parent=%q", *req.Parent)
				}
				if !req.Transform.IsIdentity() {
					tr := req.Transform.Translation
					line += fmt.Sprintf(" at (%g, %g, %g)", tr[0], tr[1], tr[2])
				}
				fmt.Fprintln(c.Root().Writer, line)
			}
			return nil
		},
	}
}
