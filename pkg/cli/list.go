package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List saved scenes",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.newLogger()

			store, err := cfg.newStore()
			if err != nil {
				return err
			}

			names, err := store.List()
			if err != nil {
				return err
			}

			if len(names) == 0 {
				fmt.Fprintf(c.Root().Writer, "no saved scenes in %s\n", cfg.saveDir)
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(c.Root().Writer, name)
			}
			return nil
		},
	}
}
