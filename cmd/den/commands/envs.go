package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List known environment prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prefixes, err := c.app.Envs()
			if err != nil {
				return err
			}
			for _, prefix := range prefixes {
				cmd.Println(prefix)
			}
			return nil
		},
	}
}
