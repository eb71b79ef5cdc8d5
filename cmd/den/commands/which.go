package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWhichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "which PATH",
		Short: "Show which environment and packages own a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, owners, err := c.app.Which(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("prefix: %s\n", prefix)
			if len(owners) == 0 {
				cmd.Println("package: not found")
				return nil
			}
			for _, dist := range owners {
				cmd.Printf("package: %s\n", dist)
			}
			return nil
		},
	}
}
