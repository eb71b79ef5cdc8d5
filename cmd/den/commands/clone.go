package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/den/internal/core/domain"
)

func (c *CLI) newCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone SOURCE DEST",
		Short: "Clone an environment prefix into a new one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, untracked, err := c.app.Clone(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Printf("Packages: %d\n", len(plan.Steps(domain.OpLink)))
			cmd.Printf("Files: %d\n", len(untracked))
			return nil
		},
	}
}
