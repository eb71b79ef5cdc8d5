package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUntrackedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untracked PREFIX",
		Short: "List files in a prefix that no linked package owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			excludeSelfBuilt, _ := cmd.Flags().GetBool("exclude-self-built")
			files, err := c.app.Untracked(args[0], excludeSelfBuilt)
			if err != nil {
				return err
			}
			for _, f := range files.Sorted() {
				cmd.Println(f)
			}
			return nil
		},
	}
	cmd.Flags().Bool("exclude-self-built", false, "Count files of locally built packages as untracked")
	return cmd
}
