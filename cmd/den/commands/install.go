package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/den/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [specs...]",
		Short: "Install explicit package specifications into a prefix",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			if file == "" && len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			prefix, _ := cmd.Flags().GetString("prefix")
			if prefix == "" {
				prefix = c.cfg.RootPrefix
			}

			var (
				plan *domain.Plan
				err  error
			)
			if file != "" {
				plan, err = c.app.InstallFile(cmd.Context(), file, prefix)
			} else {
				plan, err = c.app.Install(cmd.Context(), args, prefix)
			}
			if err != nil {
				return err
			}

			if plan.Empty() {
				cmd.Printf("nothing to do, %s is up to date\n", prefix)
				return nil
			}
			cmd.Printf("executed %d plan steps, %d packages linked into %s\n",
				plan.Size(), len(plan.Steps(domain.OpLink)), prefix)
			return nil
		},
	}
	cmd.Flags().StringP("prefix", "p", "", "Target environment prefix (defaults to the root prefix)")
	cmd.Flags().StringP("file", "f", "", "Read specifications from an explicit specification file")
	return cmd
}
