package cli

import (
	"fmt"
	"os"

	"github.com/RevCBH/livegen/internal/generate"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check live.yml files against the descriptor schema",
		Long: `Validate checks that each file is a live.yml with exactly the resources,
env and command sections livegen produces. Exits non-zero when any file
fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					errorf(cmd.ErrOrStderr(), "%s: %v", path, err)
					failed++
					continue
				}
				if err := generate.ValidateLive(data); err != nil {
					errorf(cmd.ErrOrStderr(), "%s: %v", path, err)
					failed++
					continue
				}
				successf(cmd.OutOrStdout(), "%s is valid", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}

	return cmd
}
