// Package cli provides the interactive preview command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/opencode-ai/textstyle/internal/tui"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the theme's type scale",
	Long:  "Launch an interactive preview of every text scale level in the active theme.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return &PreflightError{
				Message:  "preview requires an interactive terminal",
				Hint:     "Run with a TTY, or use `textstyle resolve` for scripted output",
				NextStep: "textstyle resolve --help",
			}
		}

		ctx, th, err := activeTheme(cmd.Context())
		if err != nil {
			return err
		}
		return tui.Run(ctx, th)
	},
}
