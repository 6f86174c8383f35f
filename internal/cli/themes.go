// Package cli provides the theme listing command.
package cli

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/theme"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long:  "List built-in themes and themes found in the theme search paths.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir, _ := os.Getwd()
		themes, err := theme.LoadThemesFromSearchPaths(projectDir)
		if err != nil {
			return err
		}

		if cfg := GetConfig(); cfg != nil && cfg.Theme.Dir != "" {
			extra, err := theme.LoadThemesFromDir(cfg.Theme.Dir)
			if err != nil {
				return err
			}
			themes = mergeThemes(extra, themes)
		}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), themes)
		}

		rows := make([][]string, 0, len(themes))
		for _, th := range themes {
			rows = append(rows, []string{
				th.Name,
				th.Text.Color,
				box.FormatValue(th.Text.Bold),
				formatScale(th.TextScale),
				th.Source,
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "COLOR", "BOLD", "SCALE", "SOURCE"}, rows)
	},
}

// mergeThemes keeps the first theme seen for each name and sorts by name.
func mergeThemes(groups ...[]*theme.Theme) []*theme.Theme {
	seen := make(map[string]bool)
	merged := make([]*theme.Theme, 0)
	for _, group := range groups {
		for _, th := range group {
			if seen[th.Name] {
				continue
			}
			seen[th.Name] = true
			merged = append(merged, th)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Name < merged[j].Name
	})
	return merged
}

func formatScale(scale []float64) string {
	parts := make([]string, 0, len(scale))
	for _, size := range scale {
		parts = append(parts, strconv.FormatFloat(size, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
