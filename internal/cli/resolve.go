// Package cli provides the style resolution command.
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/text"
)

var (
	resolveProps     []string
	resolvePropsFile string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringArrayVarP(&resolveProps, "prop", "p", nil, "prop as key=value (repeatable)")
	resolveCmd.Flags().StringVarP(&resolvePropsFile, "props-file", "f", "", "YAML or JSON file of props")
}

// ResolveResult is the machine-readable output of the resolve command.
type ResolveResult struct {
	Theme string     `json:"theme"`
	Style box.Style  `json:"style"`
	Props text.Props `json:"props"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve typography props into a style",
	Long: `Resolve typography props into a concrete style against the active theme.

Props that are not typography props are reported as pass-through.`,
	Example: `  textstyle resolve -p size=3 -p bold=true -p align=center
  textstyle resolve -f heading.yaml --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := collectProps(resolvePropsFile, resolveProps)
		if err != nil {
			return err
		}

		_, th, err := activeTheme(cmd.Context())
		if err != nil {
			return err
		}

		style, rest := text.ComputeStyle(th, props)
		result := ResolveResult{Theme: th.Name, Style: style, Props: rest}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), result)
		}
		return printResolveResult(cmd.OutOrStdout(), result)
	},
}

func printResolveResult(out io.Writer, result ResolveResult) error {
	fmt.Fprintf(out, "Theme: %s\n\n", result.Theme)

	rows := make([][]string, 0, len(result.Style))
	for _, key := range result.Style.Keys() {
		rows = append(rows, []string{key, result.Style.String(key)})
	}
	if err := writeTable(out, []string{"STYLE", "VALUE"}, rows); err != nil {
		return err
	}

	if len(result.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(result.Props))
	for key := range result.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows = rows[:0]
	for _, key := range keys {
		rows = append(rows, []string{key, box.FormatValue(result.Props[key])})
	}
	fmt.Fprintln(out)
	return writeTable(out, []string{"PASS-THROUGH", "VALUE"}, rows)
}
