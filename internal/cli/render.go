// Package cli provides the render command.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/config"
	"github.com/opencode-ai/textstyle/internal/logging"
	"github.com/opencode-ai/textstyle/internal/text"
)

var (
	renderProps     []string
	renderPropsFile string
	renderStyle     string
	renderAs        string
	renderFormat    string
	renderWidth     int
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringArrayVarP(&renderProps, "prop", "p", nil, "prop as key=value (repeatable)")
	renderCmd.Flags().StringVarP(&renderPropsFile, "props-file", "f", "", "YAML or JSON file of props")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "CSS declarations applied over the resolved style")
	renderCmd.Flags().StringVar(&renderAs, "as", "", "element to render as (html format)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "output format: terminal or html (default from config)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "box width for alignment (terminal format)")
}

var renderCmd = &cobra.Command{
	Use:   "render TEXT...",
	Short: "Render text with typography props",
	Long:  "Render text through the text component to the terminal or as an HTML element.",
	Example: `  textstyle render "Hello" -p bold=true -p transform=uppercase
  textstyle render "Title" --as h1 -p size=4 --style "color: red" --format html`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := collectProps(renderPropsFile, renderProps)
		if err != nil {
			return err
		}

		settings := renderSettings()
		props[box.ChildrenAttr] = strings.Join(args, " ")
		if renderAs != "" {
			props[text.PropAs] = renderAs
		}
		if renderStyle != "" {
			props[text.PropStyle] = renderStyle
		}
		applyWidth(props, settings)

		renderer, err := rendererFor(settings.Format)
		if err != nil {
			return err
		}

		ctx, th, err := activeTheme(cmd.Context())
		if err != nil {
			return err
		}

		logger := logging.Component("cli")
		logger.Debug().
			Str("theme", th.Name).
			Str("format", settings.Format).
			Msg("rendering text")

		out, err := text.New(text.WithRenderer(renderer)).Render(ctx, props)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func renderSettings() config.RenderConfig {
	settings := config.DefaultConfig().Render
	if cfg := GetConfig(); cfg != nil {
		settings = cfg.Render
	}
	if renderFormat != "" {
		settings.Format = renderFormat
	}
	if renderWidth > 0 {
		settings.Width = renderWidth
	}
	return settings
}

// applyWidth sets the box width for terminal output. HTML boxes size
// themselves, so width is not forwarded as an attribute there.
func applyWidth(props text.Props, settings config.RenderConfig) {
	if settings.Width <= 0 || !isTerminalFormat(settings.Format) {
		return
	}
	props["width"] = settings.Width
}

func isTerminalFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", config.FormatTerminal:
		return true
	default:
		return false
	}
}

func rendererFor(format string) (box.Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", config.FormatTerminal:
		return box.NewTerminalRenderer(nil), nil
	case config.FormatHTML:
		return box.NewHTMLRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown render format %q (expected %s or %s)", format, config.FormatTerminal, config.FormatHTML)
	}
}
