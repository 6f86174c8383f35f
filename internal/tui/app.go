// Package tui implements the interactive type-scale preview.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/textstyle/internal/box"
	"github.com/opencode-ai/textstyle/internal/text"
	"github.com/opencode-ai/textstyle/internal/theme"
)

const sampleText = "The quick brown fox jumps over the lazy dog"

var transforms = []string{"", "uppercase", "lowercase", "capitalize"}

// Run launches the preview program for th.
func Run(ctx context.Context, th theme.Theme) error {
	program := tea.NewProgram(newModel(ctx, th), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type model struct {
	ctx       context.Context
	theme     theme.Theme
	component *text.Text
	chrome    chrome

	width     int
	selected  int
	bold      bool
	italic    bool
	underline bool
	transform int
	err       error
}

func newModel(ctx context.Context, th theme.Theme) model {
	if ctx == nil {
		ctx = context.Background()
	}
	return model{
		ctx:       ctx,
		theme:     th,
		component: text.New(text.WithTheme(th), text.WithLogger(zerolog.Nop())),
		chrome:    buildChrome(th),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.theme.TextScale)-1 {
				m.selected++
			}
		case "b":
			m.bold = !m.bold
		case "i":
			m.italic = !m.italic
		case "u":
			m.underline = !m.underline
		case "t":
			m.transform = (m.transform + 1) % len(transforms)
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// props builds the text props for one scale level from the toggles.
func (m model) props(level int) text.Props {
	props := text.Props{
		text.PropSize:    level,
		text.PropBold:    m.bold,
		text.PropItalic:  m.italic,
		box.ChildrenAttr: sampleText,
	}
	if m.underline {
		props[text.PropDecoration] = "underline"
	}
	if transform := transforms[m.transform]; transform != "" {
		props[text.PropTransform] = transform
	}
	return props
}

func (m model) View() string {
	lines := []string{
		m.chrome.Title.Render(fmt.Sprintf("Type scale: %s", m.theme.Name)),
		"",
	}

	for level := range m.theme.TextScale {
		element, err := m.component.Element(m.ctx, m.props(level))
		if err != nil {
			lines = append(lines, m.chrome.Muted.Render(err.Error()))
			continue
		}

		label := fmt.Sprintf("%d  %-6s", level, element.Style.String(box.FontSize))
		if level == m.selected {
			label = m.chrome.Active.Render(label)
		} else {
			label = m.chrome.Label.Render(label)
		}

		rendered, err := box.NewTerminalRenderer(nil).Render(element)
		if err != nil {
			rendered = err.Error()
		}
		lines = append(lines, label+"  "+rendered)
	}

	selected := m.props(m.selected)
	element, err := m.component.Element(m.ctx, selected)
	if err == nil {
		lines = append(lines, "", m.chrome.Muted.Render(element.Style.CSS()))
	}

	lines = append(lines, "", m.chrome.Muted.Render(m.statusLine()))
	lines = append(lines, m.chrome.Muted.Render("Keys: j/k select | b bold | i italic | u underline | t transform | q quit"))

	return strings.Join(lines, "\n") + "\n"
}

func (m model) statusLine() string {
	transform := transforms[m.transform]
	if transform == "" {
		transform = "none"
	}
	return fmt.Sprintf("bold=%s italic=%s underline=%s transform=%s",
		onOff(m.bold), onOff(m.italic), onOff(m.underline), transform)
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
