package tui

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/textstyle/internal/logging"
	"github.com/opencode-ai/textstyle/internal/text"
	"github.com/opencode-ai/textstyle/internal/theme"
)

func press(m model, key string) model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(model)
}

func TestModelTogglesProps(t *testing.T) {
	m := newModel(context.Background(), theme.Default)

	m = press(m, "b")
	m = press(m, "i")
	m = press(m, "u")
	m = press(m, "t")

	props := m.props(2)
	if props[text.PropBold] != true || props[text.PropItalic] != true {
		t.Fatalf("expected bold and italic props, got %#v", props)
	}
	if props[text.PropDecoration] != "underline" {
		t.Fatalf("expected underline decoration, got %#v", props[text.PropDecoration])
	}
	if props[text.PropTransform] != "uppercase" {
		t.Fatalf("expected uppercase transform, got %#v", props[text.PropTransform])
	}
	if props[text.PropSize] != 2 {
		t.Fatalf("expected size 2, got %#v", props[text.PropSize])
	}
}

func TestModelSelectionStaysInScale(t *testing.T) {
	m := newModel(context.Background(), theme.Default)

	m = press(m, "up")
	if m.selected != 0 {
		t.Fatalf("expected selection to stay at 0, got %d", m.selected)
	}

	for range theme.Default.TextScale {
		m = press(m, "down")
	}
	if m.selected != len(theme.Default.TextScale)-1 {
		t.Fatalf("expected selection clamped to last level, got %d", m.selected)
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(context.Background(), theme.Default)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestViewListsEveryLevel(t *testing.T) {
	m := newModel(context.Background(), theme.Default)
	view := m.View()

	for _, size := range []string{"12px", "20px", "64px"} {
		if !strings.Contains(view, size) {
			t.Errorf("expected %s in view, got:\n%s", size, view)
		}
	}
	if !strings.Contains(view, sampleText) {
		t.Errorf("expected sample text in view")
	}
	if !strings.Contains(view, "font-size: 12px;") {
		t.Errorf("expected CSS of the selected level in view")
	}
}

func TestViewDoesNotLogOverAltScreen(t *testing.T) {
	var buf bytes.Buffer
	if err := logging.Init(logging.Config{Level: "debug", Format: logging.FormatJSON, Output: &buf}); err != nil {
		t.Fatalf("init logging: %v", err)
	}
	t.Cleanup(func() {
		_ = logging.Init(logging.Config{Level: "info", Output: os.Stderr})
	})

	m := newModel(context.Background(), theme.Default)
	_ = m.View()

	if buf.Len() != 0 {
		t.Fatalf("expected no log output while rendering the preview, got %q", buf.String())
	}
}
