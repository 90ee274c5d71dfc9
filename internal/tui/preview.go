// Package tui renders an interactive preview of augmentation output: each
// input phrase alongside its expanded variants, scrollable, with an
// augmented-only filter. Useful for eyeballing a synonym table against a
// dataset before committing to a full run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#f0d870")
	colorMuted  = lipgloss.Color("#6c6c6c")
	colorOK     = lipgloss.Color("#5fd75f")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	originalStyle = lipgloss.NewStyle().Foreground(colorMuted)
	variantStyle  = lipgloss.NewStyle().Foreground(colorOK)
	helpStyle     = lipgloss.NewStyle().Foreground(colorMuted).PaddingTop(1)
)

// Entry is one input phrase with its expansion variants. Variants excludes
// the unmodified original.
type Entry struct {
	Original string
	Variants []string
}

// Augmented reports whether any substitution happened for this entry.
func (e Entry) Augmented() bool {
	return len(e.Variants) > 0
}

// Model is the bubbletea model for the preview screen.
type Model struct {
	Title   string
	entries []Entry

	keys          KeyMap
	view          viewport.Model
	augmentedOnly bool
	ready         bool
}

// NewModel builds a preview model over the given entries.
func NewModel(title string, entries []Entry) Model {
	return Model{
		Title:   title,
		entries: entries,
		keys:    DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.augmentedOnly = !m.augmentedOnly
			m.view.SetContent(m.renderEntries())
			m.view.GotoTop()
			return m, nil
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.view.KeyMap = m.keys.viewportKeyMap()
			m.view.SetContent(m.renderEntries())
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - headerHeight - footerHeight
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading preview..."
	}

	header := titleStyle.Render(m.Title)
	if m.augmentedOnly {
		header += mutedStyle.Render("  (augmented only)")
	}

	help := helpStyle.Render("↑/↓ scroll · a augmented only · q quit")
	return header + "\n\n" + m.view.View() + "\n" + help
}

// renderEntries formats the entry list for the viewport.
func (m Model) renderEntries() string {
	var b strings.Builder
	shown := 0
	for _, e := range m.entries {
		if m.augmentedOnly && !e.Augmented() {
			continue
		}
		shown++

		b.WriteString(originalStyle.Render(e.Original))
		b.WriteString("\n")
		for _, v := range e.Variants {
			b.WriteString(variantStyle.Render("  → " + v))
			b.WriteString("\n")
		}
		if !e.Augmented() {
			b.WriteString(mutedStyle.Render("  (no formula tokens)"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if shown == 0 {
		return mutedStyle.Render("nothing to show")
	}
	return b.String()
}

// Run displays the preview and blocks until the user quits.
func Run(title string, entries []Entry) error {
	p := tea.NewProgram(NewModel(title, entries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
