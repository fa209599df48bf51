// Package banner renders the framing around the show: an interactive intro
// panel before the terminal goes raw and a farewell panel after it is
// restored. The show loop itself never touches bubbletea.
package banner

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(1, 3)

	title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	accent = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff00ff"))

	subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	keyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)
)

type introModel struct {
	target string
	start  bool
}

func (m introModel) Init() tea.Cmd { return nil }

func (m introModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			m.start = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m introModel) View() string {
	var b strings.Builder
	b.WriteString(title.Render("s k y b u r s t"))
	b.WriteString("\n")
	b.WriteString(subtle.Render("fireworks countdown for your terminal"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("counting down to %s\n\n", accent.Render(m.target)))
	b.WriteString(keyHint.Render("space  launch a firework\n"))
	b.WriteString(keyHint.Render("q      leave the show\n\n"))
	b.WriteString(keyHint.Render("press enter to begin, q to bail"))
	return panel.Render(b.String()) + "\n"
}

// Intro shows the instruction panel and reports whether the user chose to
// start the show.
func Intro(target string) (bool, error) {
	p := tea.NewProgram(introModel{target: target})
	m, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("intro: %w", err)
	}
	return m.(introModel).start, nil
}

// Outro returns the farewell panel printed once the terminal is back to
// normal.
func Outro() string {
	var b strings.Builder
	b.WriteString(accent.Render("happy new year"))
	b.WriteString("\n")
	b.WriteString(subtle.Render("thanks for watching"))
	return panel.Render(b.String())
}
