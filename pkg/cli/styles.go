package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const lineWidth = 60

// Styles holds the lipgloss styles used across the command tree.
type Styles struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Savings lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the style set. With noColor every style renders
// plain text, honoring NO_COLOR and --no-color.
func NewStyles(noColor bool) Styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return Styles{
			Banner:  plain,
			Section: plain,
			Prompt:  plain,
			Error:   plain,
			Success: plain,
			Savings: plain,
			Muted:   plain,
		}
	}
	return Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Savings: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// banner prints a full-width rule, a centered styled title, and a
// closing rule.
func (s Styles) banner(w io.Writer, title string) {
	rule := strings.Repeat("=", lineWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, s.Banner.Render(center(title, lineWidth)))
	fmt.Fprintln(w, rule)
}

// section prints a styled heading followed by a thin rule.
func (s Styles) section(w io.Writer, title string) {
	fmt.Fprintln(w, s.Section.Render(title))
	fmt.Fprintln(w, strings.Repeat("-", lineWidth))
}

func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
}
