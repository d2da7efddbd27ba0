package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"wordkeep/internal/model"
)

type AppData struct {
	Header      string
	LeftPane    string
	RightPane   string
	StatusLine  string
	StatusError bool
	Footer      string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

func RenderApp(data AppData) string {
	left := panelStyle.Width(32).Render(data.LeftPane)
	right := panelStyle.Width(76).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders markdown for the terminal pane with the glamour
// style matching the active theme. On a render failure the raw source is
// shown rather than nothing.
func RenderMarkdown(md string, theme model.Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == model.ThemeDark {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
