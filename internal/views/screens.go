package views

import (
	"fmt"
	"strings"
)

type BrowsePanelData struct {
	SearchView string
	Searching  bool
	Words      []string
	Cursor     int
	Selected   string
	Total      int
}

type ReaderPanelData struct {
	Word         string
	MarkdownView string
	Theme        string
}

type ProgressRowData struct {
	Date   string
	Added  int
	Viewed int
}

type ProgressPanelData struct {
	ChartView   string
	Rows        []ProgressRowData
	TotalAdded  int
	TotalViewed int
}

type HelpPanelData struct {
	CurrentScreen string
	Bindings      []string
	HelpView      string
}

func RenderBrowsePanel(data BrowsePanelData) string {
	var b strings.Builder
	b.WriteString("search: " + data.SearchView + "\n")
	if data.Searching {
		b.WriteString("actions: [enter/esc]done typing\n")
	} else {
		b.WriteString("actions: [a]dd [e]dit [d]elete [t]heme [p]rogress [?]help\n")
	}
	if len(data.Words) == 0 {
		b.WriteString(mutedStyle.Render("no words yet, press a to add one"))
		return strings.TrimSpace(b.String())
	}
	for i, word := range data.Words {
		line := "  " + word
		if i == data.Cursor {
			line = selectStyle.Render("> " + word)
		} else if word == data.Selected {
			line = "* " + word
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d words", len(data.Words), data.Total)))
	return strings.TrimSpace(b.String())
}

func RenderReaderPanel(data ReaderPanelData) string {
	if data.Word == "" {
		return mutedStyle.Render("select a word and press enter to read it")
	}
	var b strings.Builder
	b.WriteString(selectStyle.Render(data.Word))
	b.WriteString(mutedStyle.Render("  (" + data.Theme + ")"))
	b.WriteString("\n\n")
	if data.MarkdownView == "" {
		b.WriteString(mutedStyle.Render("(no explanation yet)"))
	} else {
		b.WriteString(data.MarkdownView)
	}
	return strings.TrimSpace(b.String())
}

func RenderProgressPanel(data ProgressPanelData) string {
	var b strings.Builder
	b.WriteString("activity log:\n")
	b.WriteString("actions: [esc]back [c]export csv\n")
	if data.ChartView != "" {
		b.WriteString(data.ChartView + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString(mutedStyle.Render("no activity recorded yet") + "\n")
	}
	for _, row := range data.Rows {
		b.WriteString(fmt.Sprintf("%s  added: %d  viewed: %d\n", row.Date, row.Added, row.Viewed))
	}
	b.WriteString(fmt.Sprintf("total added: %d | total viewed: %d", data.TotalAdded, data.TotalViewed))
	return strings.TrimSpace(b.String())
}

func RenderHelpPanel(data HelpPanelData) string {
	var b strings.Builder
	b.WriteString("help (" + data.CurrentScreen + "):\n")
	for _, binding := range data.Bindings {
		b.WriteString(binding + "\n")
	}
	if data.HelpView != "" {
		b.WriteString(data.HelpView)
	}
	return strings.TrimSpace(b.String())
}
