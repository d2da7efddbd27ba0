package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wordkeep/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// huh forms consume every message kind while active, not only keys.
	if m.Form.Active {
		return m.handleFormMsg(msg)
	}

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		m.reader.Width = clamp(typed.Width-40, 20, 100)
		m.reader.Height = clamp(typed.Height-8, 5, 60)
		return m, nil

	case tea.KeyMsg:
		if m.Palette.Active {
			next := m.handlePaletteKey(typed)
			if next.Quitting {
				return next, tea.Quit
			}
			if next.Form.Active && next.Form.form != nil {
				return next, next.Form.form.Init()
			}
			return next, nil
		}
		if m.searching {
			return m.handleSearchKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentScreen == ScreenProgress {
			return m.handleProgressKey(typed)
		}
		return m.handleBrowseKey(typed)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.Form.Active && m.Form.form != nil {
		return m.Form.form.View()
	}

	left := views.RenderBrowsePanel(views.BrowsePanelData{
		SearchView: m.searchInput.View(),
		Searching:  m.searching,
		Words:      m.Words,
		Cursor:     m.Cursor,
		Selected:   m.SelectedWord,
		Total:      m.Store.Len(),
	})

	var right string
	if m.CurrentScreen == ScreenProgress {
		right = views.RenderProgressPanel(m.progressPanelData())
	} else {
		m.reader.SetContent(m.Markup)
		right = views.RenderReaderPanel(views.ReaderPanelData{
			Word:         m.SelectedWord,
			MarkdownView: m.reader.View(),
			Theme:        string(m.Theme),
		})
	}

	footer := "[/]command  [?]help  [q]quit"
	if m.Palette.Active {
		footer = "command: " + m.commandInput.View()
	}

	out := views.RenderApp(views.AppData{
		Header:      "wordkeep — personal glossary",
		LeftPane:    left,
		RightPane:   right,
		StatusLine:  m.Status.Text,
		StatusError: m.Status.IsError,
		Footer:      footer,
	})
	if m.HelpVisible {
		out += "\n" + m.renderHelpView()
	}
	return out
}
