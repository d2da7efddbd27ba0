package update

import (
	tea "github.com/charmbracelet/bubbletea"

	domainmodel "wordkeep/internal/model"
	"wordkeep/internal/views"
)

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Keys.Search, "ctrl+f":
		m.searching = true
		m.searchInput.Focus()
		m.Status = StatusBar{Text: "filter mode", IsError: false}
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Words)-1 {
			m.Cursor++
		}
	case "enter":
		if word, ok := m.wordAtCursor(); ok {
			m = m.viewWord(word)
		}
	case m.Keys.Add:
		m = m.openAddForm("")
		return m, m.Form.form.Init()
	case m.Keys.Edit:
		if word, ok := m.wordAtCursor(); ok {
			m = m.openEditForm(word)
			return m, m.Form.form.Init()
		}
		m.Status = StatusBar{Text: "select a word to edit", IsError: true}
	case m.Keys.Delete:
		if word, ok := m.wordAtCursor(); ok {
			m = m.openDeleteConfirm(word)
			return m, m.Form.form.Init()
		}
		m.Status = StatusBar{Text: "select a word to delete", IsError: true}
	case m.Keys.Theme:
		m = m.applyTheme(m.Theme.Toggle())
	case m.Keys.Progress:
		m = m.openProgress()
	default:
		// Remaining keys scroll the explanation pane.
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		m.Status = StatusBar{Text: "list mode", IsError: false}
	default:
		if msg.Type == tea.KeyRunes {
			m.searchInput.SetValue(m.searchInput.Value() + string(msg.Runes))
		} else {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			_ = cmd
		}
	}
	m.FilterText = m.searchInput.Value()
	return m.refreshWords()
}

func (m Model) refreshWords() Model {
	m.Words = m.Store.Filter(m.FilterText)
	m.Cursor = clamp(m.Cursor, 0, len(m.Words)-1)
	return m
}

func (m Model) wordAtCursor() (string, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Words) {
		return "", false
	}
	return m.Words[m.Cursor], true
}

// viewWord shows the explanation for word and counts a "viewed" activity.
func (m Model) viewWord(word string) Model {
	m.SelectedWord = word
	m.Markup = views.RenderMarkdown(m.Store.Get(word), m.Theme)
	m.reader.SetContent(m.Markup)
	m.reader.GotoTop()
	if err := m.Progress.Record(domainmodel.ActionViewed); err != nil {
		m.Logger.Error().Err(err).Str("word", word).Msg("record viewed")
		m.Status = StatusBar{Text: "progress not saved: " + err.Error(), IsError: true}
		m.LastError = err
		return m
	}
	m.Status = StatusBar{Text: "viewing " + word, IsError: false}
	return m
}

// applyTheme switches palettes and re-renders whatever is on screen.
func (m Model) applyTheme(theme domainmodel.Theme) Model {
	m.Theme = theme
	if m.SelectedWord != "" {
		m.Markup = views.RenderMarkdown(m.Store.Get(m.SelectedWord), m.Theme)
		m.reader.SetContent(m.Markup)
	}
	m.Status = StatusBar{Text: "theme: " + string(m.Theme), IsError: false}
	return m
}
