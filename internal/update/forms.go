package update

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"wordkeep/internal/dict"
	domainmodel "wordkeep/internal/model"
	"wordkeep/internal/views"
)

func (m Model) openAddForm(prefill string) Model {
	word, explanation := prefill, ""
	m.Form = FormState{Active: true, Kind: FormAdd, word: &word, explanation: &explanation}
	m.Form.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Word").Value(m.Form.word),
			huh.NewText().Title("Explanation (markdown)").Value(m.Form.explanation),
		),
	).WithShowHelp(true).WithShowErrors(true)
	return m
}

func (m Model) openEditForm(word string) Model {
	explanation := m.Store.Get(word)
	m.Form = FormState{Active: true, Kind: FormEdit, TargetWord: word, explanation: &explanation}
	m.Form.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title(fmt.Sprintf("Explanation for %q (markdown)", word)).Value(m.Form.explanation),
		),
	).WithShowHelp(true).WithShowErrors(true)
	return m
}

// openDeleteConfirm gates removal behind an explicit confirmation; the store
// itself never asks.
func (m Model) openDeleteConfirm(word string) Model {
	confirm := false
	m.Form = FormState{Active: true, Kind: FormDelete, TargetWord: word, confirm: &confirm}
	m.Form.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", word)).
				Affirmative("Delete").
				Negative("Keep").
				Value(m.Form.confirm),
		),
	)
	return m
}

func (m Model) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.Form = FormState{}
		m.Status = StatusBar{Text: "cancelled", IsError: false}
		return m, nil
	}

	form, cmd := m.Form.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form.form = f
	}
	if m.Form.form.State == huh.StateCompleted {
		return m.completeForm(), nil
	}
	return m, cmd
}

func (m Model) completeForm() Model {
	state := m.Form
	m.Form = FormState{}

	switch state.Kind {
	case FormAdd:
		word := *state.word
		if err := m.Store.Add(word, *state.explanation); err != nil {
			return m.reportError("add", err).refreshWords()
		}
		m.Logger.Info().Str("word", word).Msg("word added")
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", word), IsError: false}
		return m.refreshWords()

	case FormEdit:
		if err := m.Store.Update(state.TargetWord, *state.explanation); err != nil {
			return m.reportError("edit", err)
		}
		if m.SelectedWord == state.TargetWord {
			m.Markup = views.RenderMarkdown(*state.explanation, m.Theme)
			m.reader.SetContent(m.Markup)
		}
		m.Status = StatusBar{Text: fmt.Sprintf("updated %q", state.TargetWord), IsError: false}
		return m

	case FormDelete:
		if !*state.confirm {
			m.Status = StatusBar{Text: fmt.Sprintf("kept %q", state.TargetWord), IsError: false}
			return m
		}
		if err := m.Store.Remove(state.TargetWord); err != nil {
			return m.reportError("delete", err)
		}
		if m.SelectedWord == state.TargetWord {
			m.SelectedWord = ""
			m.Markup = ""
			m.reader.SetContent("")
		}
		m.Logger.Info().Str("word", state.TargetWord).Msg("word deleted")
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %q", state.TargetWord), IsError: false}
		return m.refreshWords()
	}
	return m
}

func (m Model) reportError(op string, err error) Model {
	m.LastError = err
	m.Logger.Error().Err(err).Msg(op + " failed")
	switch {
	case errors.Is(err, domainmodel.ErrEmptyWord):
		m.Status = StatusBar{Text: "word must not be empty", IsError: true}
	case errors.Is(err, dict.ErrNotFound):
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	default:
		m.Status = StatusBar{Text: op + " failed, changes may be unsaved: " + err.Error(), IsError: true}
	}
	return m
}
