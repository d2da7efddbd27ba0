package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wordkeep/internal/commands"
	"wordkeep/internal/export"
	domainmodel "wordkeep/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m = m.openAddForm(a.Word)
			return commands.Result{Message: fmt.Sprintf("adding %q", a.Word)}, nil
		},
		Open: func(o commands.OpenArgs) (commands.Result, error) {
			if !m.Store.Has(o.Word) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no such word: %s", o.Word)}
			}
			m = m.viewWord(o.Word)
			return commands.Result{Message: "viewing " + o.Word}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			if !m.Store.Has(d.Word) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no such word: %s", d.Word)}
			}
			m = m.openDeleteConfirm(d.Word)
			return commands.Result{Message: fmt.Sprintf("confirm deletion of %q", d.Word)}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			theme, parseErr := domainmodel.ParseTheme(t.Theme)
			if parseErr != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: parseErr.Error()}
			}
			m = m.applyTheme(theme)
			return commands.Result{Message: "theme: " + t.Theme}, nil
		},
		Export: func(e commands.ExportArgs) (commands.Result, error) {
			if !m.Store.Has(e.Word) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no such word: %s", e.Word)}
			}
			if exportErr := export.EntryHTML(e.Word, m.Store.Get(e.Word), m.Theme, e.Path); exportErr != nil {
				return commands.Result{}, exportErr
			}
			return commands.Result{Message: fmt.Sprintf("exported %q to %s", e.Word, e.Path)}, nil
		},
		Progress: func() (commands.Result, error) {
			m = m.openProgress()
			return commands.Result{Message: "activity log"}, nil
		},
		Help: func() (commands.Result, error) {
			m.HelpVisible = true
			return commands.Result{Message: "help shown"}, nil
		},
		Quit: func() (commands.Result, error) {
			m.Quitting = true
			return commands.Result{Message: "bye"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Logger.Warn().Str("command", raw).Err(err).Msg("palette command failed")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}
