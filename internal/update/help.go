package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"wordkeep/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range append(m.globalBindings(), m.screenBindings()...) {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	bindings := m.helpBindings()
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentScreen: string(m.CurrentScreen),
		Bindings:      plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Theme, Action: "toggle light/dark theme"},
		{Key: m.Keys.Progress, Action: "show activity log"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) screenBindings() []KeyBinding {
	switch m.CurrentScreen {
	case ScreenProgress:
		return []KeyBinding{
			{Key: "c", Action: "export activity as csv"},
			{Key: "esc", Action: "back to browse"},
		}
	default:
		return []KeyBinding{
			{Key: m.Keys.Search + "/ctrl+f", Action: "filter words"},
			{Key: "j/k", Action: "move selection"},
			{Key: "enter", Action: "view selected word"},
			{Key: m.Keys.Add, Action: "add word"},
			{Key: m.Keys.Edit, Action: "edit selected word"},
			{Key: m.Keys.Delete, Action: "delete selected word (asks first)"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	all := append(m.globalBindings(), m.screenBindings()...)
	out := make([]key.Binding, 0, len(all))
	for _, kb := range all {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
