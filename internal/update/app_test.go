package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"wordkeep/internal/dict"
	domainmodel "wordkeep/internal/model"
	"wordkeep/internal/progress"
	"wordkeep/internal/storage"
)

func setupModel(t *testing.T, words map[string]string) (Model, *progress.Log) {
	t.Helper()
	dir := t.TempDir()
	repo, err := storage.NewJSONRepository(dir)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	plog := progress.NewLog(repo)
	store, err := dict.NewStore(repo, plog)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for word, explanation := range words {
		if err := store.Add(word, explanation); err != nil {
			t.Fatalf("seed %q: %v", word, err)
		}
	}
	cfg := DefaultRuntimeConfig()
	cfg.DataDir = dir
	m := NewModel(Deps{Store: store, Progress: plog, Config: cfg, Logger: zerolog.Nop()})
	return m, plog
}

func pressRunes(t *testing.T, m Model, runes string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)})
	return updated.(Model)
}

func pressKey(t *testing.T, m Model, keyType tea.KeyType) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := setupModel(t, nil)
	if m.CurrentScreen != ScreenBrowse {
		t.Fatalf("expected default screen %q, got %q", ScreenBrowse, m.CurrentScreen)
	}
	if m.Theme != domainmodel.ThemeLight {
		t.Fatalf("expected light theme, got %q", m.Theme)
	}
	if m.FilterText != "" || m.SelectedWord != "" {
		t.Fatalf("display state must start empty: filter=%q selected=%q", m.FilterText, m.SelectedWord)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
}

func TestHelpToggleKey(t *testing.T) {
	m, _ := setupModel(t, nil)
	m = pressRunes(t, m, "?")
	if !m.HelpVisible {
		t.Fatal("expected help visible after ?")
	}
	m = pressRunes(t, m, "?")
	if m.HelpVisible {
		t.Fatal("expected help hidden after second ?")
	}
}

func TestThemeToggleKey(t *testing.T) {
	m, _ := setupModel(t, nil)
	m = pressRunes(t, m, "t")
	if m.Theme != domainmodel.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m.Theme)
	}
	m = pressRunes(t, m, "t")
	if m.Theme != domainmodel.ThemeLight {
		t.Fatalf("expected light theme, got %q", m.Theme)
	}
}

func TestSearchFilterFlow(t *testing.T) {
	m, _ := setupModel(t, map[string]string{"apple": "", "Banana": "", "cherry": ""})
	if len(m.Words) != 3 {
		t.Fatalf("expected three words, got %#v", m.Words)
	}

	m = pressRunes(t, m, "f")
	if !m.searching {
		t.Fatal("expected filter mode after f")
	}
	m = pressRunes(t, m, "an")
	if m.FilterText != "an" {
		t.Fatalf("unexpected filter text: %q", m.FilterText)
	}
	if len(m.Words) != 1 || m.Words[0] != "Banana" {
		t.Fatalf("expected [Banana], got %#v", m.Words)
	}

	m = pressKey(t, m, tea.KeyEsc)
	if m.searching {
		t.Fatal("expected list mode after esc")
	}
	// The filter itself survives leaving filter mode.
	if len(m.Words) != 1 {
		t.Fatalf("filter must stay applied, got %#v", m.Words)
	}
}

func TestViewWordRecordsViewed(t *testing.T) {
	m, plog := setupModel(t, map[string]string{"serendipity": "# Serendipity\n\nA happy accident."})

	before, err := plog.Summarize()
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	m = pressKey(t, m, tea.KeyEnter)
	if m.SelectedWord != "serendipity" {
		t.Fatalf("expected selection, got %q", m.SelectedWord)
	}
	if m.Markup == "" {
		t.Fatal("expected rendered markup")
	}

	after, err := plog.Summarize()
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if after.TotalViewed != before.TotalViewed+1 {
		t.Fatalf("viewed counter: got %d, want %d", after.TotalViewed, before.TotalViewed+1)
	}
	if after.TotalAdded != before.TotalAdded {
		t.Fatalf("added counter must not move on view: %d != %d", after.TotalAdded, before.TotalAdded)
	}
}

func TestDeleteOpensConfirmAndEscCancels(t *testing.T) {
	m, _ := setupModel(t, map[string]string{"apple": "fruit"})

	m = pressRunes(t, m, "d")
	if !m.Form.Active || m.Form.Kind != FormDelete {
		t.Fatalf("expected delete confirmation form, got %+v", m.Form)
	}
	// Nothing is deleted until the confirmation completes.
	if !m.Store.Has("apple") {
		t.Fatal("word deleted before confirmation")
	}

	m = pressKey(t, m, tea.KeyEsc)
	if m.Form.Active {
		t.Fatal("expected form dismissed after esc")
	}
	if !m.Store.Has("apple") {
		t.Fatal("cancelled delete must keep the word")
	}
}

func TestAddKeyOpensForm(t *testing.T) {
	m, _ := setupModel(t, nil)
	m = pressRunes(t, m, "a")
	if !m.Form.Active || m.Form.Kind != FormAdd {
		t.Fatalf("expected add form, got %+v", m.Form)
	}
}

func TestProgressScreenRoundTrip(t *testing.T) {
	m, _ := setupModel(t, map[string]string{"apple": ""})
	m = pressRunes(t, m, "p")
	if m.CurrentScreen != ScreenProgress {
		t.Fatalf("expected progress screen, got %q", m.CurrentScreen)
	}
	// Seeding added one word, so the summary already has activity.
	if m.Summary.TotalAdded != 1 {
		t.Fatalf("expected one added event, got %+v", m.Summary)
	}
	m = pressKey(t, m, tea.KeyEsc)
	if m.CurrentScreen != ScreenBrowse {
		t.Fatalf("expected browse screen, got %q", m.CurrentScreen)
	}
}

func TestPaletteThemeCommand(t *testing.T) {
	m, _ := setupModel(t, nil)
	m = pressRunes(t, m, "/")
	if !m.Palette.Active {
		t.Fatal("expected palette active after /")
	}
	m = pressRunes(t, m, "theme dark")
	m = pressKey(t, m, tea.KeyEnter)
	if m.Palette.Active {
		t.Fatal("expected palette closed after enter")
	}
	if m.Theme != domainmodel.ThemeDark {
		t.Fatalf("expected dark theme, got %q", m.Theme)
	}
	if m.Status.IsError {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
}

func TestPaletteUnknownCommand(t *testing.T) {
	m, _ := setupModel(t, nil)
	m = pressRunes(t, m, "/")
	m = pressRunes(t, m, "frobnicate")
	m = pressKey(t, m, tea.KeyEnter)
	if !m.Status.IsError {
		t.Fatalf("expected error status, got %+v", m.Status)
	}
}

func TestPaletteOpenCommandUnknownWord(t *testing.T) {
	m, _ := setupModel(t, map[string]string{"apple": ""})
	m = pressRunes(t, m, "/")
	m = pressRunes(t, m, "open pear")
	m = pressKey(t, m, tea.KeyEnter)
	if !m.Status.IsError {
		t.Fatalf("expected error for unknown word, got %+v", m.Status)
	}
	if m.SelectedWord != "" {
		t.Fatalf("nothing should be selected, got %q", m.SelectedWord)
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m, _ := setupModel(t, nil)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	next := updated.(Model)
	if next.Status.Text != "ready" || next.Status.IsError {
		t.Fatalf("unexpected status: %+v", next.Status)
	}

	errBoom := errors.New("boom")
	updated, _ = next.Update(AppErrorMsg{Err: errBoom})
	next = updated.(Model)
	if next.LastError == nil || next.LastError.Error() != "boom" {
		t.Fatalf("expected last error boom, got: %v", next.LastError)
	}
	if !next.Status.IsError || next.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", next.Status)
	}

	updated, _ = next.Update(ClearStatusMsg{})
	next = updated.(Model)
	if next.Status.Text != "" || next.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", next.Status)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := setupModel(t, nil)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	next := updated.(Model)
	if !next.Quitting {
		t.Fatal("expected quitting state")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}
