package update

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"wordkeep/internal/dict"
	domainmodel "wordkeep/internal/model"
	"wordkeep/internal/progress"
)

type Screen string

const (
	ScreenBrowse   Screen = "Browse"
	ScreenProgress Screen = "Progress"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Search   string
	Add      string
	Edit     string
	Delete   string
	Theme    string
	Progress string
	Help     string
	Quit     string
}

type PaletteState struct {
	Active bool
	Input  string
}

type FormKind string

const (
	FormAdd    FormKind = "add"
	FormEdit   FormKind = "edit"
	FormDelete FormKind = "delete"
)

// FormState carries the active huh form. Field values live behind pointers
// so they survive the model being copied between updates.
type FormState struct {
	Active      bool
	Kind        FormKind
	TargetWord  string
	form        *huh.Form
	word        *string
	explanation *string
	confirm     *bool
}

// Model is the whole display state: the search filter, the active theme and
// the current selection live here and are rebuilt fresh on every launch.
type Model struct {
	Store    *dict.Store
	Progress *progress.Log
	Config   RuntimeConfig
	Logger   zerolog.Logger

	CurrentScreen Screen
	Theme         domainmodel.Theme
	FilterText    string
	Words         []string
	Cursor        int
	SelectedWord  string
	Markup        string
	Summary       progress.Summary
	Palette       PaletteState
	Form          FormState
	Status        StatusBar
	Keys          GlobalKeyMap
	HelpVisible   bool
	Quitting      bool
	LastError     error
	Width         int
	Height        int
	// Bubble components used for rich TUI controls
	searchInput  textinput.Model
	commandInput textinput.Model
	reader       viewport.Model
	helpModel    help.Model
	chart        barchart.Model
	searching    bool
}

type Deps struct {
	Store    *dict.Store
	Progress *progress.Log
	Config   RuntimeConfig
	Logger   zerolog.Logger
}

func NewModel(deps Deps) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "type to filter"
	searchInput.CharLimit = 64

	commandInput := textinput.New()
	commandInput.Placeholder = "add <word> | open <word> | theme dark | ..."
	commandInput.CharLimit = 128

	theme := deps.Config.DefaultTheme
	if !theme.IsValid() {
		theme = domainmodel.ThemeLight
	}

	m := Model{
		Store:         deps.Store,
		Progress:      deps.Progress,
		Config:        deps.Config,
		Logger:        deps.Logger,
		CurrentScreen: ScreenBrowse,
		Theme:         theme,
		Keys: GlobalKeyMap{
			Search:   "f",
			Add:      "a",
			Edit:     "e",
			Delete:   "d",
			Theme:    "t",
			Progress: "p",
			Help:     "?",
			Quit:     "q",
		},
		searchInput:  searchInput,
		commandInput: commandInput,
		reader:       viewport.New(72, 20),
		helpModel:    help.New(),
		chart:        barchart.New(48, 10),
	}
	if m.Store != nil {
		m.Words = m.Store.Filter("")
	}
	return m
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}
