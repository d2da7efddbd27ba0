package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTheme  = errors.New("model: invalid theme")
	ErrInvalidAction = errors.New("model: invalid action")
	ErrEmptyWord     = errors.New("model: word is empty")
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(raw string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if !theme.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}
	return theme, nil
}

// Action is one of the two user activities counted in the progress log.
// Editing an entry is deliberately neither.
type Action string

const (
	ActionAdded  Action = "added"
	ActionViewed Action = "viewed"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionAdded, ActionViewed:
		return true
	default:
		return false
	}
}

// Entry is one word plus its markdown explanation. Words are case-sensitive
// keys; explanations may be empty.
type Entry struct {
	Word        string
	Explanation string
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return ErrEmptyWord
	}
	return nil
}
