package render

import "wordkeep/internal/model"

// Palette is the set of colors inlined into a rendered document.
type Palette struct {
	Background     string
	Text           string
	Heading        string
	Border         string
	CodeBackground string
	CodeText       string
	QuoteBar       string
	QuoteText      string
	QuoteBg        string
	CellBg         string
	HeadBgFrom     string
	HeadBgTo       string
	HeadText       string
	Emphasis       string
}

var palettes = map[model.Theme]Palette{
	model.ThemeLight: {
		Background:     "#fdfdfd",
		Text:           "#222",
		Heading:        "#1565c0",
		Border:         "#ccc",
		CodeBackground: "#f0f0f0",
		CodeText:       "#d32f2f",
		QuoteBar:       "#4caf50",
		QuoteText:      "#2e7d32",
		QuoteBg:        "#f1f8e9",
		CellBg:         "#ffffff88",
		HeadBgFrom:     "#f5f5f5",
		HeadBgTo:       "#e0e0e0",
		HeadText:       "#222",
		Emphasis:       "#c2185b",
	},
	model.ThemeDark: {
		Background:     "#121212",
		Text:           "#e0e0e0",
		Heading:        "#90caf9",
		Border:         "#444",
		CodeBackground: "#2e2e2e",
		CodeText:       "#ffeb3b",
		QuoteBar:       "#66bb6a",
		QuoteText:      "#a5d6a7",
		QuoteBg:        "#1b1b1b",
		CellBg:         "#222",
		HeadBgFrom:     "#333",
		HeadBgTo:       "#444",
		HeadText:       "#fafafa",
		Emphasis:       "#f48fb1",
	},
}

// PaletteFor returns the palette for theme, falling back to light for
// anything unrecognized.
func PaletteFor(theme model.Theme) Palette {
	if palette, ok := palettes[theme]; ok {
		return palette
	}
	return palettes[model.ThemeLight]
}
