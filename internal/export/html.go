// Package export writes entries and activity summaries out as standalone
// files.
package export

import (
	"fmt"
	"os"

	"wordkeep/internal/model"
	"wordkeep/internal/render"
)

// EntryHTML renders one entry to a themed HTML file, the word as the top
// heading followed by its explanation.
func EntryHTML(word, explanation string, theme model.Theme, path string) error {
	source := "# " + word + "\n\n" + explanation
	doc, err := render.Document(source, theme)
	if err != nil {
		return fmt.Errorf("render %q: %w", word, err)
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write html file: %w", err)
	}
	return nil
}
