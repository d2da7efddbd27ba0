package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dictionaryFile = "word_data.json"
	progressFile   = "progress_log.json"
)

// JSONRepository persists the dictionary and the progress log as two indented
// UTF-8 JSON documents inside a single data directory. Every save rewrites
// the whole document; there is no locking, the tool is single-process.
type JSONRepository struct {
	dir string
}

func NewJSONRepository(dir string) (*JSONRepository, error) {
	if dir == "" {
		return nil, errors.New("storage: empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONRepository{dir: dir}, nil
}

func (r *JSONRepository) DictionaryPath() string {
	return filepath.Join(r.dir, dictionaryFile)
}

func (r *JSONRepository) ProgressPath() string {
	return filepath.Join(r.dir, progressFile)
}

func (r *JSONRepository) LoadDictionary() (map[string]string, error) {
	words := make(map[string]string)
	if err := readDocument(r.DictionaryPath(), &words); err != nil {
		return nil, err
	}
	return words, nil
}

func (r *JSONRepository) SaveDictionary(words map[string]string) error {
	return writeDocument(r.DictionaryPath(), words)
}

func (r *JSONRepository) LoadProgress() (map[string]DayCount, error) {
	counts := make(map[string]DayCount)
	if err := readDocument(r.ProgressPath(), &counts); err != nil {
		return nil, err
	}
	for date, count := range counts {
		if count.Added < 0 || count.Viewed < 0 {
			return nil, fmt.Errorf("%w: negative counter for %s", ErrCorruptData, date)
		}
	}
	return counts, nil
}

func (r *JSONRepository) SaveProgress(counts map[string]DayCount) error {
	return writeDocument(r.ProgressPath(), counts)
}

// readDocument leaves out untouched when the file does not exist: a missing
// document is an empty one, not an error.
func readDocument(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptData, path, err)
	}
	return nil
}

func writeDocument(path string, in any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep markdown punctuation and non-ASCII text byte-for-byte readable in
	// the file; the documents are meant to be human-diffable.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
