// Package dict holds the in-memory word map and keeps it in lockstep with
// the persisted dictionary document.
package dict

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"wordkeep/internal/model"
	"wordkeep/internal/storage"
)

var ErrNotFound = errors.New("dict: word not found")

// Recorder counts one activity event per user action. Nil disables counting.
type Recorder interface {
	Record(action model.Action) error
}

type Store struct {
	repo     storage.Repository
	recorder Recorder
	words    map[string]string
}

// NewStore loads the persisted dictionary once; the in-memory map is the
// source of truth from then on and is written back after every mutation.
func NewStore(repo storage.Repository, recorder Recorder) (*Store, error) {
	words, err := repo.LoadDictionary()
	if err != nil {
		return nil, err
	}
	if words == nil {
		words = make(map[string]string)
	}
	return &Store{repo: repo, recorder: recorder, words: words}, nil
}

// Add stores a new entry and counts an "added" activity. Adding a word that
// already exists silently overwrites its explanation; one entry per word.
// On a failed save the in-memory entry stands and the error tells the caller
// the change is unsaved.
func (s *Store) Add(word, explanation string) error {
	entry := model.Entry{Word: word, Explanation: explanation}
	if err := entry.Validate(); err != nil {
		return err
	}
	s.words[word] = explanation
	if err := s.repo.SaveDictionary(s.words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	if s.recorder != nil {
		if err := s.recorder.Record(model.ActionAdded); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
	}
	return nil
}

// Update rewrites the explanation of an existing entry. Edits are not
// counted as activity.
func (s *Store) Update(word, explanation string) error {
	if _, ok := s.words[word]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	s.words[word] = explanation
	if err := s.repo.SaveDictionary(s.words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}

// Remove deletes an entry. Confirmation is the caller's responsibility.
func (s *Store) Remove(word string) error {
	if _, ok := s.words[word]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	delete(s.words, word)
	if err := s.repo.SaveDictionary(s.words); err != nil {
		return fmt.Errorf("save dictionary: %w", err)
	}
	return nil
}

// Get returns the explanation for word, or the empty string when absent; a
// missing word displays as a blank page, it is not an error.
func (s *Store) Get(word string) string {
	return s.words[word]
}

func (s *Store) Has(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s *Store) List() []string {
	words := lo.Keys(s.words)
	sort.Strings(words)
	return words
}

// Filter returns the sorted words whose lowercase form contains the
// lowercase pattern. An empty pattern returns the full list.
func (s *Store) Filter(pattern string) []string {
	needle := strings.ToLower(pattern)
	matched := lo.Filter(lo.Keys(s.words), func(word string, _ int) bool {
		return strings.Contains(strings.ToLower(word), needle)
	})
	sort.Strings(matched)
	return matched
}

func (s *Store) Len() int {
	return len(s.words)
}
