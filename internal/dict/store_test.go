package dict

import (
	"errors"
	"reflect"
	"testing"

	"wordkeep/internal/model"
	"wordkeep/internal/storage"
)

type countingRecorder struct {
	added  int
	viewed int
}

func (r *countingRecorder) Record(action model.Action) error {
	switch action {
	case model.ActionAdded:
		r.added++
	case model.ActionViewed:
		r.viewed++
	}
	return nil
}

func setupStore(t *testing.T) (*Store, *countingRecorder, *storage.JSONRepository) {
	t.Helper()
	repo, err := storage.NewJSONRepository(t.TempDir())
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	recorder := &countingRecorder{}
	store, err := NewStore(repo, recorder)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, recorder, repo
}

func TestAddThenGetAndList(t *testing.T) {
	store, recorder, repo := setupStore(t)

	if err := store.Add("serendipity", "# Serendipity\n\nA happy accident."); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := store.Get("serendipity"); got != "# Serendipity\n\nA happy accident." {
		t.Fatalf("unexpected explanation: %q", got)
	}
	if words := store.List(); !reflect.DeepEqual(words, []string{"serendipity"}) {
		t.Fatalf("unexpected list: %#v", words)
	}
	if recorder.added != 1 {
		t.Fatalf("expected 1 added event, got %d", recorder.added)
	}

	// Mutation must be on disk before Add returns.
	persisted, err := repo.LoadDictionary()
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	if persisted["serendipity"] == "" {
		t.Fatal("entry not persisted after add")
	}
}

func TestAddRejectsBlankWord(t *testing.T) {
	store, recorder, _ := setupStore(t)
	for _, word := range []string{"", "   ", "\t\n"} {
		if err := store.Add(word, "text"); !errors.Is(err, model.ErrEmptyWord) {
			t.Fatalf("Add(%q) = %v, want ErrEmptyWord", word, err)
		}
	}
	if store.Len() != 0 {
		t.Fatalf("store must stay empty, has %d entries", store.Len())
	}
	if recorder.added != 0 {
		t.Fatalf("no activity may be counted, got %d", recorder.added)
	}
}

func TestAddOverwritesDuplicate(t *testing.T) {
	store, _, _ := setupStore(t)
	if err := store.Add("apple", "first"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add("apple", "second"); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if got := store.Get("apple"); got != "second" {
		t.Fatalf("expected overwrite, got %q", got)
	}
	if words := store.List(); len(words) != 1 {
		t.Fatalf("expected a single entry, got %#v", words)
	}
}

func TestUpdate(t *testing.T) {
	store, recorder, _ := setupStore(t)
	if err := store.Add("apple", "v1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Update("apple", "v2"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := store.Get("apple"); got != "v2" {
		t.Fatalf("expected updated text, got %q", got)
	}
	if recorder.added != 1 {
		t.Fatalf("editing must not count as added, got %d events", recorder.added)
	}

	if err := store.Update("pear", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	store, _, _ := setupStore(t)
	if err := store.Add("apple", "v1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Remove("apple"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := store.Get("apple"); got != "" {
		t.Fatalf("removed word must read as blank, got %q", got)
	}
	if words := store.List(); len(words) != 0 {
		t.Fatalf("expected empty list, got %#v", words)
	}
	if err := store.Remove("apple"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	store, _, _ := setupStore(t)
	for _, word := range []string{"apple", "Banana", "cherry"} {
		if err := store.Add(word, ""); err != nil {
			t.Fatalf("add %q: %v", word, err)
		}
	}

	if got := store.Filter("an"); !reflect.DeepEqual(got, []string{"Banana"}) {
		t.Fatalf(`Filter("an") = %#v, want ["Banana"]`, got)
	}
	if got := store.Filter("AN"); !reflect.DeepEqual(got, []string{"Banana"}) {
		t.Fatalf("filter must be case-insensitive, got %#v", got)
	}
	if got := store.Filter(""); !reflect.DeepEqual(got, store.List()) {
		t.Fatalf("empty filter must equal the full list, got %#v", got)
	}
	if got := store.Filter("zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %#v", got)
	}
}

func TestListOrderIsCaseSensitive(t *testing.T) {
	store, _, _ := setupStore(t)
	for _, word := range []string{"banana", "Apple", "apple"} {
		if err := store.Add(word, ""); err != nil {
			t.Fatalf("add %q: %v", word, err)
		}
	}
	want := []string{"Apple", "apple", "banana"}
	if got := store.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %#v, want %#v", got, want)
	}
}

type failingRepository struct {
	storage.Repository
}

func (failingRepository) LoadDictionary() (map[string]string, error) {
	return map[string]string{}, nil
}

func (failingRepository) SaveDictionary(map[string]string) error {
	return errors.New("disk full")
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	store, err := NewStore(failingRepository{}, nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Add("apple", "text"); err == nil {
		t.Fatal("expected save error to surface")
	}
	// The unsaved change stays visible; the caller was told about it.
	if got := store.Get("apple"); got != "text" {
		t.Fatalf("in-memory state must survive a failed save, got %q", got)
	}
}
