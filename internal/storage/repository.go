package storage

import "errors"

// ErrCorruptData marks a persisted document that exists but does not parse
// into its expected shape. Callers treat it as fatal rather than risk
// overwriting user data.
var ErrCorruptData = errors.New("storage: corrupt data")

type Repository interface {
	LoadDictionary() (map[string]string, error)
	SaveDictionary(words map[string]string) error
	LoadProgress() (map[string]DayCount, error)
	SaveProgress(counts map[string]DayCount) error
}
