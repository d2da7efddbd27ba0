// Package progress keeps per-day counters of add and view activity, used
// purely for user-facing statistics.
package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"wordkeep/internal/model"
	"wordkeep/internal/storage"
)

const dateLayout = "2006-01-02"

// Log reads and rewrites the progress document on every operation instead of
// caching it; the document stays the single copy of the counters.
type Log struct {
	repo storage.Repository
	now  func() time.Time
}

func NewLog(repo storage.Repository) *Log {
	return &Log{repo: repo, now: time.Now}
}

// Record increments today's counter for the given action. Today is taken
// from the process-local clock; a new date key appears lazily on the first
// action of that day.
func (l *Log) Record(action model.Action) error {
	if !action.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidAction, action)
	}
	counts, err := l.repo.LoadProgress()
	if err != nil {
		return err
	}
	today := l.now().Format(dateLayout)
	count := counts[today]
	switch action {
	case model.ActionAdded:
		count.Added++
	case model.ActionViewed:
		count.Viewed++
	}
	counts[today] = count
	if err := l.repo.SaveProgress(counts); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

type DayActivity struct {
	Date   string
	Added  int
	Viewed int
}

type Summary struct {
	PerDate     []DayActivity
	TotalAdded  int
	TotalViewed int
}

// Summarize aggregates the persisted log, dates ascending. An absent log
// yields an empty summary.
func (l *Log) Summarize() (Summary, error) {
	counts, err := l.repo.LoadProgress()
	if err != nil {
		return Summary{}, err
	}
	dates := lo.Keys(counts)
	sort.Strings(dates)

	var summary Summary
	for _, date := range dates {
		count := counts[date]
		summary.PerDate = append(summary.PerDate, DayActivity{
			Date:   date,
			Added:  count.Added,
			Viewed: count.Viewed,
		})
		summary.TotalAdded += count.Added
		summary.TotalViewed += count.Viewed
	}
	return summary, nil
}
