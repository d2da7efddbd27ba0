package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"wordkeep/internal/progress"
)

// ProgressCSV writes the activity summary as one row per date plus a totals
// row.
func ProgressCSV(summary progress.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Added", "Viewed"}); err != nil {
		return err
	}
	for _, day := range summary.PerDate {
		row := []string{day.Date, strconv.Itoa(day.Added), strconv.Itoa(day.Viewed)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	totals := []string{"total", strconv.Itoa(summary.TotalAdded), strconv.Itoa(summary.TotalViewed)}
	if err := w.Write(totals); err != nil {
		return err
	}
	return w.Error()
}
