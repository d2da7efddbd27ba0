package update

import (
	"path/filepath"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordkeep/internal/export"
	"wordkeep/internal/progress"
	"wordkeep/internal/views"
)

var (
	addedBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	viewedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

func (m Model) openProgress() Model {
	summary, err := m.Progress.Summarize()
	if err != nil {
		return m.reportError("progress", err)
	}
	m.Summary = summary
	m.CurrentScreen = ScreenProgress
	m.chart = m.buildChart(summary)
	m.Status = StatusBar{Text: "activity log", IsError: false}
	return m
}

// buildChart charts the trailing ChartDays days, empty days included, so
// gaps in the log are visible.
func (m Model) buildChart(summary progress.Summary) barchart.Model {
	width := clamp(m.Width-40, 24, 72)
	chart := barchart.New(width, 10)

	perDate := make(map[string]progress.DayActivity, len(summary.PerDate))
	for _, day := range summary.PerDate {
		perDate[day.Date] = day
	}

	today := time.Now()
	bars := make([]barchart.BarData, 0, m.Config.ChartDays)
	for i := m.Config.ChartDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		day := perDate[date.Format("2006-01-02")]
		bars = append(bars, barchart.BarData{
			Label: date.Format("02"),
			Values: []barchart.BarValue{
				{Name: "added", Value: float64(day.Added), Style: addedBarStyle},
				{Name: "viewed", Value: float64(day.Viewed), Style: viewedBarStyle},
			},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart
}

func (m Model) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", m.Keys.Progress:
		m.CurrentScreen = ScreenBrowse
		m.Status = StatusBar{}
	case "c":
		path := filepath.Join(m.Config.DataDir, "activity.csv")
		if err := export.ProgressCSV(m.Summary, path); err != nil {
			return m.reportError("export", err), nil
		}
		m.Status = StatusBar{Text: "exported " + path, IsError: false}
	}
	return m, nil
}

func (m Model) progressPanelData() views.ProgressPanelData {
	rows := make([]views.ProgressRowData, 0, len(m.Summary.PerDate))
	for _, day := range m.Summary.PerDate {
		rows = append(rows, views.ProgressRowData{Date: day.Date, Added: day.Added, Viewed: day.Viewed})
	}
	return views.ProgressPanelData{
		ChartView:   m.chart.View(),
		Rows:        rows,
		TotalAdded:  m.Summary.TotalAdded,
		TotalViewed: m.Summary.TotalViewed,
	}
}
