package storage

// DayCount is one day's activity counters. Counters never decrease and no
// day entry is ever removed.
type DayCount struct {
	Added  int `json:"added"`
	Viewed int `json:"viewed"`
}
