package domain

const RecentHistoryLabel = "Recent"

type Shelf struct {
	WantToRead       []string       `json:"want_to_read"`
	CurrentlyReading []string       `json:"currently_reading"`
	Finished         []string       `json:"finished"`
	History          []HistoryEntry `json:"history"`
}

// HistoryEntry summarises how many books were finished in a period.
type HistoryEntry struct {
	Label    string `json:"label"`
	Finished int    `json:"finished"`
}

// ShelfChange is applied to the shelf when a submitted review marks a book finished.
type ShelfChange struct {
	FinishedBook string
	History      HistoryEntry
}

// Clone returns a deep copy; empty lists stay non-nil so they encode as [].
func (s Shelf) Clone() Shelf {
	return Shelf{
		WantToRead:       cloneStrings(s.WantToRead),
		CurrentlyReading: cloneStrings(s.CurrentlyReading),
		Finished:         cloneStrings(s.Finished),
		History:          append(make([]HistoryEntry, 0, len(s.History)), s.History...),
	}
}

func cloneStrings(in []string) []string {
	return append(make([]string, 0, len(in)), in...)
}
