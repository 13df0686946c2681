package models

import "time"

// Category names the converter that produced a history entry. Values are the
// display names shown in the menu and the history table.
type Category string

const (
	CategoryCalculator  Category = "Calculator"
	CategoryTemperature Category = "Temperature"
	CategoryNumberBase  Category = "Number Base"
	CategoryLogarithm   Category = "Logarithm"
	CategoryCurrency    Category = "Currency"
	CategoryLength      Category = "Length"
)

// HistoryEntry is a single ledger record. Entries are written only for
// operations that computed successfully and are never mutated afterwards.
type HistoryEntry struct {
	EntryID    string    `json:"entry_id"`
	RecordedAt time.Time `json:"recorded_at"`
	Category   Category  `json:"category"`
	Input      string    `json:"input"`  // canonical input description, e.g. "100.00 C -> F"
	Result     string    `json:"result"` // formatted result, e.g. "212.00"
}
