package models

// ExportDocument is the JSON shape of an export file and of import input.
type ExportDocument struct {
	JournalEntries []JournalEntry `json:"journalEntries"`
	MoodData       []MoodData     `json:"moodData"`
}

// ImportResult counts what an import merged and what it left alone.
type ImportResult struct {
	EntriesAdded   int `json:"entriesAdded"`
	EntriesSkipped int `json:"entriesSkipped"`
	MoodsAdded     int `json:"moodsAdded"`
	MoodsSkipped   int `json:"moodsSkipped"`
}
