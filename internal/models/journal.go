package models

import (
	"time"
)

// JournalEntry represents a private journaling entry for a user
type JournalEntry struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
	Tags    []string  `json:"tags"`
	Mood    string    `json:"mood"`
}

// EntryInput carries the user-editable fields of an entry.
type EntryInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Mood    string   `json:"mood"`
}
