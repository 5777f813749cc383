package models

// MoodEntryEvent represents an entry-created notification
type MoodEntryEvent struct {
	EntryID   string `json:"entry_id"`  // Identifier of the created entry
	Mood      string `json:"mood"`      // Mood label
	Emoji     string `json:"emoji"`     // Emoji symbol
	Timestamp int64  `json:"timestamp"` // Unix time of creation
}
