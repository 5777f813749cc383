package models

import (
	"database/sql"
	"time"
)

// MoodEntryDB represents a mood_entries row in the database
type MoodEntryDB struct {
	ID        string         `json:"id" db:"id"`                 // Server-generated identifier, stringified
	Mood      string         `json:"mood" db:"mood"`             // Mood label (e.g., happy, tired)
	Emoji     string         `json:"emoji" db:"emoji"`           // Emoji symbol for the mood
	Note      sql.NullString `json:"note" db:"note"`             // Optional free-text note
	CreatedAt time.Time      `json:"created_at" db:"created_at"` // Timestamp assigned by the datastore at insert
}
