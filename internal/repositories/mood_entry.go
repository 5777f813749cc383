package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/mood-diary/internal/database"
	"github.com/sbilibin2017/mood-diary/internal/logger"
	"github.com/sbilibin2017/mood-diary/internal/models"
)

// release closes a per-call handle, logging a failed close.
func release(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.Warnw("failed to close database connection", "error", err)
	}
}

// MoodEntryReadRepository handles mood entry read operations
type MoodEntryReadRepository struct {
	connector database.Connector
}

func NewMoodEntryReadRepository(connector database.Connector) *MoodEntryReadRepository {
	return &MoodEntryReadRepository{connector: connector}
}

// List returns at most limit entries, newest first.
func (r *MoodEntryReadRepository) List(ctx context.Context, limit int) ([]models.MoodEntryDB, error) {
	const query = `
		SELECT id, mood, emoji, note, created_at
		FROM mood_entries
		ORDER BY created_at DESC
		LIMIT $1
	`

	db, err := r.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release(db)

	entries := make([]models.MoodEntryDB, 0, limit)
	err = db.SelectContext(ctx, &entries, query, limit)

	// Log query, args, result, error
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// MoodEntryWriteRepository handles mood entry write operations
type MoodEntryWriteRepository struct {
	connector database.Connector
}

func NewMoodEntryWriteRepository(connector database.Connector) *MoodEntryWriteRepository {
	return &MoodEntryWriteRepository{connector: connector}
}

// Save inserts a new entry inside a transaction and returns the stored row.
// id and created_at come from the datastore.
func (r *MoodEntryWriteRepository) Save(ctx context.Context, mood, emoji, note string) (*models.MoodEntryDB, error) {
	query := `
		INSERT INTO mood_entries (mood, emoji, note)
		VALUES ($1, $2, $3)
		RETURNING id, mood, emoji, note, created_at
	`
	args := []any{mood, emoji, note}

	db, err := r.connector.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release(db)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	var entry models.MoodEntryDB
	err = tx.GetContext(ctx, &entry, query, args...)

	// Log query, args, result, error
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", entry.ID,
		"error", err,
	)

	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return nil, err
	}

	return &entry, nil
}
