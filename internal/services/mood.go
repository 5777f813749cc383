package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/mood-diary/internal/logger"
	"github.com/sbilibin2017/mood-diary/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=services

const (
	// ListLimit is the maximum number of entries returned by List.
	ListLimit = 30
	// PublishTimeout is the default bound on how long Create waits on an entry notification.
	PublishTimeout = 5 * time.Second
)

var (
	// ErrMoodAndEmojiRequired is returned when mood or emoji is blank after trimming.
	ErrMoodAndEmojiRequired = errors.New("mood and emoji are required")
)

// MoodEntryWriter persists new mood entries.
type MoodEntryWriter interface {
	Save(ctx context.Context, mood, emoji, note string) (*models.MoodEntryDB, error) // Inserts an entry and returns the stored row
}

// MoodEntryReader reads mood entries.
type MoodEntryReader interface {
	List(ctx context.Context, limit int) ([]models.MoodEntryDB, error) // Returns up to limit entries, newest first
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MoodService handles mood diary operations and entry notifications.
type MoodService struct {
	writeRepo   MoodEntryWriter
	readRepo    MoodEntryReader
	kafkaWriter KafkaWriter

	publishTimeout time.Duration
}

// NewMoodService creates a new MoodService. kafkaWriter may be nil.
func NewMoodService(
	writeRepo MoodEntryWriter,
	readRepo MoodEntryReader,
	kafkaWriter KafkaWriter,
) *MoodService {
	return &MoodService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		kafkaWriter: kafkaWriter,

		publishTimeout: PublishTimeout,
	}
}

// List returns the most recent entries, newest first.
func (s *MoodService) List(ctx context.Context) ([]models.MoodEntryDB, error) {
	entries, err := s.readRepo.List(ctx, ListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list mood entries", "error", err)
		return nil, err
	}
	return entries, nil
}

// Create trims the input, validates it and stores a new entry.
func (s *MoodService) Create(ctx context.Context, mood, emoji, note string) (*models.MoodEntryDB, error) {
	mood = strings.TrimSpace(mood)
	emoji = strings.TrimSpace(emoji)
	note = strings.TrimSpace(note)

	if mood == "" || emoji == "" {
		return nil, ErrMoodAndEmojiRequired
	}

	entry, err := s.writeRepo.Save(ctx, mood, emoji, note)
	if err != nil {
		logger.Log.Errorw("failed to save mood entry", "mood", mood, "emoji", emoji, "error", err)
		return nil, err
	}

	s.publishEntry(ctx, models.MoodEntryEvent{
		EntryID:   entry.ID,
		Mood:      entry.Mood,
		Emoji:     entry.Emoji,
		Timestamp: entry.CreatedAt.Unix(),
	})

	return entry, nil
}

// publishEntry publishes an entry-created event to Kafka.
// Failures are logged only.
func (s *MoodService) publishEntry(ctx context.Context, event models.MoodEntryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "entry_id", event.EntryID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal mood entry event", "entry_id", event.EntryID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntryID),
		Value: data,
		Time:  time.Unix(event.Timestamp, 0),
	}

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish mood entry event", "entry_id", event.EntryID, "error", err)
	} else {
		logger.Log.Infow("Mood entry event published", "entry_id", event.EntryID, "mood", event.Mood)
	}
}
