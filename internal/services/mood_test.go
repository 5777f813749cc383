package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/mood-diary/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func newEntry(id, mood, emoji, note string) *models.MoodEntryDB {
	return &models.MoodEntryDB{
		ID:        id,
		Mood:      mood,
		Emoji:     emoji,
		Note:      sql.NullString{String: note, Valid: true},
		CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestMoodService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockMoodEntryReader(ctrl)

	stored := []models.MoodEntryDB{*newEntry("2", "happy", "😊", ""), *newEntry("1", "sad", "😢", "")}
	reader.EXPECT().List(ctx, ListLimit).Return(stored, nil)

	svc := NewMoodService(nil, reader, nil)
	entries, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, entries)
}

func TestMoodService_List_Error(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockMoodEntryReader(ctrl)
	reader.EXPECT().List(ctx, ListLimit).Return(nil, sql.ErrConnDone)

	svc := NewMoodService(nil, reader, nil)
	entries, err := svc.List(ctx)

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Nil(t, entries)
}

func TestMoodService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name              string
		mood, emoji, note string
		setupMocks        func(writer *MockMoodEntryWriter, kafka *MockKafkaWriter)
		withKafka         bool
		expectedErr       error
		expectedID        string
	}{
		{
			name:  "trims and saves",
			mood:  "  happy ",
			emoji: " 😊",
			note:  " great day  ",
			setupMocks: func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {
				writer.EXPECT().Save(ctx, "happy", "😊", "great day").Return(newEntry("1", "happy", "😊", "great day"), nil)
			},
			expectedID: "1",
		},
		{
			name:  "empty note is allowed",
			mood:  "calm",
			emoji: "😌",
			note:  "",
			setupMocks: func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {
				writer.EXPECT().Save(ctx, "calm", "😌", "").Return(newEntry("2", "calm", "😌", ""), nil)
			},
			expectedID: "2",
		},
		{
			name:        "empty mood",
			mood:        "",
			emoji:       "😊",
			setupMocks:  func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {},
			expectedErr: ErrMoodAndEmojiRequired,
		},
		{
			name:        "whitespace emoji",
			mood:        "happy",
			emoji:       " \t\n",
			setupMocks:  func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {},
			expectedErr: ErrMoodAndEmojiRequired,
		},
		{
			name:  "repository error",
			mood:  "happy",
			emoji: "😊",
			setupMocks: func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {
				writer.EXPECT().Save(ctx, "happy", "😊", "").Return(nil, sql.ErrConnDone)
			},
			withKafka:   true,
			expectedErr: sql.ErrConnDone,
		},
		{
			name:  "publishes event when kafka configured",
			mood:  "happy",
			emoji: "😊",
			setupMocks: func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {
				writer.EXPECT().Save(ctx, "happy", "😊", "").Return(newEntry("3", "happy", "😊", ""), nil)
				kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
						deadline, ok := ctx.Deadline()
						assert.True(t, ok, "publish must be bounded by a deadline")
						assert.WithinDuration(t, time.Now().Add(PublishTimeout), deadline, time.Second)

						assert.Len(t, msgs, 1)
						assert.Equal(t, []byte("3"), msgs[0].Key)

						var event models.MoodEntryEvent
						assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
						assert.Equal(t, "3", event.EntryID)
						assert.Equal(t, "happy", event.Mood)
						assert.Equal(t, "😊", event.Emoji)
						return nil
					})
			},
			withKafka:  true,
			expectedID: "3",
		},
		{
			name:  "publish failure does not fail create",
			mood:  "happy",
			emoji: "😊",
			setupMocks: func(writer *MockMoodEntryWriter, kw *MockKafkaWriter) {
				writer.EXPECT().Save(ctx, "happy", "😊", "").Return(newEntry("4", "happy", "😊", ""), nil)
				kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))
			},
			withKafka:  true,
			expectedID: "4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockMoodEntryWriter(ctrl)
			kw := NewMockKafkaWriter(ctrl)
			tt.setupMocks(writer, kw)

			var kafkaWriter KafkaWriter
			if tt.withKafka {
				kafkaWriter = kw
			}

			svc := NewMoodService(writer, nil, kafkaWriter)
			entry, err := svc.Create(ctx, tt.mood, tt.emoji, tt.note)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			if assert.NotNil(t, entry) {
				assert.Equal(t, tt.expectedID, entry.ID)
			}
		})
	}
}

func TestMoodService_Create_PublishTimeout(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockMoodEntryWriter(ctrl)
	kw := NewMockKafkaWriter(ctrl)

	writer.EXPECT().Save(ctx, "happy", "😊", "").Return(newEntry("5", "happy", "😊", ""), nil)
	// broker never answers
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
			<-ctx.Done()
			return ctx.Err()
		})

	svc := NewMoodService(writer, nil, kw)
	svc.publishTimeout = 50 * time.Millisecond

	start := time.Now()
	entry, err := svc.Create(ctx, "happy", "😊", "")

	assert.NoError(t, err)
	if assert.NotNil(t, entry) {
		assert.Equal(t, "5", entry.ID)
	}
	assert.True(t, time.Since(start) < time.Second, "create must not wait for the broker")
}
