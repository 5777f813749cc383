package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/mood-diary/internal/logger"
	"github.com/sbilibin2017/mood-diary/internal/models"
	"github.com/sbilibin2017/mood-diary/internal/services"
)

//go:generate mockgen -source=mood.go -destination=mood_mock.go -package=handlers

const (
	errMoodAndEmojiRequired = "Mood and emoji are required"
	errMethodNotAllowed     = "Method not allowed"
)

// MoodService defines the interface that the service must implement.
type MoodService interface {
	List(ctx context.Context) ([]models.MoodEntryDB, error)
	Create(ctx context.Context, mood, emoji, note string) (*models.MoodEntryDB, error)
}

// MoodHandlerFunc turns a request descriptor into a response descriptor.
type MoodHandlerFunc func(ctx context.Context, req models.Request) models.Response

// CreateMoodEntryRequest represents the JSON body for creating an entry
// swagger:model CreateMoodEntryRequest
type CreateMoodEntryRequest struct {
	// Mood label
	// required: true
	// default: happy
	Mood string `json:"mood"`

	// Emoji for the mood
	// required: true
	// default: 😊
	Emoji string `json:"emoji"`

	// Optional note
	// default: great day
	Note string `json:"note"`
}

// MoodEntryResponse represents a single mood entry
// swagger:model MoodEntryResponse
type MoodEntryResponse struct {
	ID    string `json:"id"`
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
	Note  string `json:"note"`
	// ISO-8601 creation timestamp
	Date string `json:"date"`
}

// MoodEntriesResponse represents the list of recent entries
// swagger:model MoodEntriesResponse
type MoodEntriesResponse struct {
	Entries []MoodEntryResponse `json:"entries"`
}

// MoodErrorResponse represents an error response
// swagger:model MoodErrorResponse
type MoodErrorResponse struct {
	// Error message
	// default: Mood and emoji are required
	Error string `json:"error"`
}

// NewMoodHandler returns the mood diary handler.
// @Summary List or create mood entries
// @Description GET returns the 30 most recent entries, POST creates an entry, OPTIONS answers CORS preflight.
// @Tags mood
// @Accept json
// @Produce json
// @Param request body handlers.CreateMoodEntryRequest false "Create Mood Entry Request (POST only)"
// @Success 200 {object} handlers.MoodEntriesResponse "Recent entries"
// @Success 201 {object} handlers.MoodEntryResponse "Created entry"
// @Failure 400 {object} handlers.MoodErrorResponse "Mood and emoji are required"
// @Failure 405 {object} handlers.MoodErrorResponse "Method not allowed"
// @Failure 500 {object} handlers.MoodErrorResponse "Internal server error"
// @Router /mood [get]
// @Router /mood [post]
func NewMoodHandler(svc MoodService) MoodHandlerFunc {
	return func(ctx context.Context, req models.Request) (resp models.Response) {
		method := req.HTTPMethod
		if method == "" {
			method = http.MethodGet
		}

		if method == http.MethodOptions {
			return preflightResponse()
		}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Errorw("mood handler panic", "request_id", requestID(ctx), "method", method, "panic", rec)
				resp = errorResponse(http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()

		resp, err := dispatch(ctx, svc, method, req)
		if err != nil {
			logger.Log.Errorw("mood request failed", "request_id", requestID(ctx), "method", method, "error", err)
			return errorResponse(http.StatusInternalServerError, err.Error())
		}
		return resp
	}
}

// dispatch serves one method. Any returned error becomes a 500.
func dispatch(ctx context.Context, svc MoodService, method string, req models.Request) (models.Response, error) {
	switch method {
	case http.MethodGet:
		entries, err := svc.List(ctx)
		if err != nil {
			return models.Response{}, err
		}

		resp := MoodEntriesResponse{Entries: make([]MoodEntryResponse, 0, len(entries))}
		for _, e := range entries {
			resp.Entries = append(resp.Entries, toMoodEntryResponse(e))
		}
		return jsonResponse(http.StatusOK, resp)

	case http.MethodPost:
		body := "{}"
		if req.Body != nil {
			body = *req.Body
		}

		var in CreateMoodEntryRequest
		if err := json.Unmarshal([]byte(body), &in); err != nil {
			return models.Response{}, err
		}

		entry, err := svc.Create(ctx, in.Mood, in.Emoji, in.Note)
		if errors.Is(err, services.ErrMoodAndEmojiRequired) {
			logger.Log.Warnw("invalid mood entry", "request_id", requestID(ctx), "mood", in.Mood, "emoji", in.Emoji)
			return jsonResponse(http.StatusBadRequest, MoodErrorResponse{Error: errMoodAndEmojiRequired})
		}
		if err != nil {
			return models.Response{}, err
		}
		return jsonResponse(http.StatusCreated, toMoodEntryResponse(*entry))

	default:
		return jsonResponse(http.StatusMethodNotAllowed, MoodErrorResponse{Error: errMethodNotAllowed})
	}
}

func toMoodEntryResponse(e models.MoodEntryDB) MoodEntryResponse {
	return MoodEntryResponse{
		ID:    e.ID,
		Mood:  e.Mood,
		Emoji: e.Emoji,
		Note:  e.Note.String,
		Date:  isoformat(e.CreatedAt),
	}
}

// isoformat renders t as ISO-8601 with microsecond precision,
// dropping the fraction when it is zero.
func isoformat(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05Z07:00")
	}
	return t.Format("2006-01-02T15:04:05.000000Z07:00")
}

func preflightResponse() models.Response {
	return models.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
			"Access-Control-Max-Age":       "86400",
		},
		Body:            "",
		IsBase64Encoded: false,
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func jsonResponse(status int, v any) (models.Response, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return models.Response{}, err
	}

	return models.Response{
		StatusCode:      status,
		Headers:         jsonHeaders(),
		Body:            string(bytes.TrimRight(buf.Bytes(), "\n")),
		IsBase64Encoded: false,
	}, nil
}

// errorResponse cannot fail: a string field always encodes.
func errorResponse(status int, message string) models.Response {
	resp, _ := jsonResponse(status, MoodErrorResponse{Error: message})
	return resp
}
