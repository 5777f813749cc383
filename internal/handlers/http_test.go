package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sbilibin2017/mood-diary/internal/middlewares"
	"github.com/sbilibin2017/mood-diary/internal/models"
	"github.com/stretchr/testify/assert"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestHTTPHandler(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		expectedBody *string
		expectedQS   map[string]string
	}{
		{
			name:   "get without body",
			method: http.MethodGet,
			target: "/mood",
		},
		{
			name:         "post with body",
			method:       http.MethodPost,
			target:       "/mood",
			body:         `{"mood":"happy","emoji":"😊"}`,
			expectedBody: strPtr(`{"mood":"happy","emoji":"😊"}`),
		},
		{
			name:       "query parameters use first value",
			method:     http.MethodGet,
			target:     "/mood?limit=5&tag=a&tag=b",
			expectedQS: map[string]string{"limit": "5", "tag": "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Request
			var gotID string
			stub := func(ctx context.Context, req models.Request) models.Response {
				got = req
				gotID = middlewares.GetRequestIDFromContext(ctx)
				return models.Response{
					StatusCode: http.StatusTeapot,
					Headers:    map[string]string{"Content-Type": "application/json", "X-Test": "1"},
					Body:       `{"ok":true}`,
				}
			}

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			req = req.WithContext(middlewares.SetRequestIDToContext(req.Context(), "req-1"))
			rr := httptest.NewRecorder()

			NewHTTPHandler(stub).ServeHTTP(rr, req)

			assert.Equal(t, tt.method, got.HTTPMethod)
			assert.Equal(t, tt.expectedBody, got.Body)
			assert.Equal(t, tt.expectedQS, got.QueryStringParameters)
			assert.Equal(t, "req-1", gotID)

			assert.Equal(t, http.StatusTeapot, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, "1", rr.Header().Get("X-Test"))
			assert.Equal(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestHTTPHandler_ReadError(t *testing.T) {
	called := false
	stub := func(ctx context.Context, req models.Request) models.Response {
		called = true
		return models.Response{StatusCode: http.StatusOK}
	}

	req := httptest.NewRequest(http.MethodPost, "/mood", errReader{})
	rr := httptest.NewRecorder()

	NewHTTPHandler(stub).ServeHTTP(rr, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"read failed"}`, rr.Body.String())
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPHandler_Preflight(t *testing.T) {
	handler := NewHTTPHandler(NewMoodHandler(nil))

	req := httptest.NewRequest(http.MethodOptions, "/mood", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Equal(t, "GET, POST, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "86400", rr.Header().Get("Access-Control-Max-Age"))
}
