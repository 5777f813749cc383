package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/sbilibin2017/mood-diary/internal/logger"
	"github.com/sbilibin2017/mood-diary/internal/middlewares"
	"github.com/sbilibin2017/mood-diary/internal/models"
)

// NewHTTPHandler exposes a MoodHandlerFunc over plain HTTP.
// An empty request body is passed on as an absent body.
func NewHTTPHandler(h MoodHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read request body", "request_id", requestID(r.Context()), "error", err)
			writeResponse(w, errorResponse(http.StatusInternalServerError, err.Error()))
			return
		}

		req := models.Request{HTTPMethod: r.Method}
		if len(data) > 0 {
			body := string(data)
			req.Body = &body
		}
		if q := r.URL.Query(); len(q) > 0 {
			req.QueryStringParameters = make(map[string]string, len(q))
			for k := range q {
				req.QueryStringParameters[k] = q.Get(k)
			}
		}

		writeResponse(w, h(r.Context(), req))
	}
}

func writeResponse(w http.ResponseWriter, resp models.Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	io.WriteString(w, resp.Body)
}

func requestID(ctx context.Context) string {
	return middlewares.GetRequestIDFromContext(ctx)
}
