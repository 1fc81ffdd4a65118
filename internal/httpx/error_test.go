package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestWriteErrorEnvelope(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	rr := httptest.NewRecorder()
	e := NewError("invalid_template", "unknown template\n\"neon\"", http.StatusBadRequest).With("template", "neon")
	WriteError(ctx, rr, e)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	body := decode(t, rr)
	require.Equal(t, "invalid_template", body["error"])
	require.Equal(t, "unknown template \"neon\"", body["message"])
	require.Equal(t, float64(http.StatusBadRequest), body["status"])
	require.Equal(t, "req-42", body["request_id"])
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", body["trace_id"])
	require.Equal(t, map[string]any{"template": "neon"}, body["details"])
}

func TestWriteErrorOmitsMissingIDs(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(context.Background(), rr, Error{Code: "oops"})

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decode(t, rr)
	for _, key := range []string{"request_id", "trace_id", "details"} {
		_, ok := body[key]
		require.False(t, ok, "unexpected %s", key)
	}
}

func TestNewErrorLimits(t *testing.T) {
	e := NewError(strings.Repeat("x", 200), strings.Repeat("心", 300), 0)
	require.Equal(t, http.StatusInternalServerError, e.Status)
	require.Len(t, e.Code, codeLimit)
	require.LessOrEqual(t, len(e.Message), messageLimit)
	require.True(t, strings.HasSuffix(e.Message, "心"))
}

func TestWithCopiesDetails(t *testing.T) {
	base := NewError("invalid_payload", "bad", http.StatusBadRequest).With("field", "theme")
	derived := base.With("line", 3)

	require.Len(t, base.Details, 1)
	require.Len(t, derived.Details, 2)
	require.EqualError(t, base, "invalid_payload: bad")
}
