// Package obslog provides a structured JSON slog.Handler in the shape
// Google Cloud Logging expects, so log lines get correctly severity-
// leveled and queryable once shipped from a Cloud Run/GKE process.
// Grounded on the teacher's own GoogleCloudHandler.
package obslog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"
)

// CloudHandler writes one JSON object per log record with the fields
// Google Cloud's structured logging agent looks for.
type CloudHandler struct {
	writer     io.Writer
	level      slog.Level
	extraAttrs map[string]any
}

// NewCloudHandler builds a handler writing to w, emitting records at
// level and above.
func NewCloudHandler(w io.Writer, level slog.Level) *CloudHandler {
	return &CloudHandler{writer: w, level: level}
}

func (h *CloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *CloudHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]any{}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	for k, v := range h.extraAttrs {
		attrs[k] = v
	}

	entry := map[string]any{
		"severity": severity(r.Level),
		"message":  r.Message,
		"time":     time.Now().Format(time.RFC3339Nano),
	}
	for k, v := range attrs {
		entry[k] = v
	}

	return json.NewEncoder(h.writer).Encode(entry)
}

func (h *CloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.extraAttrs = make(map[string]any, len(h.extraAttrs)+len(attrs))
	for k, v := range h.extraAttrs {
		next.extraAttrs[k] = v
	}
	for _, a := range attrs {
		next.extraAttrs[a.Key] = a.Value.Any()
	}
	return &next
}

func (h *CloudHandler) WithGroup(string) slog.Handler {
	return h
}

func severity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
