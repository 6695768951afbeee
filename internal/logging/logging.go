// Package logging builds the app logger. Repeated identical messages are
// suppressed for a short window so a failing store write does not flood the
// terminal during rapid mutations.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const dedupeWindow = 100 * time.Millisecond

// New returns a text slog logger writing to w, wrapped with duplicate
// suppression. Debug enables the debug level.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(newDedupeHandler(handler))
}

type dedupeHandler struct {
	slog.Handler

	mu     sync.Mutex
	recent map[string]time.Time
}

func newDedupeHandler(next slog.Handler) *dedupeHandler {
	return &dedupeHandler{
		Handler: next,
		recent:  make(map[string]time.Time),
	}
}

func (h *dedupeHandler) Handle(ctx context.Context, record slog.Record) error {
	key := fmt.Sprintf("%s:%s", record.Level, record.Message)
	record.Attrs(func(a slog.Attr) bool {
		key += ":" + a.String()
		return true
	})

	h.mu.Lock()
	last, seen := h.recent[key]
	now := record.Time
	if seen && now.Sub(last) < dedupeWindow {
		h.mu.Unlock()
		return nil
	}
	h.recent[key] = now
	// Drop stale entries so the map does not grow unbounded.
	for k, t := range h.recent {
		if now.Sub(t) >= dedupeWindow {
			delete(h.recent, k)
		}
	}
	h.mu.Unlock()

	return h.Handler.Handle(ctx, record)
}
