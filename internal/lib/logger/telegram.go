package logger

import (
	"context"
	"fmt"
	"log/slog"
)

// Notifier is anything that can push a plain text alert, in practice the
// telegram bot's admin chat.
type Notifier interface {
	SendMessage(msg string)
}

// SetupTelegramHandler fans records at or above min out to the notifier
// while keeping the original handler untouched.
func SetupTelegramHandler(log *slog.Logger, notifier Notifier, min slog.Level) *slog.Logger {
	return slog.New(&telegramHandler{
		next:     log.Handler(),
		notifier: notifier,
		min:      min,
	})
}

type telegramHandler struct {
	next     slog.Handler
	notifier Notifier
	min      slog.Level
	attrs    []slog.Attr
}

func (h *telegramHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *telegramHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.min {
		text := fmt.Sprintf("*%s* %s", record.Level, record.Message)
		record.Attrs(func(a slog.Attr) bool {
			text += fmt.Sprintf("\n%s: %v", a.Key, a.Value)
			return true
		})
		for _, a := range h.attrs {
			text += fmt.Sprintf("\n%s: %v", a.Key, a.Value)
		}
		h.notifier.SendMessage(text)
	}
	return h.next.Handle(ctx, record)
}

func (h *telegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithAttrs(attrs),
		notifier: h.notifier,
		min:      h.min,
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *telegramHandler) WithGroup(name string) slog.Handler {
	return &telegramHandler{
		next:     h.next.WithGroup(name),
		notifier: h.notifier,
		min:      h.min,
		attrs:    h.attrs,
	}
}
