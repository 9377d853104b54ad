package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/entityregistry/pkg/entityregistry/event"
)

// testHandler captures log records as JSON lines.
type testHandler struct {
	buf   *bytes.Buffer
	level slog.Level
	attrs []slog.Attr
}

func newTestHandler() *testHandler {
	return &testHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	for _, attr := range h.attrs {
		data[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := &testHandler{
		buf:   h.buf,
		level: h.level,
		attrs: make([]slog.Attr, len(h.attrs)+len(attrs)),
	}
	copy(newH.attrs, h.attrs)
	copy(newH.attrs[len(h.attrs):], attrs)
	return newH
}

func (h *testHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *testHandler) records() []map[string]any {
	var records []map[string]any
	for _, line := range bytes.Split(h.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil {
			records = append(records, m)
		}
	}
	return records
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds registry name", func(t *testing.T) {
		h := newTestHandler()
		enriched := EnrichLogger(slog.New(h), "vehicles")
		enriched.Info("hello")

		records := h.records()
		require.Len(t, records, 1)
		assert.Equal(t, "vehicles", records[0]["registry"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "vehicles"))
	})
}

func TestLogObserver(t *testing.T) {
	t.Run("success logs at debug", func(t *testing.T) {
		h := newTestHandler()
		obs := LogObserver[string](slog.New(h), "vehicles")
		require.NotNil(t, obs)

		obs.Observe(event.Notification[string]{Kind: event.AddedSuccess, Key: "car-1"})

		records := h.records()
		require.Len(t, records, 1)
		assert.Equal(t, "DEBUG", records[0]["level"])
		assert.Equal(t, "added_success", records[0]["event"])
		assert.Equal(t, "car-1", records[0]["key"])
		assert.Equal(t, "vehicles", records[0]["registry"])
		assert.NotContains(t, records[0], "error")
	})

	t.Run("failure logs at warn with error", func(t *testing.T) {
		h := newTestHandler()
		obs := LogObserver[string](slog.New(h), "vehicles")

		obs.Observe(event.Notification[string]{
			Kind: event.GetFailed,
			Key:  "car-9",
			Err:  errors.New("not found"),
		})

		records := h.records()
		require.Len(t, records, 1)
		assert.Equal(t, "WARN", records[0]["level"])
		assert.Equal(t, "get_failed", records[0]["event"])
		assert.Equal(t, "not found", records[0]["error"])
	})

	t.Run("nil logger yields nil observer", func(t *testing.T) {
		assert.Nil(t, LogObserver[string](nil, "vehicles"))
	})
}

func TestLogNotificationNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogNotification(nil, event.AddedFailed, "k", errors.New("x"))
	})
}
