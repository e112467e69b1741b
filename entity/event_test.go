package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventTimeUnmarshalJSONShapes(t *testing.T) {
	want := time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)

	cases := map[string]string{
		"rfc3339":      `"2024-05-17T14:30:00Z"`,
		"epoch_secs":   `1715956200`,
		"epoch_millis": `1715956200000`,
		"wrapper":      `{"seconds":1715956200,"nanoseconds":0}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var et EventTime
			require.NoError(t, json.Unmarshal([]byte(raw), &et))
			assert.True(t, et.Equal(want), "got %s", et.Time)
		})
	}
}

func TestEventTimeUnmarshalJSONRejectsGarbage(t *testing.T) {
	var et EventTime
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &et))
	assert.Error(t, json.Unmarshal([]byte(`true`), &et))
}

func TestEventTimeJSONRoundTrip(t *testing.T) {
	in := EventTime{Time: time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out EventTime
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Equal(in.Time))
}

func TestCalendarEventDecodeNormalizesStart(t *testing.T) {
	doc := Document{
		"id":    "ev-1",
		"title": "Site visit",
		"start": map[string]any{"seconds": int64(1715956200), "nanoseconds": int64(0)},
	}

	var ev CalendarEvent
	require.NoError(t, Decode(doc, &ev))
	assert.Equal(t, "ev-1", ev.ID)
	assert.True(t, ev.Start.Equal(time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)))
}

func TestCalendarEventDecodeStringStart(t *testing.T) {
	doc := Document{
		"id":    "ev-2",
		"title": "Tasting",
		"start": "2024-05-17T14:30:00Z",
	}

	var ev CalendarEvent
	require.NoError(t, Decode(doc, &ev))
	assert.True(t, ev.Start.Equal(time.Date(2024, 5, 17, 14, 30, 0, 0, time.UTC)))
}
