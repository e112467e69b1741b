package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const (
	EventPro    = "pro"
	EventPerso  = "perso"
	EventGoogle = "google"
)

// EventTime wraps time.Time so a calendar event start survives every shape
// it actually arrives in: RFC3339 strings from the local cache, native
// datetimes from the remote store, and the epoch-seconds wrapper some
// writers still emit ({"seconds": N}).
type EventTime struct {
	time.Time
}

func (t EventTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *EventTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("event time %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		t.Time = fromEpoch(int64(n))
		return nil
	}

	var wrapper struct {
		Seconds int64 `json:"seconds"`
		Nanos   int64 `json:"nanoseconds"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("event time: unsupported value %s", data)
	}
	t.Time = time.Unix(wrapper.Seconds, wrapper.Nanos).UTC()
	return nil
}

func (t EventTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.Time)
}

func (t *EventTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: bt, Value: data}
	switch bt {
	case bsontype.DateTime:
		t.Time = rv.Time().UTC()
	case bsontype.String:
		parsed, err := time.Parse(time.RFC3339Nano, rv.StringValue())
		if err != nil {
			return fmt.Errorf("event time %q: %w", rv.StringValue(), err)
		}
		t.Time = parsed
	case bsontype.Int32:
		t.Time = fromEpoch(int64(rv.Int32()))
	case bsontype.Int64:
		t.Time = fromEpoch(rv.Int64())
	case bsontype.Double:
		t.Time = fromEpoch(int64(rv.Double()))
	case bsontype.EmbeddedDocument:
		var wrapper struct {
			Seconds int64 `bson:"seconds"`
			Nanos   int64 `bson:"nanoseconds"`
		}
		if err := rv.Unmarshal(&wrapper); err != nil {
			return fmt.Errorf("event time wrapper: %w", err)
		}
		t.Time = time.Unix(wrapper.Seconds, wrapper.Nanos).UTC()
	case bsontype.Null, bsontype.Undefined:
		t.Time = time.Time{}
	default:
		return fmt.Errorf("event time: unsupported bson type %s", bt)
	}
	return nil
}

// fromEpoch treats large values as milliseconds, everything else as seconds.
func fromEpoch(n int64) time.Time {
	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

type CalendarEvent struct {
	ID              string    `json:"id" bson:"id" validate:"required"`
	Title           string    `json:"title" bson:"title" validate:"required"`
	Start           EventTime `json:"start" bson:"start"`
	Time            string    `json:"time" bson:"time"`
	Duration        string    `json:"duration" bson:"duration"`
	Type            string    `json:"type" bson:"type"`
	LinkedContactID string    `json:"linkedContactId,omitempty" bson:"linkedContactId,omitempty"`
	VideoLink       string    `json:"videoLink,omitempty" bson:"videoLink,omitempty"`
	OwnerID         string    `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
}
