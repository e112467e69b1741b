package entity

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Document is a raw record as it arrives from a remote collection snapshot,
// before classification into a concrete entity kind.
type Document map[string]any

// Id prefixes used as discriminators inside shared collections.
const (
	PrefixLog      = "log-"
	PrefixWakeUp   = "wk-"
	PrefixTaxi     = "tx-"
	PrefixLostItem = "li-"
	PrefixLead     = "lead-"
)

// TypeDocClient marks a client record inside the groups collection.
const TypeDocClient = "client"

// OwnerField is the ownership stamp read by user-scoped subscriptions.
const OwnerField = "ownerId"

func (d Document) ID() string {
	if v, ok := d["id"].(string); ok {
		return v
	}
	return ""
}

func (d Document) HasPrefix(prefix string) bool {
	return strings.HasPrefix(d.ID(), prefix)
}

// StringField returns the named field if it is a non-empty string.
func (d Document) StringField(name string) string {
	if v, ok := d[name].(string); ok {
		return v
	}
	return ""
}

func (d Document) Owner() string {
	return d.StringField(OwnerField)
}

// Stamp returns a copy of the document with the ownership field set.
// The receiver is never mutated.
func (d Document) Stamp(ownerID string) Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[OwnerField] = ownerID
	return out
}

// Decode converts a raw document into a typed entity through a bson
// round-trip, so custom field codecs apply the same way they do for
// records fetched straight from the remote store.
func Decode[T any](d Document, out *T) error {
	raw, err := bson.Marshal(bson.M(d))
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// ToDocument is the inverse of Decode, used by write paths that accept
// typed entities but dispatch raw documents.
func ToDocument(v any) (Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
