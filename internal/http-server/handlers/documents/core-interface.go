package documents

import (
	"context"

	"HotelOS/entity"
)

type Core interface {
	SaveDocument(ctx context.Context, user *entity.UserProfile, collection string, doc entity.Document) error
	SaveDocuments(ctx context.Context, user *entity.UserProfile, collection string, docs []entity.Document) []error
	DeleteDocument(ctx context.Context, user *entity.UserProfile, collection, id string) error
}

func knownCollection(collection string) bool {
	for _, c := range entity.SharedCollections() {
		if c == collection {
			return true
		}
	}
	for _, c := range entity.UserCollections() {
		if c == collection {
			return true
		}
	}
	return false
}
