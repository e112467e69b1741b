// Package write dispatches mutation intents to the remote store. Writes
// are fire-and-forget from the view's perspective: the call returns when
// the dispatch is accepted, and the view model catches up asynchronously
// when the subscription redelivers.
package write

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"HotelOS/entity"
	"HotelOS/internal/lib/sl"
)

type RemoteStore interface {
	SaveDocument(ctx context.Context, collection string, doc entity.Document) error
	DeleteDocument(ctx context.Context, collection, id string) error
}

type Coordinator struct {
	store    RemoteStore
	validate *validator.Validate
	log      *slog.Logger
}

func NewCoordinator(store RemoteStore, log *slog.Logger) *Coordinator {
	return &Coordinator{
		store:    store,
		validate: validator.New(),
		log:      log.With(sl.Module("write")),
	}
}

// Write persists one full document. For ownership-scoped collections the
// acting user's id is stamped first; a document written without the stamp
// would vanish from its owner's next snapshot.
func (c *Coordinator) Write(ctx context.Context, collection, actorUID string, doc entity.Document) error {
	if entity.IsUserScoped(collection) {
		if actorUID == "" {
			return fmt.Errorf("write %s: no acting user for ownership stamp", collection)
		}
		doc = doc.Stamp(actorUID)
	}
	if err := c.store.SaveDocument(ctx, collection, doc); err != nil {
		return fmt.Errorf("dispatch %s/%s: %w", collection, doc.ID(), err)
	}
	return nil
}

// WriteEntity validates a typed entity and dispatches it as a document.
func (c *Coordinator) WriteEntity(ctx context.Context, collection, actorUID string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("validate %s: %w", collection, err)
	}
	doc, err := entity.ToDocument(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	return c.Write(ctx, collection, actorUID, doc)
}

// Remove deletes a document by id from the owning collection.
func (c *Coordinator) Remove(ctx context.Context, collection, id string) error {
	if err := c.store.DeleteDocument(ctx, collection, id); err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, id, err)
	}
	return nil
}

// WriteAll dispatches a batch as independent single-document writes.
// There is no transaction: a partial failure leaves the successful subset
// persisted, and the per-document errors say exactly which ones failed.
func (c *Coordinator) WriteAll(ctx context.Context, collection, actorUID string, docs []entity.Document) []error {
	errs := make([]error, len(docs))
	failed := 0
	for i, doc := range docs {
		if err := c.Write(ctx, collection, actorUID, doc); err != nil {
			errs[i] = err
			failed++
		}
	}
	if failed > 0 {
		c.log.Warn("batch write partially failed",
			slog.String("collection", collection),
			slog.Int("failed", failed),
			slog.Int("total", len(docs)),
		)
	}
	return errs
}
