package repository

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"HotelOS/internal/lib/sl"
)

// WatchCollection opens a change stream on a collection and returns a
// channel that ticks whenever anything in the collection changes. Ticks
// coalesce: a burst of writes may produce a single tick, which is enough
// because every tick triggers a full re-fetch. The channel closes when ctx
// is cancelled or the stream dies.
func (m *MongoDB) WatchCollection(ctx context.Context, collection string) (<-chan struct{}, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}

	coll := connection.Database(m.database).Collection(collection)
	stream, err := coll.Watch(ctx, bson.A{})
	if err != nil {
		m.disconnect(connection)
		return nil, fmt.Errorf("mongodb watch %s: %w", collection, err)
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer m.disconnect(connection)
		defer stream.Close(m.ctx)

		for stream.Next(ctx) {
			select {
			case changes <- struct{}{}:
			default:
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			m.log.With(
				slog.String("collection", collection),
			).Error("change stream closed", sl.Err(err))
		}
	}()
	return changes, nil
}
