package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"HotelOS/entity"
)

// FetchCollection returns the full current contents of a shared collection.
func (m *MongoDB) FetchCollection(ctx context.Context, collection string) ([]entity.Document, error) {
	return m.fetch(ctx, collection, bson.D{})
}

// FetchUserCollection returns the full current contents of a user-scoped
// collection for one owner. Documents written without the ownership stamp
// never match this filter.
func (m *MongoDB) FetchUserCollection(ctx context.Context, collection, ownerID string) ([]entity.Document, error) {
	return m.fetch(ctx, collection, bson.D{{Key: entity.OwnerField, Value: ownerID}})
}

func (m *MongoDB) fetch(ctx context.Context, collection string, filter bson.D) ([]entity.Document, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	coll := connection.Database(m.database).Collection(collection)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []entity.Document
	for cursor.Next(ctx) {
		var doc entity.Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongodb decode %s: %w", collection, err)
		}
		delete(doc, "_id")
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("mongodb cursor %s: %w", collection, err)
	}
	return docs, nil
}

// SaveDocument upserts a full document by its id field. There are no
// partial-patch semantics: an update re-persists the whole document.
func (m *MongoDB) SaveDocument(ctx context.Context, collection string, doc entity.Document) error {
	id := doc.ID()
	if id == "" {
		return fmt.Errorf("mongodb save %s: document has no id", collection)
	}

	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	coll := connection.Database(m.database).Collection(collection)
	filter := bson.D{{Key: "id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.M(doc)}}
	_, err = coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongodb upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

// DeleteDocument removes a document by id from the owning collection.
func (m *MongoDB) DeleteDocument(ctx context.Context, collection, id string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	coll := connection.Database(m.database).Collection(collection)
	_, err = coll.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return fmt.Errorf("mongodb delete %s/%s: %w", collection, id, err)
	}
	return nil
}
