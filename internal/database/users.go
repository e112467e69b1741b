package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"HotelOS/entity"
)

// GetUserByToken resolves a session token to a user profile. Token
// issuance is external; this only matches the stored token value.
func (m *MongoDB) GetUserByToken(ctx context.Context, token string) (*entity.UserProfile, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(usersCollection)
	filter := bson.D{{Key: "token", Value: token}}

	var user entity.UserProfile
	err = collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}
	return &user, nil
}

// GetUser loads a profile by uid.
func (m *MongoDB) GetUser(ctx context.Context, uid string) (*entity.UserProfile, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(usersCollection)
	filter := bson.D{{Key: "uid", Value: uid}}

	var user entity.UserProfile
	err = collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}
	return &user, nil
}

// GetAllUsers returns every registered profile, used by the messaging
// views to resolve participant names.
func (m *MongoDB) GetAllUsers(ctx context.Context) ([]entity.UserProfile, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(usersCollection)
	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongodb find users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []entity.UserProfile
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongodb decode users: %w", err)
	}
	return users, nil
}
