package favorites

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

const (
	favoritesCollection   = "favorites"
	preferencesCollection = "preferences"
)

// MongoStore keeps favorites and preferences in MongoDB.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects and pings the server so misconfiguration surfaces
// at startup instead of on the first tool call.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	if database == "" {
		database = "real_estate"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) FindFavorite(ctx context.Context, propertyID, userID string) (*domain.FavoriteRecord, error) {
	filter := bson.M{"property_id": propertyID, "user_id": userID}

	var rec domain.FavoriteRecord
	err := s.db.Collection(favoritesCollection).FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return &rec, nil
}

func (s *MongoStore) InsertFavorite(ctx context.Context, rec domain.FavoriteRecord) error {
	if _, err := s.db.Collection(favoritesCollection).InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteFavorite(ctx context.Context, propertyID, userID string) (bool, error) {
	filter := bson.M{"property_id": propertyID, "user_id": userID}

	res, err := s.db.Collection(favoritesCollection).DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (s *MongoStore) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "saved_at", Value: -1}})

	cursor, err := s.db.Collection(favoritesCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.FavoriteRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return records, nil
}

func (s *MongoStore) UpsertPreferences(ctx context.Context, rec domain.PreferenceRecord) error {
	filter := bson.M{"user_id": rec.UserID}
	opts := options.Replace().SetUpsert(true)

	// Whole-record replace: a new save never merges with the prior one.
	if _, err := s.db.Collection(preferencesCollection).ReplaceOne(ctx, filter, rec, opts); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}

func (s *MongoStore) GetPreferences(ctx context.Context, userID string) (*domain.PreferenceRecord, error) {
	var rec domain.PreferenceRecord
	err := s.db.Collection(preferencesCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &rec, nil
}
