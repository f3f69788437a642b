package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aykutolcay94-gif/buildestate/models"
)

// MongoPropertyStore keeps listings in a MongoDB collection. Identifiers
// are ObjectID hex strings so both backends expose the same string ids.
type MongoPropertyStore struct {
	collection *mongo.Collection
}

func NewMongoPropertyStore(collection *mongo.Collection) *MongoPropertyStore {
	return &MongoPropertyStore{collection: collection}
}

func (s *MongoPropertyStore) Add(ctx context.Context, p *models.Property) (string, error) {
	p.ID = primitive.NewObjectID().Hex()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if _, err := s.collection.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *MongoPropertyStore) List(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *MongoPropertyStore) Get(ctx context.Context, id string) (*models.Property, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	var property models.Property
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &property, nil
}

// Update replaces every mutable field. The caller decides whether Images
// carries the previous set or a replacement.
func (s *MongoPropertyStore) Update(ctx context.Context, id string, p *models.Property) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	update := bson.M{"$set": bson.M{
		"title":        p.Title,
		"location":     p.Location,
		"price":        p.Price,
		"description":  p.Description,
		"phone":        p.Phone,
		"type":         p.Type,
		"availability": p.Availability,
		"image":        p.Images,
		"amenities":    p.Amenities,
		"building":     p.Building,
		"land":         p.Land,
		"latitude":     p.Latitude,
		"longitude":    p.Longitude,
		"updatedAt":    time.Now(),
	}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPropertyStore) Remove(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ PropertyStore = (*MongoPropertyStore)(nil)
