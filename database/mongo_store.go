package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoDocument est la forme stockée : un document par collection logique
type mongoDocument[T any] struct {
	Key   string `bson:"_id"`
	Items []T    `bson:"items"`
}

// MongoStore stocke une collection dans un document MongoDB {_id: key, items: [...]}
type MongoStore[T any] struct {
	collection *mongo.Collection
	key        string
}

// NewMongoStore crée un store adossé à la collection "documents" de db
func NewMongoStore[T any](db *mongo.Database, key string) (*MongoStore[T], error) {
	if db == nil {
		return nil, fmt.Errorf("base MongoDB non initialisée")
	}
	return &MongoStore[T]{
		collection: db.Collection(documentsCollection),
		key:        key,
	}, nil
}

// EnsureExists insère le document vide s'il n'existe pas, sans toucher à l'existant
func (s *MongoStore[T]) EnsureExists(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.collection.UpdateOne(ctx,
		bson.M{BSONID: s.key},
		bson.M{BSONSetOnInsert: bson.M{BSONItems: bson.A{}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("erreur lors de l'initialisation du document %s: %w", s.key, err)
	}

	return nil
}

// Load retourne la liste du document (vide si absent)
func (s *MongoStore[T]) Load(ctx context.Context) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc mongoDocument[T]
	err := s.collection.FindOne(ctx, bson.M{BSONID: s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la lecture du document %s: %w", s.key, err)
	}

	if doc.Items == nil {
		doc.Items = []T{}
	}
	return doc.Items, nil
}

// Save remplace le document complet
func (s *MongoStore[T]) Save(ctx context.Context, items []T) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if items == nil {
		items = []T{}
	}

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{BSONID: s.key},
		mongoDocument[T]{Key: s.key, Items: items},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("erreur lors de l'écriture du document %s: %w", s.key, err)
	}

	return nil
}
