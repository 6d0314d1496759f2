package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func EnsureCollectionIndexes(db *mongo.Database) error {
	ctx, cancel := indexContext()
	defer cancel()

	// Case-insensitive uniqueness on the name (collation strength 2).
	nameIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
		Options: options.Index().
			SetName("name_unique_ci").
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}

	_, err := db.Collection("collections").Indexes().CreateOne(ctx, nameIndex)
	return err
}

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := indexContext()
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "collectionId", Value: 1}}, Options: options.Index().SetName("collectionId_index")},
		{Keys: bson.D{{Key: "isActive", Value: 1}}, Options: options.Index().SetName("isActive_index")},
		{Keys: bson.D{{Key: "price", Value: 1}}, Options: options.Index().SetName("price_index")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_desc")},
	}

	_, err := db.Collection("products").Indexes().CreateMany(ctx, indexes)
	return err
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := indexContext()
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}, Options: options.Index().SetName("status_index")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_desc")},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetName("phone_index")},
	}

	_, err := db.Collection("orders").Indexes().CreateMany(ctx, indexes)
	return err
}

func EnsureAnalyticsIndexes(db *mongo.Database) error {
	ctx, cancel := indexContext()
	defer cancel()

	// One bucket per day; the upsert key.
	dateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("date_unique").SetUnique(true),
	}

	_, err := db.Collection("analytics").Indexes().CreateOne(ctx, dateIndex)
	return err
}

func EnsureAdminIndexes(db *mongo.Database) error {
	ctx, cancel := indexContext()
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	}

	_, err := db.Collection("admins").Indexes().CreateOne(ctx, emailIndex)
	return err
}
