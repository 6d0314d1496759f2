package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"rahhalah-backend/internal/models"
)

// EnsureSettings creates the settings singleton with defaults if it does not
// exist yet. Idempotent upsert on the fixed key; an existing document is left
// untouched.
func EnsureSettings(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defaults := models.DefaultSettings()
	_, err := db.Collection("settings").UpdateByID(
		ctx,
		models.SettingsID,
		bson.M{"$setOnInsert": defaults},
		options.Update().SetUpsert(true),
	)
	return err
}

// EnsureAdmin creates the bootstrap admin account when the admins collection
// is empty. Credentials come from the environment; without them the store
// stays admin-less and every protected route rejects.
func EnsureAdmin(db *mongo.Database, email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.Collection("admins").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" || password == "" {
		log.Println("EnsureAdmin: no admin account and no ADMIN_EMAIL/ADMIN_PASSWORD set")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Role:         "super_admin",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		return err
	}

	log.Println("EnsureAdmin: default admin account created for", email)
	return nil
}
