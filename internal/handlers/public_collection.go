package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

// GetCollections lists active collections, newest first.
func GetCollections(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /collections"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("collections").Find(ctx, bson.M{"isActive": true}, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		collections := make([]models.Collection, 0)
		if err := cursor.All(ctx, &collections); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(collections),
			"data":    collections,
		})
	}
}

func GetCollection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /collections/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var collection models.Collection
		err = db.Collection("collections").FindOne(ctx, bson.M{"_id": id}).Decode(&collection)
		if err == mongo.ErrNoDocuments || (err == nil && !collection.IsActive) {
			respondWithError(c, http.StatusNotFound, route, "Collection not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    collection,
		})
	}
}
