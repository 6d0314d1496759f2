package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

type collectionCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type collectionUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// nameCollation makes the uniqueness check case-insensitive, matching the
// unique index on collections.name.
var nameCollation = &options.Collation{Locale: "en", Strength: 2}

/*
POST /collections
- name is unique case-insensitively
*/
func CreateCollection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /collections"
		defer handlePanic(c, route)

		var req collectionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" || utf8.RuneCountInString(name) > 100 {
			respondWithError(c, http.StatusBadRequest, route, "Collection name must be between 1 and 100 characters")
			return
		}
		if utf8.RuneCountInString(req.Description) > 500 {
			respondWithError(c, http.StatusBadRequest, route, "Description cannot exceed 500 characters")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("collections").CountDocuments(
			ctx,
			bson.M{"name": name},
			options.Count().SetCollation(nameCollation),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusBadRequest, route, "Collection with this name already exists")
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		collection := models.Collection{
			Name:        name,
			Description: strings.TrimSpace(req.Description),
			IsActive:    isActive,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		result, err := db.Collection("collections").InsertOne(ctx, collection)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		collection.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    collection,
		})
	}
}

/*
PUT /collections/:id
*/
func UpdateCollection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /collections/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req collectionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		update := bson.M{}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" || utf8.RuneCountInString(name) > 100 {
				respondWithError(c, http.StatusBadRequest, route, "Collection name must be between 1 and 100 characters")
				return
			}

			count, err := db.Collection("collections").CountDocuments(
				ctx,
				bson.M{"name": name, "_id": bson.M{"$ne": id}},
				options.Count().SetCollation(nameCollation),
			)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			if count > 0 {
				respondWithError(c, http.StatusBadRequest, route, "Collection with this name already exists")
				return
			}
			update["name"] = name
		}

		if req.Description != nil {
			if utf8.RuneCountInString(*req.Description) > 500 {
				respondWithError(c, http.StatusBadRequest, route, "Description cannot exceed 500 characters")
				return
			}
			update["description"] = strings.TrimSpace(*req.Description)
		}

		if req.IsActive != nil {
			update["isActive"] = *req.IsActive
		}

		if len(update) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}
		update["updatedAt"] = time.Now()

		var updated models.Collection
		err = db.Collection("collections").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Collection not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    updated,
		})
	}
}

/*
DELETE /collections/:id
- rejected while products still reference the collection
*/
func DeleteCollection(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /collections/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		productsCount, err := db.Collection("products").CountDocuments(ctx, bson.M{"collectionId": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if productsCount > 0 {
			respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf(
				"Cannot delete collection with %d product(s). Please delete products first.",
				productsCount,
			))
			return
		}

		result, err := db.Collection("collections").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "Collection not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Collection deleted successfully",
		})
	}
}
