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

func collectionExists(ctx context.Context, db *mongo.Database, id primitive.ObjectID) (bool, error) {
	count, err := db.Collection("collections").CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

/*
POST /products
*/
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var req productInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if errs := validateProductInput(req); len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}

		collectionID, err := primitive.ObjectIDFromHex(req.CollectionID)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Invalid collection ID")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		exists, err := collectionExists(ctx, db, collectionID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if !exists {
			respondWithError(c, http.StatusBadRequest, route, "Invalid collection ID")
			return
		}

		product := models.Product{
			Title:        req.Title,
			Description:  req.Description,
			Images:       req.Images,
			CollectionID: collectionID,
			Price:        *req.Price,
			Sizes:        normalizeSizes(req.Sizes),
			Colors:       normalizeColors(req.Colors),
			Stock:        models.DefaultStock,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if product.Images == nil {
			product.Images = []string{}
		}
		if req.OriginalPrice != nil {
			product.OriginalPrice = *req.OriginalPrice
		}
		if req.DiscountPercentage != nil {
			product.DiscountPercentage = *req.DiscountPercentage
		}
		if req.IsOnSale != nil {
			product.IsOnSale = *req.IsOnSale
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.IsActive != nil {
			product.IsActive = *req.IsActive
		}

		result, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		product.ID = result.InsertedID.(primitive.ObjectID)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    product,
		})
	}
}

/*
PUT /products/:id
- full replacement of catalog fields; stock edits land here too
*/
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req productInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if errs := validateProductInput(req); len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}

		collectionID, err := primitive.ObjectIDFromHex(req.CollectionID)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Invalid collection ID")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		exists, err := collectionExists(ctx, db, collectionID)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if !exists {
			respondWithError(c, http.StatusBadRequest, route, "Invalid collection ID")
			return
		}

		update := bson.M{
			"title":        req.Title,
			"description":  req.Description,
			"collectionId": collectionID,
			"price":        *req.Price,
			"sizes":        normalizeSizes(req.Sizes),
			"colors":       normalizeColors(req.Colors),
			"updatedAt":    time.Now(),
		}
		if req.Images != nil {
			update["images"] = req.Images
		}
		if req.OriginalPrice != nil {
			update["originalPrice"] = *req.OriginalPrice
		}
		if req.DiscountPercentage != nil {
			update["discountPercentage"] = *req.DiscountPercentage
		}
		if req.IsOnSale != nil {
			update["isOnSale"] = *req.IsOnSale
		}
		if req.Stock != nil {
			update["stock"] = *req.Stock
		}
		if req.IsActive != nil {
			update["isActive"] = *req.IsActive
		}

		var updated models.Product
		err = db.Collection("products").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": update},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
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
DELETE /products/:id
*/
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product deleted successfully",
		})
	}
}
