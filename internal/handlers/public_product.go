package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

// productSort maps the public sort keywords onto mongo sort documents.
// Unknown keywords fall back to newest first.
func productSort(keyword string) bson.D {
	switch keyword {
	case "price-asc":
		return bson.D{{Key: "price", Value: 1}}
	case "price-desc":
		return bson.D{{Key: "price", Value: -1}}
	case "popular":
		return bson.D{{Key: "salesCount", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

/*
GET /products
- filters: collection, minPrice, maxPrice
- sort: price-asc | price-desc | popular (default newest)
- active products only
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit collection=%s minPrice=%s maxPrice=%s sort=%s",
			route,
			c.Query("collection"),
			c.Query("minPrice"),
			c.Query("maxPrice"),
			c.Query("sort"),
		)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter := bson.M{"isActive": true}

		if raw := strings.TrimSpace(c.Query("collection")); raw != "" {
			collectionID, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid collection id")
				return
			}
			filter["collectionId"] = collectionID
		}

		price := bson.M{}
		if raw := strings.TrimSpace(c.Query("minPrice")); raw != "" {
			if min, err := strconv.ParseFloat(raw, 64); err == nil {
				price["$gte"] = min
			}
		}
		if raw := strings.TrimSpace(c.Query("maxPrice")); raw != "" {
			if max, err := strconv.ParseFloat(raw, 64); err == nil {
				price["$lte"] = max
			}
		}
		if len(price) > 0 {
			filter["price"] = price
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(productSort(c.Query("sort")))
		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(products),
			"data":    products,
		})
	}
}

/*
GET /products/:id
- active products only
*/
func GetProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
		if err == mongo.ErrNoDocuments || (err == nil && !product.IsActive) {
			respondWithError(c, http.StatusNotFound, route, "Product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    product,
		})
	}
}
