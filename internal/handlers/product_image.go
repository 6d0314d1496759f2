package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

type uploadImageRequest struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
}

/*
POST /products/:id/images
- uploads a base64 image to Cloudinary and appends the hosted URL
- requires CLOUDINARY_URL; without it the endpoint reports unavailable
*/
func UploadProductImage(db *mongo.Database, cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products/:id/images"
		defer handlePanic(c, route)

		if cld == nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "image uploads are not configured")
			return
		}

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req uploadImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		uploadCtx, uploadCancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer uploadCancel()

		uploadResult, err := cld.Upload.Upload(uploadCtx, req.ImageBase64, uploader.UploadParams{
			Folder: "rahhalah/products",
		})
		if err != nil {
			log.Printf("[%s] cloudinary upload error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Failed to upload image")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Product
		err = db.Collection("products").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{
				"$push": bson.M{"images": uploadResult.SecureURL},
				"$set":  bson.M{"updatedAt": time.Now()},
			},
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
			"url":     uploadResult.SecureURL,
			"data":    updated,
		})
	}
}
