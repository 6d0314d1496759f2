package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
)

/*
GET /settings
- the singleton is seeded at startup; a missing document falls back to defaults
*/
func GetSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var settings models.Settings
		err := db.Collection("settings").
			FindOne(ctx, bson.M{"_id": models.SettingsID}).
			Decode(&settings)
		if err == mongo.ErrNoDocuments {
			settings = models.DefaultSettings()
		} else if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    settings,
		})
	}
}

/*
PUT /settings
- partial update; unknown fields are rejected by the DTO shape
*/
func UpdateSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /settings"
		defer handlePanic(c, route)

		// map[string]*string keeps absent and empty fields distinct.
		var req map[string]*string
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		update := bson.M{}
		for key, value := range req {
			if value == nil || !settingsField(key) {
				continue
			}
			update[key] = *value
		}
		if len(update) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "no fields to update")
			return
		}
		update["updatedAt"] = time.Now()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var updated models.Settings
		err := db.Collection("settings").FindOneAndUpdate(
			ctx,
			bson.M{"_id": models.SettingsID},
			bson.M{"$set": update},
			options.FindOneAndUpdate().
				SetUpsert(true).
				SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Settings updated successfully",
			"data":    updated,
		})
	}
}

/*
POST /settings/reset
- restores the seed defaults
*/
func ResetSettings(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /settings/reset"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		defaults := models.DefaultSettings()
		_, err := db.Collection("settings").ReplaceOne(
			ctx,
			bson.M{"_id": models.SettingsID},
			defaults,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Settings reset to defaults",
			"data":    defaults,
		})
	}
}

// settingsField whitelists the updatable keys of the singleton.
func settingsField(key string) bool {
	switch key {
	case "primaryGold", "secondaryGold", "accentGold",
		"bgPrimary", "bgSecondary", "bgTertiary",
		"textPrimary", "textSecondary", "textMuted",
		"borderLight", "borderMedium",
		"siteName", "siteDescription", "fontFamily",
		"phone", "email", "address",
		"facebook", "instagram", "twitter":
		return true
	}
	return false
}
