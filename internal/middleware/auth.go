package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rahhalah-backend/internal/models"
)

// CookieName is the http-only cookie carrying the admin session token.
const CookieName = "adminToken"

// ContextAdminKey is where AdminAuth stores the verified admin record.
const ContextAdminKey = "admin"

// tokenFromRequest prefers the session cookie, falling back to a Bearer header.
func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && strings.TrimSpace(cookie) != "" {
		return strings.TrimSpace(cookie)
	}

	raw := strings.TrimSpace(c.GetHeader("Authorization"))
	parts := strings.Split(raw, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// AdminAuth validates the session token, reloads the admin record and rejects
// deactivated accounts. The verified admin is stored in the gin context.
func AdminAuth(db *mongo.Database, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized to access this route",
			})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Println("[AUTH] [ERROR] token validation failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		sub, _ := claims["sub"].(string)
		adminID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var admin models.Admin
		err = db.Collection("admins").FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
		if err != nil || !admin.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Admin account is no longer active",
			})
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}

// RequireRole is the authorization predicate for role-gated endpoints,
// evaluated against the admin record AdminAuth verified.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := AdminFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Not authorized to access this route",
			})
			return
		}

		for _, role := range roles {
			if admin.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "You do not have permission to perform this action",
		})
	}
}

// AdminFromContext returns the admin record stored by AdminAuth.
func AdminFromContext(c *gin.Context) (models.Admin, bool) {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return models.Admin{}, false
	}
	admin, ok := value.(models.Admin)
	return admin, ok
}
