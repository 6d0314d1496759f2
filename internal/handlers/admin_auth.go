package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"rahhalah-backend/internal/middleware"
	"rahhalah-backend/internal/models"
)

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin verifies credentials and issues a signed session token in an
// http-only cookie. One long-lived token per login, no refresh rotation.
func AdminLogin(db *mongo.Database, jwtSecret string, tokenTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/login"
		defer handlePanic(c, route)

		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Please provide email and password")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var admin models.Admin
		err := db.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
		if err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "Invalid credentials")
			return
		}

		if !admin.IsActive {
			respondWithError(c, http.StatusUnauthorized, route, "Account is deactivated")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(admin.PasswordHash),
			[]byte(req.Password),
		); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "Invalid credentials")
			return
		}

		claims := jwt.MapClaims{
			"sub":  admin.ID.Hex(),
			"role": admin.Role,
			"exp":  time.Now().Add(tokenTTL).Unix(),
			"iat":  time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(jwtSecret))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		_, _ = db.Collection("admins").UpdateByID(ctx, admin.ID, bson.M{
			"$set": bson.M{"lastLogin": time.Now()},
		})

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.CookieName, signed, int(tokenTTL.Seconds()), "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   signed,
			"admin": gin.H{
				"id":    admin.ID.Hex(),
				"email": admin.Email,
				"role":  admin.Role,
			},
		})
	}
}

func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Logged out successfully",
		})
	}
}

// AdminCheck reports the verified identity behind the session cookie.
func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := middleware.AdminFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, "GET /admin/check", "Not authorized to access this route")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"authenticated": true,
			"admin": gin.H{
				"id":    admin.ID.Hex(),
				"email": admin.Email,
				"role":  admin.Role,
			},
		})
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

func ChangePassword(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/change-password"
		defer handlePanic(c, route)

		admin, ok := middleware.AdminFromContext(c)
		if !ok {
			respondWithError(c, http.StatusUnauthorized, route, "Not authorized to access this route")
			return
		}

		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Please provide current and new password")
			return
		}

		if err := bcrypt.CompareHashAndPassword(
			[]byte(admin.PasswordHash),
			[]byte(req.CurrentPassword),
		); err != nil {
			respondWithError(c, http.StatusUnauthorized, route, "Current password is incorrect")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Server error")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = db.Collection("admins").UpdateByID(ctx, admin.ID, bson.M{
			"$set": bson.M{"passwordHash": string(hash)},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Password changed successfully",
		})
	}
}
