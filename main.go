package main

import (
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rahhalah-backend/internal/config"
	"rahhalah-backend/internal/database"
	"rahhalah-backend/internal/handlers"
	"rahhalah-backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureCollectionIndexes(db); err != nil {
		log.Printf("collection index warning: %v", err)
	}
	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureAnalyticsIndexes(db); err != nil {
		log.Printf("analytics index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}

	if err := database.EnsureSettings(db); err != nil {
		log.Fatal("settings bootstrap failed:", err)
	}
	if err := database.EnsureAdmin(db, config.AppEnv.AdminEmail, config.AppEnv.AdminPassword); err != nil {
		log.Fatal("admin bootstrap failed:", err)
	}

	var cld *cloudinary.Cloudinary
	if config.AppEnv.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(config.AppEnv.CloudinaryURL)
		if err != nil {
			log.Fatal("cloudinary init failed:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.AppEnv.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")

	api.POST("/admin/login", handlers.AdminLogin(db, config.AppEnv.JWTSecret, config.AppEnv.TokenTTL))
	api.POST("/admin/logout", handlers.AdminLogout())

	api.GET("/collections", handlers.GetCollections(db))
	api.GET("/collections/:id", handlers.GetCollection(db))

	api.GET("/products", handlers.GetProducts(db))
	api.GET("/products/:id", handlers.GetProduct(db))

	api.POST("/orders", handlers.CreateOrder(db))
	api.POST("/orders/calculate-shipping", handlers.CalculateShipping())

	api.GET("/settings", handlers.GetSettings(db))
	api.POST("/analytics/visit", handlers.TrackVisit(db))

	admin := api.Group("")
	admin.Use(middleware.AdminAuth(db, config.AppEnv.JWTSecret))
	{
		admin.GET("/admin/check", handlers.AdminCheck())
		admin.PUT("/admin/change-password", handlers.ChangePassword(db))

		admin.POST("/collections", handlers.CreateCollection(db))
		admin.PUT("/collections/:id", handlers.UpdateCollection(db))
		admin.DELETE("/collections/:id", handlers.DeleteCollection(db))

		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))
		admin.POST("/products/:id/images", handlers.UploadProductImage(db, cld))

		admin.GET("/orders", handlers.GetAllOrders(db))
		admin.GET("/orders/:id", handlers.GetOrder(db))
		admin.PUT("/orders/:id/status", handlers.UpdateOrderStatus(db, config.AppEnv.OrderStatusStrict))
		admin.DELETE("/orders/:id", middleware.RequireRole("super_admin"), handlers.DeleteOrder(db))
		admin.GET("/orders/:id/pdf", handlers.GetOrderPDF(db))

		admin.PUT("/settings", handlers.UpdateSettings(db))
		admin.POST("/settings/reset", middleware.RequireRole("super_admin"), handlers.ResetSettings(db))

		admin.GET("/analytics/dashboard", handlers.GetDashboard(db))
	}

	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
