package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rahhalah-backend/internal/models"
	"rahhalah-backend/internal/receipt"
)

/* =========================
   LIST / GET
========================= */

// GetAllOrders lists orders newest first, optionally filtered by status and
// creation date range (?status=&startDate=&endDate=, dates RFC3339 or
// 2006-01-02).
func GetAllOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders"
		defer handlePanic(c, route)

		filter := bson.M{}

		if status := strings.TrimSpace(c.Query("status")); status != "" {
			filter["status"] = status
		}

		created := bson.M{}
		if start, ok := parseDateParam(c.Query("startDate")); ok {
			created["$gte"] = start
		}
		if end, ok := parseDateParam(c.Query("endDate")); ok {
			created["$lte"] = end
		}
		if len(created) > 0 {
			filter["createdAt"] = created
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		refs := make([]*models.Order, len(orders))
		for i := range orders {
			refs[i] = &orders[i]
		}
		if err := attachProductDetails(ctx, db, refs...); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(orders),
			"data":    orders,
		})
	}
}

func GetOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := attachProductDetails(ctx, db, &order); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    order,
		})
	}
}

/* =========================
   STATUS UPDATE
========================= */

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through its lifecycle. The legal graph is
// enforced when strict is true; otherwise any known status may be written.
func UpdateOrderStatus(db *mongo.Database, strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /orders/:id/status"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if !validOrderStatus(req.Status) {
			respondWithError(c, http.StatusBadRequest, route, "Invalid order status")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if !canTransition(order.Status, req.Status, strict) {
			respondWithError(c, http.StatusBadRequest, route,
				"Cannot transition order from "+order.Status+" to "+req.Status)
			return
		}

		var updated models.Order
		err = db.Collection("orders").FindOneAndUpdate(
			ctx,
			bson.M{"_id": orderID},
			bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
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

/* =========================
   DELETE
========================= */

// DeleteOrder hard-deletes; there is no soft-delete or audit trail for orders.
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /orders/:id"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order deleted successfully",
		})
	}
}

/* =========================
   PDF RECEIPT
========================= */

// GetOrderPDF streams the order receipt as an attachment.
func GetOrderPDF(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/:id/pdf"
		defer handlePanic(c, route)

		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var order models.Order
		err = db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "Order not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if err := attachProductDetails(ctx, db, &order); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var settings models.Settings
		err = db.Collection("settings").
			FindOne(ctx, bson.M{"_id": models.SettingsID}).
			Decode(&settings)
		if err != nil {
			settings = models.DefaultSettings()
		}

		var buf bytes.Buffer
		if err := receipt.Render(&buf, order, settings); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "pdf error")
			return
		}

		c.Header("Content-Disposition", `attachment; filename=order-`+order.ID.Hex()+`.pdf`)
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

// parseDateParam accepts RFC3339 or plain dates for order list filters.
func parseDateParam(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
