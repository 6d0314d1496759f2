package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rahhalah-backend/internal/models"
)

type productUnavailableError struct {
	ProductID primitive.ObjectID
}

func (e productUnavailableError) Error() string {
	return "product not found or unavailable"
}

type insufficientStockError struct {
	ProductID primitive.ObjectID
	Title     string
	Available int
	Requested int
}

func (e insufficientStockError) Error() string {
	return "insufficient stock"
}

/* =========================
   CREATE ORDER
========================= */

// CreateOrder transforms a submitted cart into a persisted order. All stock
// decrements and the order insert run inside one transaction: either the
// whole checkout commits or catalog state is left untouched.
func CreateOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		shippingCost, ok := shippingCostFor(req.Governorate)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "Invalid governorate")
			return
		}

		if len(req.Items) == 0 {
			respondWithError(c, http.StatusBadRequest, route, "Order must contain at least one item")
			return
		}

		if errs := validateOrderRequest(req); len(errs) > 0 {
			respondValidationErrors(c, route, errs)
			return
		}

		order := models.Order{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			Phone:         strings.TrimSpace(req.Phone),
			Address:       strings.TrimSpace(req.Address),
			Governorate:   req.Governorate,
			PaymentMethod: req.PaymentMethod,
			ShippingCost:  shippingCost,
			Status:        models.StatusPending,
			Notes:         strings.TrimSpace(req.Notes),
			IPAddress:     c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		session, err := db.Client().StartSession()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer session.EndSession(ctx)

		var orderID primitive.ObjectID
		_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
			items := make([]models.OrderItem, 0, len(req.Items))
			subtotal := 0.0

			for _, item := range req.Items {
				productID, _ := primitive.ObjectIDFromHex(item.ProductID)

				var product models.Product
				err := db.Collection("products").
					FindOne(sessCtx, bson.M{"_id": productID}).
					Decode(&product)
				if err == mongo.ErrNoDocuments {
					return nil, productUnavailableError{ProductID: productID}
				}
				if err != nil {
					return nil, err
				}
				if !product.IsActive {
					return nil, productUnavailableError{ProductID: productID}
				}

				if product.Stock < item.Quantity {
					return nil, insufficientStockError{
						ProductID: productID,
						Title:     product.Title,
						Available: product.Stock,
						Requested: item.Quantity,
					}
				}

				// The price charged is always the current catalog price;
				// nothing client-supplied reaches the line snapshot.
				items = append(items, models.OrderItem{
					ProductID:       productID,
					Quantity:        item.Quantity,
					Size:            strings.ToUpper(strings.TrimSpace(item.Size)),
					Color:           strings.TrimSpace(item.Color),
					PriceAtPurchase: product.Price,
				})
				subtotal += product.Price * float64(item.Quantity)

				filter := bson.M{
					"_id":   productID,
					"stock": bson.M{"$gte": item.Quantity},
				}
				update := bson.M{
					"$inc": bson.M{
						"stock":      -item.Quantity,
						"salesCount": item.Quantity,
					},
					"$set": bson.M{"updatedAt": time.Now()},
				}

				res, err := db.Collection("products").UpdateOne(sessCtx, filter, update)
				if err != nil {
					return nil, err
				}
				if res.MatchedCount == 0 {
					return nil, insufficientStockError{
						ProductID: productID,
						Title:     product.Title,
						Available: product.Stock,
						Requested: item.Quantity,
					}
				}
			}

			order.Items = items
			order.Total = subtotal + order.ShippingCost

			if err := verifyOrderTotal(order.Items, order.ShippingCost, order.Total); err != nil {
				return nil, err
			}

			res, err := db.Collection("orders").InsertOne(sessCtx, order)
			if err != nil {
				return nil, err
			}
			if id, ok := res.InsertedID.(primitive.ObjectID); ok {
				orderID = id
			}
			return nil, nil
		})
		if err != nil {
			var stockErr insufficientStockError
			if errors.As(err, &stockErr) {
				log.Printf("[%s] insufficient stock for %s: have %d, want %d",
					route, stockErr.ProductID.Hex(), stockErr.Available, stockErr.Requested)
				c.JSON(http.StatusBadRequest, gin.H{
					"success":   false,
					"message":   "Insufficient stock for " + stockErr.Title,
					"productId": stockErr.ProductID.Hex(),
					"available": stockErr.Available,
					"requested": stockErr.Requested,
				})
				return
			}
			var unavailableErr productUnavailableError
			if errors.As(err, &unavailableErr) {
				c.JSON(http.StatusBadRequest, gin.H{
					"success":   false,
					"message":   "Product " + unavailableErr.ProductID.Hex() + " not found or unavailable",
					"productId": unavailableErr.ProductID.Hex(),
				})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		order.ID = orderID

		// Best effort: analytics must never fail the order that just committed.
		recordOrderStats(db, order.Total)

		if err := attachProductDetails(ctx, db, &order); err != nil {
			log.Printf("[%s] could not resolve product details: %v", route, err)
		}

		log.Printf("[%s] order %s created, total %.2f", route, order.ID.Hex(), order.Total)
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    order,
		})
	}
}

/* =========================
   CALCULATE SHIPPING
========================= */

type calculateShippingRequest struct {
	Governorate string `json:"governorate" binding:"required"`
}

// CalculateShipping quotes the flat fee for a governorate. It reads the same
// table checkout prices from, so quote and charge always agree.
func CalculateShipping() gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/calculate-shipping"
		defer handlePanic(c, route)

		var req calculateShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		cost, ok := shippingCostFor(req.Governorate)
		if !ok {
			respondWithError(c, http.StatusBadRequest, route, "Invalid governorate")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"cost":    cost,
		})
	}
}
