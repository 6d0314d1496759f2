package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one line of an order. PriceAtPurchase is frozen at checkout;
// later catalog price changes never affect existing orders.
type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity        int                `bson:"quantity" json:"quantity"`
	Size            string             `bson:"size,omitempty" json:"size,omitempty"`
	Color           string             `bson:"color,omitempty" json:"color,omitempty"`
	PriceAtPurchase float64            `bson:"priceAtPurchase" json:"priceAtPurchase"`

	// Display fields resolved from the product at read time, not persisted.
	ProductTitle  string   `bson:"-" json:"productTitle,omitempty"`
	ProductImages []string `bson:"-" json:"productImages,omitempty"`
}

// Order is the persisted order document. Invariant, enforced at every write
// touching items/shipping/total: total equals the sum of line totals plus
// shippingCost within a 0.01 tolerance.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName  string             `bson:"customerName" json:"customerName"`
	Phone         string             `bson:"phone" json:"phone"`
	Address       string             `bson:"address" json:"address"`
	Governorate   string             `bson:"governorate" json:"governorate"`
	Items         []OrderItem        `bson:"items" json:"items"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	ShippingCost  float64            `bson:"shippingCost" json:"shippingCost"`
	Total         float64            `bson:"total" json:"total"`
	Status        string             `bson:"status" json:"status"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	IPAddress     string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	UserAgent     string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Order statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment methods. Labels only, there is no settlement call behind them.
const (
	PaymentVodafoneCash   = "vodafone-cash"
	PaymentCashOnDelivery = "cash-on-delivery"
)
