package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `bson:"title" json:"title"`
	Description        string             `bson:"description" json:"description"`
	Images             []string           `bson:"images" json:"images"`
	CollectionID       primitive.ObjectID `bson:"collectionId" json:"collectionId"`
	Price              float64            `bson:"price" json:"price"`
	OriginalPrice      float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	DiscountPercentage float64            `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
	IsOnSale           bool               `bson:"isOnSale" json:"isOnSale"`
	Sizes              []string           `bson:"sizes" json:"sizes"`
	Colors             []string           `bson:"colors" json:"colors"`
	Stock              int                `bson:"stock" json:"stock"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	SalesCount         int                `bson:"salesCount" json:"salesCount"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultStock is applied when a product is created without an explicit stock.
const DefaultStock = 999
