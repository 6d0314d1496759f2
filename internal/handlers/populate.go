package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"rahhalah-backend/internal/models"
)

// attachProductDetails fills the display-only title/image fields of each
// order line from the referenced products. Missing products (hard-deleted
// after the sale) simply leave the fields empty.
func attachProductDetails(ctx context.Context, db *mongo.Database, orders ...*models.Order) error {
	seen := make(map[primitive.ObjectID]bool)
	ids := make([]primitive.ObjectID, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return err
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, order := range orders {
		for i := range order.Items {
			if p, ok := byID[order.Items[i].ProductID]; ok {
				order.Items[i].ProductTitle = p.Title
				order.Items[i].ProductImages = p.Images
			}
		}
	}
	return nil
}
