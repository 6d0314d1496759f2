package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is a named product grouping. Names are unique case-insensitively;
// a collection cannot be deleted while any product still references it.
type Collection struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
