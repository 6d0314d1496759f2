package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	LastLogin    time.Time          `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
