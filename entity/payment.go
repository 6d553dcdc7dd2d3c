package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is append-only: once recorded it is never mutated or deleted.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	CartItems     []string           `bson:"cartItems" json:"cartItems"`
	MenuItems     []string           `bson:"menuItems,omitempty" json:"menuItems,omitempty"`
}
