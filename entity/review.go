package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review records are written out-of-band; this service only lists them.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
}
