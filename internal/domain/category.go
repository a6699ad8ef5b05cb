package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category Model
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"` // Document id
	Name string             `bson:"name" json:"name"`        // Unique name (case-sensitive as stored)
}
