package utils

import (
	"errors" // Sentinel error

	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID type
)

// ErrInvalidID is returned for identifiers that are not 24-hex ObjectIDs.
// Every handler maps it to a 400 response.
var ErrInvalidID = errors.New("invalid id format")

// ParseObjectID is the single chokepoint turning a path/form string into a
// typed document id
func ParseObjectID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID // Hide the driver error behind one sentinel
	}
	return id, nil
}
