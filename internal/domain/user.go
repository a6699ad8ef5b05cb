package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles assignable to a user. Admin accounts are provisioned out-of-band;
// no endpoint promotes a user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User Model
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`  // Document id
	Email          string             `bson:"email" json:"email"`       // Unique email (exact match as stored)
	HashedPassword string             `bson:"hashed_password" json:"-"` // Bcrypt hash, never serialized
	Role           string             `bson:"role" json:"role"`         // Role: user or admin
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
