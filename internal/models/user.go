package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role the API checks for.
const RoleAdmin = "Admin"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"` // "Admin" or empty
}

// IsAdmin reports whether the stored role is exactly "Admin".
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
