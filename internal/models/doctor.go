package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image []byte             `bson:"image" json:"image"` // raw upload; base64 in JSON
}
