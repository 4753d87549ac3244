package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	PatientName string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	ServiceName string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	Price       float64            `bson:"price,omitempty" json:"price,omitempty"`
	Date        string             `bson:"date" json:"date"` // stored as the client sent it, e.g. "10/5/2021"
	Payment     *Payment           `bson:"payment,omitempty" json:"payment,omitempty"`
}

// Payment is the confirmation the client attaches after a successful card payment.
type Payment struct {
	Amount      float64 `bson:"amount" json:"amount"`
	Created     int64   `bson:"created" json:"created"`
	Last4       string  `bson:"last4" json:"last4"`
	Transaction string  `bson:"transaction" json:"transaction"`
}
