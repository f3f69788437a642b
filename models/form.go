package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactForm is a message sent through the public contact page.
type ContactForm struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone" json:"phone"`
	Message   string             `bson:"message" json:"message" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
