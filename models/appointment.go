package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses. Pending is the initial state; confirmed and
// cancelled are terminal, though a confirmed appointment's meeting link
// stays editable.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PropertyID  string             `bson:"propertyId" json:"propertyId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Status      string             `bson:"status" json:"status"`
	MeetingLink string             `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentView is an appointment joined with the listing and user it
// references, as the admin panel renders it.
type AppointmentView struct {
	Appointment `bson:",inline"`
	Property    *PropertyRef `bson:"property,omitempty" json:"propertyId,omitempty"`
	User        *UserRef     `bson:"user,omitempty" json:"userId,omitempty"`
}

type PropertyRef struct {
	ID       string `bson:"_id" json:"_id"`
	Title    string `bson:"title" json:"title"`
	Location string `bson:"location" json:"location"`
}

type UserRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

type ScheduleRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Notes      string `json:"notes"`
}

type StatusUpdateRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

type MeetingLinkRequest struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
	MeetingLink   string `json:"meetingLink" validate:"required,url"`
}
