package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aykutolcay94-gif/buildestate/models"
)

// MongoAppointmentStore persists viewing appointments. Views are populated
// with their listing and user by follow-up lookups, the way the admin
// panel consumes them.
type MongoAppointmentStore struct {
	appointments *mongo.Collection
	properties   *mongo.Collection
	users        *mongo.Collection
}

func NewMongoAppointmentStore(appointments, properties, users *mongo.Collection) *MongoAppointmentStore {
	return &MongoAppointmentStore{appointments: appointments, properties: properties, users: users}
}

func (s *MongoAppointmentStore) Create(ctx context.Context, a *models.Appointment) (string, error) {
	a.ID = primitive.NewObjectID()
	a.Status = models.StatusPending
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	if _, err := s.appointments.InsertOne(ctx, a); err != nil {
		return "", err
	}
	return a.ID.Hex(), nil
}

func (s *MongoAppointmentStore) All(ctx context.Context) ([]models.AppointmentView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.appointments.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}

	views := make([]models.AppointmentView, 0, len(appointments))
	for i := range appointments {
		view, err := s.populate(ctx, &appointments[i])
		if err != nil {
			return nil, err
		}
		// Appointments whose user or listing has since been removed are
		// dropped, matching the admin panel's filtering.
		if view.User == nil || view.Property == nil {
			continue
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *MongoAppointmentStore) ForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.appointments.Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *MongoAppointmentStore) Get(ctx context.Context, id string) (*models.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var appointment models.Appointment
	err = s.appointments.FindOne(ctx, bson.M{"_id": oid}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *MongoAppointmentStore) SetStatus(ctx context.Context, id, status string) (*models.AppointmentView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment models.Appointment
	err = s.appointments.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.populate(ctx, &appointment)
}

func (s *MongoAppointmentStore) SetMeetingLink(ctx context.Context, id, link string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	update := bson.M{"$set": bson.M{"meetingLink": link, "updatedAt": time.Now()}}
	result, err := s.appointments.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoAppointmentStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.appointments.CountDocuments(ctx, bson.M{"status": status})
}

func (s *MongoAppointmentStore) populate(ctx context.Context, a *models.Appointment) (*models.AppointmentView, error) {
	view := models.AppointmentView{Appointment: *a}

	var property models.PropertyRef
	err := s.properties.FindOne(ctx, bson.M{"_id": a.PropertyID}).Decode(&property)
	if err == nil {
		view.Property = &property
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	var user models.UserRef
	err = s.users.FindOne(ctx, bson.M{"_id": a.UserID}).Decode(&user)
	if err == nil {
		view.User = &user
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &view, nil
}

var _ AppointmentStore = (*MongoAppointmentStore)(nil)
