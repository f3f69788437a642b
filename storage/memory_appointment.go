package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aykutolcay94-gif/buildestate/models"
)

// MemoryAppointmentStore is the ephemeral counterpart of the mongo
// appointment store. Population is served from the ref maps, which the
// caller fills in alongside the records they belong to.
type MemoryAppointmentStore struct {
	mu           sync.RWMutex
	appointments map[string]models.Appointment
	Properties   map[string]models.PropertyRef
	Users        map[string]models.UserRef
}

func NewMemoryAppointmentStore() *MemoryAppointmentStore {
	return &MemoryAppointmentStore{
		appointments: make(map[string]models.Appointment),
		Properties:   make(map[string]models.PropertyRef),
		Users:        make(map[string]models.UserRef),
	}
}

func (s *MemoryAppointmentStore) Create(_ context.Context, a *models.Appointment) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = primitive.NewObjectID()
	a.Status = models.StatusPending
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	s.appointments[a.ID.Hex()] = *a
	return a.ID.Hex(), nil
}

func (s *MemoryAppointmentStore) All(_ context.Context) ([]models.AppointmentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]models.AppointmentView, 0, len(s.appointments))
	for _, a := range s.appointments {
		view := s.populate(a)
		if view.User == nil || view.Property == nil {
			continue
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

func (s *MemoryAppointmentStore) ForUser(_ context.Context, userID string) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Appointment
	for _, a := range s.appointments {
		if a.UserID.Hex() == userID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryAppointmentStore) Get(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appointment, nil
}

func (s *MemoryAppointmentStore) SetStatus(_ context.Context, id, status string) (*models.AppointmentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	appointment.Status = status
	appointment.UpdatedAt = time.Now()
	s.appointments[id] = appointment

	view := s.populate(appointment)
	return &view, nil
}

func (s *MemoryAppointmentStore) SetMeetingLink(_ context.Context, id, link string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	appointment, ok := s.appointments[id]
	if !ok {
		return ErrNotFound
	}
	appointment.MeetingLink = link
	appointment.UpdatedAt = time.Now()
	s.appointments[id] = appointment
	return nil
}

func (s *MemoryAppointmentStore) CountByStatus(_ context.Context, status string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, a := range s.appointments {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *MemoryAppointmentStore) populate(a models.Appointment) models.AppointmentView {
	view := models.AppointmentView{Appointment: a}
	if ref, ok := s.Properties[a.PropertyID]; ok {
		view.Property = &ref
	}
	if ref, ok := s.Users[a.UserID.Hex()]; ok {
		view.User = &ref
	}
	return view
}

var _ AppointmentStore = (*MemoryAppointmentStore)(nil)
