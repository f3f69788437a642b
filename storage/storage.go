// Package storage holds the persistence backends. Each store exists in a
// persistent MongoDB flavor and an ephemeral in-memory flavor; the choice
// is made once at startup and injected into the handlers, so callers never
// branch on connection state themselves.
package storage

import (
	"context"
	"errors"

	"github.com/aykutolcay94-gif/buildestate/models"
)

var (
	ErrNotFound  = errors.New("kayıt bulunamadı")
	ErrInvalidID = errors.New("geçersiz kayıt ID formatı")
)

type PropertyStore interface {
	Add(ctx context.Context, p *models.Property) (string, error)
	List(ctx context.Context) ([]models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, id string, p *models.Property) error
	Remove(ctx context.Context, id string) error
}

type AppointmentStore interface {
	Create(ctx context.Context, a *models.Appointment) (string, error)
	All(ctx context.Context) ([]models.AppointmentView, error)
	ForUser(ctx context.Context, userID string) ([]models.Appointment, error)
	Get(ctx context.Context, id string) (*models.Appointment, error)
	SetStatus(ctx context.Context, id, status string) (*models.AppointmentView, error)
	SetMeetingLink(ctx context.Context, id, link string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}
