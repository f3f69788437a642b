package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aykutolcay94-gif/buildestate/models"
)

func seedAppointmentStore(t *testing.T) (*MemoryAppointmentStore, string) {
	t.Helper()
	store := NewMemoryAppointmentStore()
	userID := primitive.NewObjectID()
	store.Properties["prop1"] = models.PropertyRef{ID: "prop1", Title: "Villa", Location: "Çeşme"}
	store.Users[userID.Hex()] = models.UserRef{ID: userID, Name: "Ayşe", Email: "ayse@example.com"}

	id, err := store.Create(context.Background(), &models.Appointment{
		PropertyID: "prop1",
		UserID:     userID,
		Date:       time.Now().AddDate(0, 0, 3),
		Time:       "14:00",
	})
	require.NoError(t, err)
	return store, id
}

func TestAppointmentStartsPending(t *testing.T) {
	store, id := seedAppointmentStore(t)

	appointment, err := store.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, appointment.Status)
}

func TestConfirmThenSetMeetingLink(t *testing.T) {
	store, id := seedAppointmentStore(t)
	ctx := context.Background()

	view, err := store.SetStatus(ctx, id, models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, view.Status)
	require.NotNil(t, view.User)
	assert.Equal(t, "ayse@example.com", view.User.Email)

	link := "https://meet.example.com/xyz-123"
	require.NoError(t, store.SetMeetingLink(ctx, id, link))

	appointment, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, link, appointment.MeetingLink)
}

func TestSetStatusUnknownID(t *testing.T) {
	store, _ := seedAppointmentStore(t)
	_, err := store.SetStatus(context.Background(), primitive.NewObjectID().Hex(), models.StatusCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllSkipsDanglingRefs(t *testing.T) {
	store, _ := seedAppointmentStore(t)
	ctx := context.Background()

	// appointment pointing at a listing that no longer exists
	_, err := store.Create(ctx, &models.Appointment{
		PropertyID: "gone",
		UserID:     primitive.NewObjectID(),
		Date:       time.Now(),
		Time:       "09:00",
	})
	require.NoError(t, err)

	views, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Villa", views[0].Property.Title)
}

func TestCountByStatus(t *testing.T) {
	store, id := seedAppointmentStore(t)
	ctx := context.Background()

	count, err := store.CountByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = store.SetStatus(ctx, id, models.StatusCancelled)
	require.NoError(t, err)

	count, err = store.CountByStatus(ctx, models.StatusPending)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
