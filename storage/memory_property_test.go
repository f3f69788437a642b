package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykutolcay94-gif/buildestate/models"
)

func demoProperty(title string) *models.Property {
	return &models.Property{
		Title:        title,
		Location:     "İzmir",
		Price:        500000,
		Description:  "d",
		Phone:        "555",
		Type:         models.TypeHouse,
		Availability: models.AvailabilitySale,
		Images:       []string{"http://example.com/a.jpg"},
		Building:     &models.BuildingAttrs{Beds: 2, Baths: 1, Sqft: 80},
	}
}

func TestMemoryStoreUniqueIDs(t *testing.T) {
	store := NewMemoryPropertyStore()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := store.Add(ctx, demoProperty("Ev"))
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMemoryStoreRemoveThenGet(t *testing.T) {
	store := NewMemoryPropertyStore()
	ctx := context.Background()

	id, err := store.Add(ctx, demoProperty("Ev"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Remove(ctx, id), ErrNotFound)
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryPropertyStore()
	ctx := context.Background()

	id, err := store.Add(ctx, demoProperty("Eski"))
	require.NoError(t, err)
	created, err := store.Get(ctx, id)
	require.NoError(t, err)

	updated := demoProperty("Yeni")
	updated.Images = []string{"http://example.com/new1.jpg", "http://example.com/new2.jpg"}
	require.NoError(t, store.Update(ctx, id, updated))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Yeni", got.Title)
	assert.Equal(t, updated.Images, got.Images)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)

	assert.ErrorIs(t, store.Update(ctx, "demo_yok", demoProperty("x")), ErrNotFound)
}

func TestMemoryStoreListSeedsSamples(t *testing.T) {
	store := NewMemoryPropertyStore()
	ctx := context.Background()

	listed, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2, "empty demo store still shows the sample pair")

	id1, _ := store.Add(ctx, demoProperty("Birinci"))
	id2, _ := store.Add(ctx, demoProperty("İkinci"))

	listed, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 4)
	assert.Equal(t, id1, listed[2].ID)
	assert.Equal(t, id2, listed[3].ID)

	// samples are display-only, not part of the mutable store
	_, err = store.Get(ctx, listed[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoStoreRejectsMalformedID(t *testing.T) {
	store := NewMongoPropertyStore(nil)
	ctx := context.Background()

	// id validation happens before the collection is touched
	_, err := store.Get(ctx, "not-a-valid-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	assert.ErrorIs(t, store.Update(ctx, "not-a-valid-id", demoProperty("x")), ErrInvalidID)
	assert.ErrorIs(t, store.Remove(ctx, "not-a-valid-id"), ErrInvalidID)
}
