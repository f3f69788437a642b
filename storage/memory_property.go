package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aykutolcay94-gif/buildestate/models"
)

// MemoryPropertyStore is the demo-mode backend used when no database is
// reachable at startup. Data lives for the process lifetime only; the API
// surface is identical to the persistent store.
type MemoryPropertyStore struct {
	mu         sync.RWMutex
	properties map[string]models.Property
	order      []string
	lastStamp  int64
	seq        int
}

func NewMemoryPropertyStore() *MemoryPropertyStore {
	return &MemoryPropertyStore{properties: make(map[string]models.Property)}
}

// nextID synthesizes a demo id from the current timestamp. Two adds within
// the same millisecond get a sequence suffix so ids stay unique.
func (s *MemoryPropertyStore) nextID() string {
	stamp := time.Now().UnixMilli()
	if stamp == s.lastStamp {
		s.seq++
		return fmt.Sprintf("demo_%d_%d", stamp, s.seq)
	}
	s.lastStamp = stamp
	s.seq = 0
	return fmt.Sprintf("demo_%d", stamp)
}

func (s *MemoryPropertyStore) Add(_ context.Context, p *models.Property) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.properties[p.ID] = *p
	s.order = append(s.order, p.ID)
	return p.ID, nil
}

// List returns the two fixed sample listings followed by demo-added
// listings in insertion order. The samples are display-only: they are not
// part of the mutable store and cannot be fetched or changed by id.
func (s *MemoryPropertyStore) List(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Property, 0, len(s.order)+len(sampleProperties))
	result = append(result, sampleProperties...)
	for _, id := range s.order {
		result = append(result, s.properties[id])
	}
	return result, nil
}

func (s *MemoryPropertyStore) Get(_ context.Context, id string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	property, ok := s.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &property, nil
}

func (s *MemoryPropertyStore) Update(_ context.Context, id string, p *models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.properties[id]
	if !ok {
		return ErrNotFound
	}
	updated := *p
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	s.properties[id] = updated
	return nil
}

func (s *MemoryPropertyStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return ErrNotFound
	}
	delete(s.properties, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

var _ PropertyStore = (*MemoryPropertyStore)(nil)

// sampleProperties keeps the demo storefront from looking empty when the
// database is down.
var sampleProperties = []models.Property{
	{
		ID:           "demo_sample_1",
		Title:        "Beşiktaş'ta Lüks Villa",
		Location:     "Beşiktaş, İstanbul",
		Price:        12500000,
		Description:  "Boğaz manzaralı, geniş bahçeli müstakil villa.",
		Phone:        "0212 555 01 01",
		Type:         models.TypeVilla,
		Availability: models.AvailabilitySale,
		Images: []string{
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800",
			"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800",
		},
		Amenities: []string{"Otopark", "Bahçe", "Güvenlik"},
		Building:  &models.BuildingAttrs{Beds: 5, Baths: 4, Sqft: 420},
	},
	{
		ID:           "demo_sample_2",
		Title:        "Kadıköy'de Modern Daire",
		Location:     "Kadıköy, İstanbul",
		Price:        28000,
		Description:  "Metroya yürüme mesafesinde, yeni binada 2+1 daire.",
		Phone:        "0216 555 02 02",
		Type:         models.TypeApartment,
		Availability: models.AvailabilityRent,
		Images: []string{
			"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=800",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800",
		},
		Amenities: []string{"Asansör", "Balkon"},
		Building:  &models.BuildingAttrs{Beds: 2, Baths: 1, Sqft: 95},
	},
}
