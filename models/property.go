package models

import (
	"errors"
	"fmt"
	"time"
)

// Listing kinds as offered on the admin form. "Arsa" is land and carries
// its own attribute block instead of the building one.
const (
	TypeHouse     = "Ev"
	TypeApartment = "Apartman"
	TypeOffice    = "Ofis"
	TypeVilla     = "Villa"
	TypeLand      = "Arsa"
)

const (
	AvailabilityRent = "kiralık"
	AvailabilitySale = "satılık"
)

var (
	PropertyTypes     = []string{TypeHouse, TypeApartment, TypeOffice, TypeVilla, TypeLand}
	AvailabilityTypes = []string{AvailabilityRent, AvailabilitySale}
	ZoningStatuses    = []string{"İmarlı", "İmarsız"}
	LandTypes         = []string{"Bahçe", "Tarla", "Zeytinlik", "Bağ", "Orman", "Diğer"}
	DeedStatuses      = []string{"Kat Mülkiyeti", "Kat İrtifakı", "Arsa Tapusu"}
)

var (
	ErrMissingField    = errors.New("zorunlu alan eksik")
	ErrInvalidEnum     = errors.New("geçersiz alan değeri")
	ErrKindMismatch    = errors.New("ilan türü ile alanlar uyuşmuyor")
	ErrImageCount      = errors.New("ilan 1 ile 4 arasında görsel içermeli")
	ErrPartialGeo      = errors.New("enlem ve boylam birlikte verilmeli")
	ErrInvalidPrice    = errors.New("fiyat pozitif olmalı")
	ErrInvalidBuilding = errors.New("oda, banyo ve metrekare pozitif olmalı")
)

type BuildingAttrs struct {
	Beds  int     `bson:"beds" json:"beds"`
	Baths int     `bson:"baths" json:"baths"`
	Sqft  float64 `bson:"sqft" json:"sqft"`
}

type LandAttrs struct {
	ZoningStatus        string  `bson:"zoningStatus" json:"zoningStatus"`
	LandType            string  `bson:"landType" json:"landType"`
	DeedStatus          string  `bson:"deedStatus" json:"deedStatus"`
	AdaNumber           string  `bson:"adaNumber" json:"adaNumber"`
	ParcelNumber        string  `bson:"parcelNumber" json:"parcelNumber"`
	BuildingCoefficient float64 `bson:"buildingCoefficient" json:"buildingCoefficient"`
}

// Property is a listing. Exactly one of Building or Land is set, selected
// by Type: every kind except Arsa is a building.
type Property struct {
	ID           string         `bson:"_id,omitempty" json:"_id"`
	Title        string         `bson:"title" json:"title"`
	Location     string         `bson:"location" json:"location"`
	Price        float64        `bson:"price" json:"price"`
	Description  string         `bson:"description" json:"description"`
	Phone        string         `bson:"phone" json:"phone"`
	Type         string         `bson:"type" json:"type"`
	Availability string         `bson:"availability" json:"availability"`
	Images       []string       `bson:"image" json:"image"`
	Amenities    []string       `bson:"amenities" json:"amenities"`
	Building     *BuildingAttrs `bson:"building,omitempty" json:"building,omitempty"`
	Land         *LandAttrs     `bson:"land,omitempty" json:"land,omitempty"`
	Latitude     *float64       `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    *float64       `bson:"longitude,omitempty" json:"longitude,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

func (p *Property) IsLand() bool {
	return p.Type == TypeLand
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

// Validate enforces the listing invariant at the API boundary: required
// common fields, known enum values, and the building/land attribute block
// matching the declared kind.
func (p *Property) Validate() error {
	switch {
	case p.Title == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case p.Location == "":
		return fmt.Errorf("%w: location", ErrMissingField)
	case p.Description == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	case p.Phone == "":
		return fmt.Errorf("%w: phone", ErrMissingField)
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if !contains(PropertyTypes, p.Type) {
		return fmt.Errorf("%w: type %q", ErrInvalidEnum, p.Type)
	}
	if !contains(AvailabilityTypes, p.Availability) {
		return fmt.Errorf("%w: availability %q", ErrInvalidEnum, p.Availability)
	}

	if p.IsLand() {
		if p.Building != nil {
			return fmt.Errorf("%w: arsa ilanı bina alanları içeremez", ErrKindMismatch)
		}
		if p.Land == nil {
			return fmt.Errorf("%w: arsa ilanı arsa alanlarını gerektirir", ErrKindMismatch)
		}
		if err := p.Land.validate(); err != nil {
			return err
		}
	} else {
		if p.Land != nil {
			return fmt.Errorf("%w: bina ilanı arsa alanları içeremez", ErrKindMismatch)
		}
		if p.Building == nil {
			return fmt.Errorf("%w: bina ilanı oda, banyo ve metrekare gerektirir", ErrKindMismatch)
		}
		if p.Building.Beds <= 0 || p.Building.Baths <= 0 || p.Building.Sqft <= 0 {
			return ErrInvalidBuilding
		}
	}

	if (p.Latitude == nil) != (p.Longitude == nil) {
		return ErrPartialGeo
	}
	return nil
}

func (l *LandAttrs) validate() error {
	if !contains(ZoningStatuses, l.ZoningStatus) {
		return fmt.Errorf("%w: zoningStatus %q", ErrInvalidEnum, l.ZoningStatus)
	}
	if !contains(LandTypes, l.LandType) {
		return fmt.Errorf("%w: landType %q", ErrInvalidEnum, l.LandType)
	}
	if !contains(DeedStatuses, l.DeedStatus) {
		return fmt.Errorf("%w: deedStatus %q", ErrInvalidEnum, l.DeedStatus)
	}
	return nil
}

// ValidateImages runs after ingestion, which always yields at least the
// placeholder pair.
func (p *Property) ValidateImages() error {
	if len(p.Images) < 1 || len(p.Images) > 4 {
		return ErrImageCount
	}
	return nil
}
