package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBuilding() *Property {
	return &Property{
		Title:        "Test",
		Location:     "X",
		Price:        100000,
		Description:  "d",
		Phone:        "555",
		Type:         TypeVilla,
		Availability: AvailabilitySale,
		Building:     &BuildingAttrs{Beds: 3, Baths: 2, Sqft: 150},
	}
}

func validLand() *Property {
	return &Property{
		Title:        "Tarla",
		Location:     "Urla",
		Price:        2500000,
		Description:  "d",
		Phone:        "555",
		Type:         TypeLand,
		Availability: AvailabilitySale,
		Land: &LandAttrs{
			ZoningStatus: "İmarlı",
			LandType:     "Tarla",
			DeedStatus:   "Arsa Tapusu",
			AdaNumber:    "101",
			ParcelNumber: "7",
		},
	}
}

func TestValidateBuilding(t *testing.T) {
	require.NoError(t, validBuilding().Validate())
}

func TestValidateLand(t *testing.T) {
	require.NoError(t, validLand().Validate())
}

func TestValidateRequiresCommonFields(t *testing.T) {
	p := validBuilding()
	p.Title = ""
	assert.ErrorIs(t, p.Validate(), ErrMissingField)

	p = validBuilding()
	p.Price = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidPrice)

	p = validBuilding()
	p.Availability = "sale"
	assert.ErrorIs(t, p.Validate(), ErrInvalidEnum)
}

func TestValidateKindMismatch(t *testing.T) {
	// building kind without building attrs
	p := validBuilding()
	p.Building = nil
	assert.ErrorIs(t, p.Validate(), ErrKindMismatch)

	// building kind carrying land attrs
	p = validBuilding()
	p.Land = validLand().Land
	assert.ErrorIs(t, p.Validate(), ErrKindMismatch)

	// land kind without land attrs
	p = validLand()
	p.Land = nil
	assert.ErrorIs(t, p.Validate(), ErrKindMismatch)

	// land kind carrying building attrs
	p = validLand()
	p.Building = &BuildingAttrs{Beds: 1, Baths: 1, Sqft: 50}
	assert.ErrorIs(t, p.Validate(), ErrKindMismatch)
}

func TestValidateLandEnums(t *testing.T) {
	p := validLand()
	p.Land.ZoningStatus = "belirsiz"
	assert.ErrorIs(t, p.Validate(), ErrInvalidEnum)

	p = validLand()
	p.Land.DeedStatus = "tapusuz"
	assert.ErrorIs(t, p.Validate(), ErrInvalidEnum)
}

func TestValidateBuildingAttrsPositive(t *testing.T) {
	p := validBuilding()
	p.Building.Baths = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidBuilding)
}

func TestValidateGeoPair(t *testing.T) {
	lat := 38.4
	p := validBuilding()
	p.Latitude = &lat
	assert.ErrorIs(t, p.Validate(), ErrPartialGeo)

	lng := 27.1
	p.Longitude = &lng
	assert.NoError(t, p.Validate())
}

func TestValidateImages(t *testing.T) {
	p := validBuilding()
	assert.ErrorIs(t, p.ValidateImages(), ErrImageCount)

	p.Images = []string{"a", "b"}
	assert.NoError(t, p.ValidateImages())

	p.Images = []string{"a", "b", "c", "d", "e"}
	assert.ErrorIs(t, p.ValidateImages(), ErrImageCount)
}
