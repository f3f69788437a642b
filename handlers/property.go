package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/images"
	"github.com/aykutolcay94-gif/buildestate/models"
	"github.com/aykutolcay94-gif/buildestate/storage"
)

// imageFields are the multipart slots the admin form fills, in order.
var imageFields = []string{"image1", "image2", "image3", "image4"}

type PropertyController struct {
	store storage.PropertyStore
	chain *images.Chain
}

func NewPropertyController(store storage.PropertyStore, chain *images.Chain) *PropertyController {
	return &PropertyController{store: store, chain: chain}
}

func (pc *PropertyController) AddProperty(c echo.Context) error {
	property, err := parsePropertyForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := property.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	uploads, err := collectUploads(c)
	if err != nil {
		config.Log.Error("görseller okunamadı", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	urls, err := pc.chain.Ingest(c.Request().Context(), uploads)
	if err != nil {
		config.Log.Error("görsel yükleme zinciri tükendi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	property.Images = urls
	if err := property.ValidateImages(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	id, err := pc.store.Add(c.Request().Context(), property)
	if err != nil {
		config.Log.Error("ilan eklenemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	config.SLog.Infof("İlan eklendi: %s (%s)", property.Title, id)
	return ok(c, http.StatusOK, echo.Map{"message": "Ürün başarıyla eklendi"})
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	properties, err := pc.store.List(c.Request().Context())
	if err != nil {
		config.Log.Error("ilanlar listelenemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if properties == nil {
		properties = []models.Property{}
	}
	return ok(c, http.StatusOK, echo.Map{"property": properties})
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")
	property, err := pc.store.Get(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			return fail(c, http.StatusBadRequest, "Geçersiz emlak ID formatı")
		case errors.Is(err, storage.ErrNotFound):
			return fail(c, http.StatusNotFound, "Emlak bulunamadı")
		}
		config.Log.Error("ilan getirilemedi", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	return ok(c, http.StatusOK, echo.Map{"property": property})
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id := c.FormValue("id")
	if id == "" {
		return fail(c, http.StatusBadRequest, "İlan ID gerekli")
	}

	existing, err := pc.store.Get(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			return fail(c, http.StatusBadRequest, "Geçersiz emlak ID formatı")
		case errors.Is(err, storage.ErrNotFound):
			return fail(c, http.StatusNotFound, "Emlak bulunamadı")
		}
		config.Log.Error("ilan getirilemedi", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	property, err := parsePropertyForm(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}
	if err := property.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	uploads, err := collectUploads(c)
	if err != nil {
		config.Log.Error("görseller okunamadı", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if len(uploads) == 0 {
		// Without new files the stored image set stays untouched.
		property.Images = existing.Images
	} else {
		urls, err := pc.chain.Ingest(c.Request().Context(), uploads)
		if err != nil {
			config.Log.Error("görsel yükleme zinciri tükendi", zap.Error(err))
			return fail(c, http.StatusInternalServerError, msgServerError)
		}
		property.Images = urls
	}

	if err := pc.store.Update(c.Request().Context(), id, property); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Emlak bulunamadı")
		}
		config.Log.Error("ilan güncellenemedi", zap.String("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	config.SLog.Infof("İlan güncellendi: %s", id)
	return ok(c, http.StatusOK, echo.Map{"message": "Emlak başarıyla güncellendi"})
}

func (pc *PropertyController) RemoveProperty(c echo.Context) error {
	var req struct {
		ID string `json:"id" form:"id"`
	}
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return fail(c, http.StatusBadRequest, "İlan ID gerekli")
	}

	err := pc.store.Remove(c.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return fail(c, http.StatusNotFound, "Emlak bulunamadı")
		}
		config.Log.Error("ilan silinemedi", zap.String("id", req.ID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	config.SLog.Infof("İlan kaldırıldı: %s", req.ID)
	return ok(c, http.StatusOK, echo.Map{"message": "Emlak başarıyla kaldırıldı"})
}

// parsePropertyForm reads the multipart scalar fields into the tagged
// union. Which attribute block is parsed follows the declared type, so a
// mismatched payload fails Validate instead of being silently accepted.
func parsePropertyForm(c echo.Context) (*models.Property, error) {
	property := &models.Property{
		Title:        c.FormValue("title"),
		Location:     c.FormValue("location"),
		Description:  c.FormValue("description"),
		Phone:        c.FormValue("phone"),
		Type:         c.FormValue("type"),
		Availability: c.FormValue("availability"),
		Amenities:    formValues(c, "amenities"),
	}

	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("fiyat sayısal olmalı")
		}
		property.Price = price
	}

	if property.Type == models.TypeLand {
		land := &models.LandAttrs{
			ZoningStatus: c.FormValue("zoningStatus"),
			LandType:     c.FormValue("landType"),
			DeedStatus:   c.FormValue("deedStatus"),
			AdaNumber:    c.FormValue("adaNumber"),
			ParcelNumber: c.FormValue("parcelNumber"),
		}
		if raw := c.FormValue("buildingCoefficient"); raw != "" {
			coefficient, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.New("yapılaşma katsayısı sayısal olmalı")
			}
			land.BuildingCoefficient = coefficient
		}
		property.Land = land
	} else {
		building := &models.BuildingAttrs{}
		var err error
		if building.Beds, err = strconv.Atoi(c.FormValue("beds")); err != nil {
			return nil, errors.New("oda sayısı sayısal olmalı")
		}
		if building.Baths, err = strconv.Atoi(c.FormValue("baths")); err != nil {
			return nil, errors.New("banyo sayısı sayısal olmalı")
		}
		if building.Sqft, err = strconv.ParseFloat(c.FormValue("sqft"), 64); err != nil {
			return nil, errors.New("metrekare sayısal olmalı")
		}
		property.Building = building
	}

	latRaw, lngRaw := c.FormValue("latitude"), c.FormValue("longitude")
	if latRaw != "" || lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			return nil, models.ErrPartialGeo
		}
		property.Latitude, property.Longitude = &lat, &lng
	}

	return property, nil
}

// formValues collects a repeated multipart field, also accepting the
// indexed amenities[0] style the admin form sends.
func formValues(c echo.Context, name string) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var values []string
	values = append(values, form.Value[name]...)
	for key, fieldValues := range form.Value {
		if len(key) > len(name) && key[:len(name)+1] == name+"[" {
			values = append(values, fieldValues...)
		}
	}
	return values
}

// collectUploads spools the uploaded photos to temp files so the ingestion
// chain can hand them to whichever tier wins.
func collectUploads(c echo.Context) ([]images.UploadedFile, error) {
	var uploads []images.UploadedFile
	for _, field := range imageFields {
		header, err := c.FormFile(field)
		if err != nil {
			continue // slot not filled
		}
		path, err := spool(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, images.UploadedFile{Path: path, Name: header.Filename})
	}
	return uploads, nil
}

func spool(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "buildestate-upload-*")
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
