package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/images"
	"github.com/aykutolcay94-gif/buildestate/storage"
)

func TestMain(m *testing.M) {
	config.InitLogger()
	os.Exit(m.Run())
}

func newPropertyController(t *testing.T) (*PropertyController, *storage.MemoryPropertyStore) {
	t.Helper()
	store := storage.NewMemoryPropertyStore()
	chain := images.NewChain(&images.LocalDiskUploader{Dir: t.TempDir(), BaseURL: "http://localhost:4000"})
	return NewPropertyController(store, chain), store
}

func multipartContext(t *testing.T, e *echo.Echo, fields map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

var villaForm = map[string]string{
	"title":        "Test",
	"type":         "Villa",
	"beds":         "3",
	"baths":        "2",
	"sqft":         "150",
	"price":        "100000",
	"location":     "X",
	"availability": "satılık",
	"phone":        "555",
	"description":  "d",
}

func TestAddVillaWithoutImages(t *testing.T) {
	e := echo.New()
	pc, store := newPropertyController(t)

	c, rec := multipartContext(t, e, villaForm)
	require.NoError(t, pc.AddProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	listed, err := store.List(c.Request().Context())
	require.NoError(t, err)
	var added []string
	for _, p := range listed {
		if p.Title == "Test" {
			added = p.Images
		}
	}
	assert.Equal(t, images.PlaceholderURLs, added, "imageless add gets exactly the placeholder pair")
}

func TestAddRejectsLandAttrsOnVilla(t *testing.T) {
	e := echo.New()
	pc, _ := newPropertyController(t)

	form := map[string]string{}
	for k, v := range villaForm {
		form[k] = v
	}
	delete(form, "beds")

	c, rec := multipartContext(t, e, form)
	require.NoError(t, pc.AddProperty(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestAddLandListing(t *testing.T) {
	e := echo.New()
	pc, store := newPropertyController(t)

	form := map[string]string{
		"title":               "İmarlı Arsa",
		"type":                "Arsa",
		"price":               "2500000",
		"location":            "Urla",
		"availability":        "satılık",
		"phone":               "555",
		"description":         "d",
		"zoningStatus":        "İmarlı",
		"landType":            "Tarla",
		"deedStatus":          "Arsa Tapusu",
		"adaNumber":           "101",
		"parcelNumber":        "7",
		"buildingCoefficient": "0.3",
	}
	c, rec := multipartContext(t, e, form)
	require.NoError(t, pc.AddProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	listed, err := store.List(c.Request().Context())
	require.NoError(t, err)
	last := listed[len(listed)-1]
	require.NotNil(t, last.Land)
	assert.Nil(t, last.Building)
	assert.Equal(t, "İmarlı", last.Land.ZoningStatus)
}

func TestGetMalformedIDPersistentMode(t *testing.T) {
	e := echo.New()
	// persistent-mode id validation runs before the collection is used
	pc := NewPropertyController(storage.NewMongoPropertyStore(nil), images.NewChain())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/single/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-valid-id")

	require.NoError(t, pc.GetProperty(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decode(t, rec)
	assert.Equal(t, false, payload["success"])
	assert.Contains(t, payload["message"], "Geçersiz")
}

func TestUpdateWithoutImagesRetainsSet(t *testing.T) {
	e := echo.New()
	pc, store := newPropertyController(t)

	c, rec := multipartContext(t, e, villaForm)
	require.NoError(t, pc.AddProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	listed, err := store.List(c.Request().Context())
	require.NoError(t, err)
	id := listed[len(listed)-1].ID

	form := map[string]string{"id": id}
	for k, v := range villaForm {
		form[k] = v
	}
	form["title"] = "Güncel Villa"

	c, rec = multipartContext(t, e, form)
	require.NoError(t, pc.UpdateProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := store.Get(c.Request().Context(), id)
	require.NoError(t, err)
	assert.Equal(t, "Güncel Villa", got.Title)
	assert.Equal(t, images.PlaceholderURLs, got.Images, "no new files keeps the stored image set")
}

func TestRemoveThenGet(t *testing.T) {
	e := echo.New()
	pc, store := newPropertyController(t)

	c, rec := multipartContext(t, e, villaForm)
	require.NoError(t, pc.AddProperty(c))
	require.Equal(t, http.StatusOK, rec.Code)

	listed, err := store.List(c.Request().Context())
	require.NoError(t, err)
	id := listed[len(listed)-1].ID

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"`+id+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, pc.RemoveProperty(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	getCtx := e.NewContext(getReq, getRec)
	getCtx.SetPath("/api/products/single/:id")
	getCtx.SetParamNames("id")
	getCtx.SetParamValues(id)
	require.NoError(t, pc.GetProperty(getCtx))
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}
