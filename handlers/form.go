package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/models"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

type FormController struct {
	forms *mongo.Collection
}

func NewFormController(forms *mongo.Collection) *FormController {
	return &FormController{forms: forms}
}

// Submit stores a contact page message.
func (fc *FormController) Submit(c echo.Context) error {
	if fc.forms == nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var form models.ContactForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if err := utils.ValidateStruct(&form); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz girdi verisi")
	}

	form.ID = primitive.NewObjectID()
	form.CreatedAt = time.Now()
	if _, err := fc.forms.InsertOne(c.Request().Context(), form); err != nil {
		config.Log.Error("iletişim formu kaydedilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	return ok(c, http.StatusOK, echo.Map{"message": "Form başarıyla gönderildi"})
}
