package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/email"
	"github.com/aykutolcay94-gif/buildestate/models"
	"github.com/aykutolcay94-gif/buildestate/storage"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

type AppointmentController struct {
	store  storage.AppointmentStore
	mailer email.Mailer
}

func NewAppointmentController(store storage.AppointmentStore, mailer email.Mailer) *AppointmentController {
	return &AppointmentController{store: store, mailer: mailer}
}

func (ac *AppointmentController) ready() bool {
	return ac.store != nil
}

// Schedule creates a pending viewing appointment for the caller.
func (ac *AppointmentController) Schedule(c echo.Context) error {
	if !ac.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req models.ScheduleRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz girdi verisi")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz tarih formatı")
	}

	userID, _ := c.Get("user_id").(string)
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "Geçersiz token")
	}

	appointment := models.Appointment{
		PropertyID: req.PropertyID,
		UserID:     oid,
		Date:       date,
		Time:       req.Time,
		Notes:      req.Notes,
	}
	id, err := ac.store.Create(c.Request().Context(), &appointment)
	if err != nil {
		config.Log.Error("randevu oluşturulamadı", zap.Error(err))
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	config.SLog.Infof("Randevu oluşturuldu: %s (ilan %s)", id, req.PropertyID)
	return ok(c, http.StatusOK, echo.Map{
		"message":     "Randevu talebiniz alındı",
		"appointment": appointment,
	})
}

// UserAppointments lists the caller's own appointments.
func (ac *AppointmentController) UserAppointments(c echo.Context) error {
	if !ac.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	userID, _ := c.Get("user_id").(string)
	appointments, err := ac.store.ForUser(c.Request().Context(), userID)
	if err != nil {
		config.Log.Error("randevular getirilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Randevular getirilirken hata oluştu")
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return ok(c, http.StatusOK, echo.Map{"appointments": appointments})
}

// AllAppointments feeds the admin panel: populated records, newest first.
func (ac *AppointmentController) AllAppointments(c echo.Context) error {
	if !ac.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	appointments, err := ac.store.All(c.Request().Context())
	if err != nil {
		config.Log.Error("randevular getirilemedi", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Randevular getirilirken hata oluştu")
	}
	if appointments == nil {
		appointments = []models.AppointmentView{}
	}
	return ok(c, http.StatusOK, echo.Map{"appointments": appointments})
}

// UpdateStatus applies the transition and then notifies the user. The
// status is already persisted by the time the mail goes out, so a send
// failure surfaces as a server error without rolling anything back.
func (ac *AppointmentController) UpdateStatus(c echo.Context) error {
	if !ac.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if !models.IsValidStatus(req.Status) {
		return fail(c, http.StatusBadRequest, "Geçersiz randevu durumu")
	}

	view, err := ac.store.SetStatus(c.Request().Context(), req.AppointmentID, req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return fail(c, http.StatusNotFound, "Randevu bulunamadı")
		}
		config.Log.Error("randevu güncellenemedi", zap.String("id", req.AppointmentID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Randevu güncellenirken hata oluştu")
	}

	if view.User != nil {
		if err := ac.mailer.SendAppointmentStatus(view.User.Email, view); err != nil {
			config.Log.Error("randevu bildirimi gönderilemedi", zap.String("id", req.AppointmentID), zap.Error(err))
			return fail(c, http.StatusInternalServerError, "Randevu güncellenirken hata oluştu")
		}
	}

	return ok(c, http.StatusOK, echo.Map{
		"message":     statusMessage(req.Status),
		"appointment": view,
	})
}

func statusMessage(status string) string {
	switch status {
	case models.StatusConfirmed:
		return "Randevu başarıyla onaylandı"
	case models.StatusCancelled:
		return "Randevu başarıyla iptal edildi"
	default:
		return "Randevu başarıyla güncellendi"
	}
}

// UpdateMeetingLink sets the link regardless of status; only confirmed
// appointments surface it in the panel.
func (ac *AppointmentController) UpdateMeetingLink(c echo.Context) error {
	if !ac.ready() {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	var req models.MeetingLinkRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Geçersiz görüşme bağlantısı")
	}

	err := ac.store.SetMeetingLink(c.Request().Context(), req.AppointmentID, req.MeetingLink)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidID) {
			return fail(c, http.StatusNotFound, "Randevu bulunamadı")
		}
		config.Log.Error("görüşme bağlantısı güncellenemedi", zap.String("id", req.AppointmentID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Randevu güncellenirken hata oluştu")
	}

	return ok(c, http.StatusOK, echo.Map{"message": "Görüşme bağlantısı güncellendi"})
}
