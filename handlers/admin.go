package handlers

import (
	"context"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/models"
	"github.com/aykutolcay94-gif/buildestate/storage"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

type AdminController struct {
	properties   storage.PropertyStore
	appointments storage.AppointmentStore
	users        *mongo.Collection
}

func NewAdminController(properties storage.PropertyStore, appointments storage.AppointmentStore, users *mongo.Collection) *AdminController {
	return &AdminController{properties: properties, appointments: appointments, users: users}
}

type activityEntry struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Icon      string    `json:"icon"`
}

type viewsData struct {
	Labels   []string       `json:"labels"`
	Datasets []viewsDataset `json:"datasets"`
}

type viewsDataset struct {
	Label           string  `json:"label"`
	Data            []int64 `json:"data"`
	BorderColor     string  `json:"borderColor"`
	BackgroundColor string  `json:"backgroundColor"`
	Tension         float64 `json:"tension"`
	Fill            bool    `json:"fill"`
}

func newViewsData(labels []string, data []int64) viewsData {
	return viewsData{
		Labels: labels,
		Datasets: []viewsDataset{{
			Label:           "Property Views",
			Data:            data,
			BorderColor:     "rgb(75, 192, 192)",
			BackgroundColor: "rgba(75, 192, 192, 0.2)",
			Tension:         0.4,
			Fill:            true,
		}},
	}
}

// Stats serves the dashboard overview. Without a database it answers with
// fixed demo numbers instead of failing, same as every listing read.
func (ac *AdminController) Stats(c echo.Context) error {
	if ac.users == nil || ac.appointments == nil {
		return ok(c, http.StatusOK, echo.Map{"stats": demoStats()})
	}
	ctx := c.Request().Context()

	properties, err := ac.properties.List(ctx)
	if err != nil {
		config.Log.Error("istatistikler toplanamadı", zap.Error(err))
		return ok(c, http.StatusOK, echo.Map{"stats": demoStats()})
	}
	totalUsers, err := ac.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		config.Log.Error("istatistikler toplanamadı", zap.Error(err))
		return ok(c, http.StatusOK, echo.Map{"stats": demoStats()})
	}
	pendingAppointments, err := ac.appointments.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		config.Log.Error("istatistikler toplanamadı", zap.Error(err))
		return ok(c, http.StatusOK, echo.Map{"stats": demoStats()})
	}

	labels, counts, err := utils.ViewSeries(ctx, 30)
	if err != nil {
		// analytics are best effort; the chart renders flat instead
		config.Log.Warn("görüntülenme serisi okunamadı", zap.Error(err))
		labels, counts = utils.EmptyViewSeries(30)
	}

	return ok(c, http.StatusOK, echo.Map{"stats": echo.Map{
		"totalProperties":     len(properties),
		"activeListings":      len(properties),
		"totalUsers":          totalUsers,
		"pendingAppointments": pendingAppointments,
		"recentActivity":      ac.recentActivity(ctx, properties),
		"viewsData":           newViewsData(labels, counts),
	}})
}

// recentActivity merges the latest listings and appointments into one
// timestamp-sorted feed.
func (ac *AdminController) recentActivity(ctx context.Context, properties []models.Property) []activityEntry {
	entries := make([]activityEntry, 0, 10)

	sorted := make([]models.Property, len(properties))
	copy(sorted, properties)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	for _, p := range sorted {
		entries = append(entries, activityEntry{
			Type:      "property",
			Title:     "New property: " + p.Title,
			Timestamp: p.CreatedAt,
			Icon:      "🏠",
		})
	}

	appointments, err := ac.appointments.All(ctx)
	if err != nil {
		config.Log.Warn("randevu etkinliği alınamadı", zap.Error(err))
	} else {
		if len(appointments) > 5 {
			appointments = appointments[:5]
		}
		for _, a := range appointments {
			entries = append(entries, activityEntry{
				Type:      "appointment",
				Title:     "Appointment for " + a.Property.Title,
				Subtitle:  "by " + a.User.Name,
				Timestamp: a.CreatedAt,
				Icon:      "📅",
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries
}

func demoStats() echo.Map {
	now := time.Now()
	activity := []activityEntry{
		{Type: "property", Title: "New property: Luxury Villa in Beşiktaş", Timestamp: now.Add(-2 * time.Hour), Icon: "🏠"},
		{Type: "appointment", Title: "Appointment for Modern Apartment in Kadıköy", Subtitle: "by Ahmet Yılmaz", Timestamp: now.Add(-4 * time.Hour), Icon: "📅"},
		{Type: "property", Title: "New property: Office Space in Levent", Timestamp: now.Add(-6 * time.Hour), Icon: "🏠"},
		{Type: "appointment", Title: "Appointment for Penthouse in Nişantaşı", Subtitle: "by Zeynep Kaya", Timestamp: now.Add(-8 * time.Hour), Icon: "📅"},
		{Type: "property", Title: "New property: Family House in Üsküdar", Timestamp: now.Add(-12 * time.Hour), Icon: "🏠"},
	}

	labels := make([]string, 0, 31)
	data := make([]int64, 0, 31)
	for i := 30; i >= 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i).Format("2006-01-02"))
		data = append(data, int64(rand.Intn(40)+10))
	}

	return echo.Map{
		"totalProperties":     25,
		"activeListings":      18,
		"totalUsers":          156,
		"pendingAppointments": 8,
		"recentActivity":      activity,
		"viewsData":           newViewsData(labels, data),
	}
}
