package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/email"
	"github.com/aykutolcay94-gif/buildestate/handlers"
	"github.com/aykutolcay94-gif/buildestate/images"
	"github.com/aykutolcay94-gif/buildestate/middleware"
	"github.com/aykutolcay94-gif/buildestate/routes"
	"github.com/aykutolcay94-gif/buildestate/storage"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

func collectionName(envKey, fallback string) string {
	if name := os.Getenv(envKey); name != "" {
		return name
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	config.InitLogger()
	defer config.SyncLogger()

	connected := config.ConnectDB()
	utils.InitRedis()

	// The storage backend is chosen once here; handlers never check
	// connection state again.
	var propertyStore storage.PropertyStore
	var appointmentStore storage.AppointmentStore
	if connected {
		propertyStore = storage.NewMongoPropertyStore(
			config.GetCollection(collectionName("MONGODB_COLLECTION_PROPERTIES", "properties")))
		appointmentStore = storage.NewMongoAppointmentStore(
			config.GetCollection(collectionName("MONGODB_COLLECTION_APPOINTMENTS", "appointments")),
			config.GetCollection(collectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
			config.GetCollection(collectionName("MONGODB_COLLECTION_USERS", "users")))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			config.DisconnectDB(ctx)
		}()
	} else {
		propertyStore = storage.NewMemoryPropertyStore()
		config.SLog.Info("Demo modu: ilanlar geçici bellekte tutulacak")
	}

	// Tier 1 drops out of the chain when the asset host is not configured.
	localUploader := images.NewLocalDiskUploader()
	var chain *images.Chain
	if remote := images.NewImageKitUploaderFromEnv(); remote != nil {
		chain = images.NewChain(remote, localUploader)
	} else {
		config.SLog.Info("ImageKit yapılandırılmadı, görseller yerel diske kaydedilecek")
		chain = images.NewChain(localUploader)
	}

	mailer := email.NewSMTPMailerFromEnv()

	controllers := routes.Controllers{
		Property: handlers.NewPropertyController(propertyStore, chain),
		User: handlers.NewUserController(
			config.GetCollection(collectionName("MONGODB_COLLECTION_USERS", "users")), mailer),
		Appointment: handlers.NewAppointmentController(appointmentStore, mailer),
		Admin: handlers.NewAdminController(propertyStore, appointmentStore,
			config.GetCollection(collectionName("MONGODB_COLLECTION_USERS", "users"))),
		Form: handlers.NewFormController(
			config.GetCollection(collectionName("MONGODB_COLLECTION_FORMS", "forms"))),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.ViewTracker())

	e.Static("/uploads", localUploader.Dir)
	routes.RegisterRoutes(e, controllers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	config.SLog.Infof("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
