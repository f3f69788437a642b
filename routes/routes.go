package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/aykutolcay94-gif/buildestate/handlers"
	"github.com/aykutolcay94-gif/buildestate/middleware"
)

type Controllers struct {
	Property    *handlers.PropertyController
	User        *handlers.UserController
	Appointment *handlers.AppointmentController
	Admin       *handlers.AdminController
	Form        *handlers.FormController
}

func RegisterRoutes(e *echo.Echo, c Controllers) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")

	// auth
	api.POST("/login", c.User.Login)
	api.POST("/register", c.User.Register)
	api.POST("/admin", c.User.AdminLogin)
	api.POST("/forgot-password", c.User.ForgotPassword)
	api.POST("/reset/:token", c.User.ResetPassword)
	api.GET("/logout", c.User.Logout)
	api.GET("/me", c.User.Me, middleware.JWTMiddleware())

	// listings; writes are dashboard-only
	products := api.Group("/products")
	products.GET("/list", c.Property.ListProperties)
	products.GET("/single/:id", c.Property.GetProperty)
	products.POST("/add", c.Property.AddProperty, middleware.JWTMiddleware(), middleware.AdminOnly())
	products.POST("/update", c.Property.UpdateProperty, middleware.JWTMiddleware(), middleware.AdminOnly())
	products.POST("/remove", c.Property.RemoveProperty, middleware.JWTMiddleware(), middleware.AdminOnly())

	// appointments
	appointments := api.Group("/appointments", middleware.JWTMiddleware())
	appointments.POST("/schedule", c.Appointment.Schedule)
	appointments.GET("/user", c.Appointment.UserAppointments)
	appointments.GET("/all", c.Appointment.AllAppointments, middleware.AdminOnly())
	appointments.PUT("/status", c.Appointment.UpdateStatus, middleware.AdminOnly())
	appointments.PUT("/update-meeting", c.Appointment.UpdateMeetingLink, middleware.AdminOnly())

	// admin dashboard
	api.GET("/admin/stats", c.Admin.Stats, middleware.JWTMiddleware(), middleware.AdminOnly())

	// contact form
	api.POST("/forms/submit", c.Form.Submit)
}
