package handlers

import (
	"github.com/labstack/echo/v4"
)

// Every response carries the {success, message, ...} envelope the frontend
// and admin panel expect, with Turkish user-facing text.
const msgServerError = "Sunucu hatası"

func ok(c echo.Context, status int, payload echo.Map) error {
	payload["success"] = true
	return c.JSON(status, payload)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}
