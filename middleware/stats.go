package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aykutolcay94-gif/buildestate/config"
	"github.com/aykutolcay94-gif/buildestate/utils"
)

// ViewTracker records successful single-listing reads into the per-day
// redis counters behind the admin views chart. Counting failures never
// affect the response.
func ViewTracker() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				return err
			}
			if c.Request().Method == http.MethodGet &&
				strings.HasPrefix(c.Path(), "/api/products/single/") &&
				c.Response().Status == http.StatusOK {
				if trackErr := utils.IncrementDailyViews(c.Request().Context()); trackErr != nil {
					config.Log.Warn("görüntülenme sayacı güncellenemedi", zap.Error(trackErr))
				}
			}
			return nil
		}
	}
}
