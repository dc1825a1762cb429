package http

import (
	"github.com/gofiber/fiber/v2"

	"place-forecast/internal/services/forecast"
	"place-forecast/pkg/logger"
)

type routes struct {
	service *forecast.Service
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	forecastService *forecast.Service,
	l *logger.Logger,
) {
	r := &routes{
		service: forecastService,
		l:       l,
	}

	app.Get("/forecast", r.handleForecastCall)
}
