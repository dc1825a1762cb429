package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"place-forecast/internal/geocode"
	"place-forecast/internal/mcpclient"
	"place-forecast/internal/services/forecast"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: place"`
	Stage string `json:"stage,omitempty" example:"geocode"`
}

// handleForecastCall resolves ?place= into a forecast. Each request is an
// independent orchestration run; runs share no mutable state.
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	place := strings.TrimSpace(c.Query("place"))
	if place == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: place",
		})
	}

	result, err := r.service.ByPlace(c.Context(), place)
	if err != nil {
		r.l.Error(err, map[string]any{"place": place})
		return r.errorResponse(c, err)
	}

	return c.JSON(result)
}

// errorResponse maps the pipeline error taxonomy onto HTTP statuses:
// caller mistakes are 400, upstream failures are 502, everything else 500.
func (r *routes) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var invalidInput *forecast.InvalidInputError
	var connErr *mcpclient.ConnectionError
	var toolErr *mcpclient.ToolNotFoundError
	var remoteErr *mcpclient.RemoteInvocationError
	var transportErr *mcpclient.TransportError
	var parseErr *geocode.ParseError

	switch {
	case errors.As(err, &invalidInput):
		status = fiber.StatusBadRequest
	case errors.As(err, &connErr),
		errors.As(err, &toolErr),
		errors.As(err, &remoteErr),
		errors.As(err, &transportErr),
		errors.As(err, &parseErr):
		status = fiber.StatusBadGateway
	}

	resp := ErrorResponse{Error: err.Error()}

	var stageErr *forecast.StageError
	if errors.As(err, &stageErr) {
		resp.Stage = string(stageErr.Stage)
	}

	return c.Status(status).JSON(resp)
}
