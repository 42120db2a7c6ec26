package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dermtrack/skincare-system/internal/api/metrics"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// WellBeingHandler handles well-being log endpoints.
type WellBeingHandler struct {
	service ports.WellBeingService
}

func NewWellBeingHandler(service ports.WellBeingService) *WellBeingHandler {
	return &WellBeingHandler{service: service}
}

// List handles GET /wellbeing-log. Logs come back most recently created first.
//
// @Summary      List the caller's well-being logs
// @Tags         wellbeing-logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.WellBeingLog
// @Router       /wellbeing-log [get]
func (h *WellBeingHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	logs, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// Create handles POST /wellbeing-log. Several entries per day are allowed.
//
// @Summary      Create a well-being log
// @Tags         wellbeing-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wellBeingRequest  true  "Well-being fields"
// @Success      201   {object}  domain.WellBeingLog
// @Failure      400   {object}  errorResponse
// @Router       /wellbeing-log [post]
func (h *WellBeingHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req wellBeingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), userID, toWellBeingInput(req))
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("wellbeing_log").Inc()
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /wellbeing-log/:logId.
//
// @Summary      Update a well-being log
// @Tags         wellbeing-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        logId  path      string            true  "Well-being log id"
// @Param        body   body      wellBeingRequest  true  "Well-being fields"
// @Success      200    {object}  domain.WellBeingLog
// @Failure      404    {object}  errorResponse
// @Router       /wellbeing-log/{logId} [put]
func (h *WellBeingHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req wellBeingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), userID, c.Param("logId"), toWellBeingInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /wellbeing-log/:logId.
//
// @Summary      Delete a well-being log
// @Tags         wellbeing-logs
// @Produce      json
// @Security     BearerAuth
// @Param        logId  path  string  true  "Well-being log id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /wellbeing-log/{logId} [delete]
func (h *WellBeingHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("logId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toWellBeingInput(req wellBeingRequest) ports.WellBeingInput {
	return ports.WellBeingInput{
		Date:        req.Date,
		Mood:        req.Mood,
		StressLevel: req.StressLevel,
		StressScale: req.StressScale,
		SleepHours:  req.SleepHours,
	}
}
