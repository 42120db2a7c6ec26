package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dermtrack/skincare-system/internal/api/metrics"
	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// DietHandler handles diet log endpoints.
type DietHandler struct {
	service ports.DietService
}

func NewDietHandler(service ports.DietService) *DietHandler {
	return &DietHandler{service: service}
}

// List handles GET /diet-log. Returns the caller's logs, newest day first.
//
// @Summary      List the caller's diet logs
// @Tags         diet-logs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.DietLog
// @Router       /diet-log [get]
func (h *DietHandler) List(c echo.Context) error {
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

// Create handles POST /diet-log. At most one log per calendar day.
//
// @Summary      Create a diet log for a day
// @Tags         diet-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDietLogRequest  true  "Diet log fields"
// @Success      201   {object}  domain.DietLog
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /diet-log [post]
func (h *DietHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createDietLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Create(c.Request().Context(), userID, ports.DietLogInput{
		Date:        req.Date,
		Meals:       req.Meals,
		Snacks:      req.Snacks,
		WaterIntake: req.WaterIntake,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDietLogExists) {
			metrics.DietConflictsTotal.Inc()
		}
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("diet_log").Inc()
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /diet-log/:logId.
//
// @Summary      Update a diet log
// @Tags         diet-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        logId  path      string                true  "Diet log id"
// @Param        body   body      updateDietLogRequest  true  "Diet log fields"
// @Success      200    {object}  domain.DietLog
// @Failure      404    {object}  errorResponse
// @Router       /diet-log/{logId} [put]
func (h *DietHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateDietLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.Update(c.Request().Context(), userID, c.Param("logId"), ports.DietLogInput{
		Meals:       req.Meals,
		Snacks:      req.Snacks,
		WaterIntake: req.WaterIntake,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /diet-log/:logId.
//
// @Summary      Delete a diet log
// @Tags         diet-logs
// @Produce      json
// @Security     BearerAuth
// @Param        logId  path  string  true  "Diet log id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /diet-log/{logId} [delete]
func (h *DietHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("logId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
