package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dermtrack/skincare-system/internal/api/metrics"
	"github.com/dermtrack/skincare-system/internal/core/domain"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// ProfileHandler handles the one-per-user profile resource.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// pathUser resolves the :userId path segment against the verified identity.
// The path id must match the token's user; anyone else's profile is simply
// not found, so the route leaks nothing about other accounts.
func pathUser(c echo.Context) (string, error) {
	userID, err := ctxUserID(c)
	if err != nil {
		return "", err
	}
	if c.Param("userId") != userID {
		return "", domain.ErrProfileNotFound
	}
	return userID, nil
}

// Get handles GET /profile/:userId.
//
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  errorResponse
// @Router       /profile/{userId} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := pathUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Save handles POST /profile/:userId as a create-or-update.
//
// @Summary      Save the caller's profile (upsert)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Router       /profile/{userId} [post]
func (h *ProfileHandler) Save(c echo.Context) error {
	userID, err := pathUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.service.Save(c.Request().Context(), userID, ports.ProfileInput{
		SkinType:   req.SkinType,
		Allergies:  req.Allergies,
		DOB:        req.DOB,
		Gender:     req.Gender,
		Conditions: req.Conditions,
	})
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("profile").Inc()
	return c.JSON(http.StatusOK, profile)
}
