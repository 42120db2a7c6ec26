package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dermtrack/skincare-system/internal/api/metrics"
	"github.com/dermtrack/skincare-system/internal/core/ports"
)

// ProductHandler handles products and their nested usage logs.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /product.
//
// @Summary      List the caller's products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /product.
//
// @Summary      Add a product to the caller's regimen
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), userID, toProductInput(req))
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("product").Inc()
	return c.JSON(http.StatusCreated, product)
}

// Get handles GET /product/:id.
//
// @Summary      Get one product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /product/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product fields"
// @Success      200   {object}  domain.Product
// @Failure      404   {object}  errorResponse
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toProductInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /product/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddUsage handles POST /product/:id/log.
//
// @Summary      Record a usage of a product
// @Tags         usage-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      createUsageLogRequest  true  "Usage log fields"
// @Success      201   {object}  domain.UsageLog
// @Failure      404   {object}  errorResponse
// @Router       /product/{id}/log [post]
func (h *ProductHandler) AddUsage(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createUsageLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	usage, err := h.service.AddUsage(c.Request().Context(), userID, c.Param("id"), ports.UsageLogInput{
		DateUsed:    req.DateUsed,
		Notes:       req.Notes,
		SideEffects: req.SideEffects,
	})
	if err != nil {
		return err
	}

	metrics.EntriesCreatedTotal.WithLabelValues("usage_log").Inc()
	return c.JSON(http.StatusCreated, usage)
}

// ListUsage handles GET /product/:id/logs. Logs come back newest first.
//
// @Summary      List usage logs for a product
// @Tags         usage-logs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Product id"
// @Success      200  {array}  domain.UsageLog
// @Failure      404  {object}  errorResponse
// @Router       /product/{id}/logs [get]
func (h *ProductHandler) ListUsage(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	logs, err := h.service.ListUsage(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// GetUsage handles GET /product/:id/logs/:logId.
//
// @Summary      Get one usage log
// @Tags         usage-logs
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Product id"
// @Param        logId  path      string  true  "Usage log id"
// @Success      200    {object}  domain.UsageLog
// @Failure      404    {object}  errorResponse
// @Router       /product/{id}/logs/{logId} [get]
func (h *ProductHandler) GetUsage(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	usage, err := h.service.GetUsage(c.Request().Context(), userID, c.Param("id"), c.Param("logId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usage)
}

// UpdateUsage handles PUT /product/:id/logs/:logId.
//
// @Summary      Update a usage log
// @Tags         usage-logs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                 true  "Product id"
// @Param        logId  path      string                 true  "Usage log id"
// @Param        body   body      updateUsageLogRequest  true  "Usage log fields"
// @Success      200    {object}  domain.UsageLog
// @Failure      404    {object}  errorResponse
// @Router       /product/{id}/logs/{logId} [put]
func (h *ProductHandler) UpdateUsage(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateUsageLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	usage, err := h.service.UpdateUsage(c.Request().Context(), userID, c.Param("id"), c.Param("logId"), ports.UsageLogInput{
		DateUsed:    req.DateUsed,
		Notes:       req.Notes,
		SideEffects: req.SideEffects,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usage)
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:      req.Name,
		Type:      req.Type,
		Frequency: req.Frequency,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}
}
