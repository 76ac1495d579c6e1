package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
)

// AlertHandler handles inventory alerts (protected).
type AlertHandler struct {
	engine *inventory.AlertEngine
}

// NewAlertHandler builds the handler.
func NewAlertHandler(engine *inventory.AlertEngine) *AlertHandler {
	return &AlertHandler{engine: engine}
}

// List godoc
// @Summary      List inventory alerts
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        acknowledged  query  bool  false  "Filter by acknowledged state"
// @Success      200  {array}   dto.AlertResponse
// @Router       /api/inventory/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var acknowledged *bool
	if c.Query("acknowledged") != "" {
		v := c.QueryBool("acknowledged")
		acknowledged = &v
	}
	alerts, err := h.engine.Alerts(c.Context(), GetTenantID(c), acknowledged)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return c.JSON(out)
}

// Acknowledge godoc
// @Summary      Acknowledge an alert
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Alert ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/alerts/{id}/acknowledge [put]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	if err := h.engine.Acknowledge(c.Context(), GetTenantID(c), c.Params("id"), GetUserID(c)); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alert acknowledged"})
}

// Sweep godoc
// @Summary      Run the alert sweep
// @Description  Scans every stock row below its reorder level and every active
//
//	job order, raising missing alerts. Same pass the background
//	ticker runs.
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/inventory/alerts/sweep [post]
func (h *AlertHandler) Sweep(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.engine.CheckAllLowStock(c.Context(), tenantID); err != nil {
		return writeDomainError(c, err)
	}
	if err := h.engine.CheckJobOrderAlerts(c.Context(), tenantID); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alert sweep completed"})
}
