package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
)

// ReservationHandler handles stock reservations (protected).
type ReservationHandler struct {
	uc *inventory.ReservationUseCase
}

// NewReservationHandler builds the handler.
func NewReservationHandler(uc *inventory.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// Reserve godoc
// @Summary      Reserve available stock
// @Description  Places a soft hold against available quantity. Refused with a
//
//	structured 409 when availability is insufficient.
//
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "item_id, warehouse_id, reserved_quantity"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ShortageResponse
// @Router       /api/inventory/reservations [post]
func (h *ReservationHandler) Reserve(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	res, err := h.uc.Reserve(c.Context(), inventory.ReserveInput{
		TenantID:        GetTenantID(c),
		UserID:          GetUserID(c),
		ItemID:          in.ItemID,
		WarehouseID:     in.WarehouseID,
		Quantity:        in.ReservedQty,
		ReferenceType:   in.ReferenceType,
		ReferenceID:     in.ReferenceID,
		ReferenceNumber: in.ReferenceNumber,
		ExpiresAt:       in.ExpiresAt,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toReservationResponse(res))
}

// Release godoc
// @Summary      Release a reservation
// @Description  Returns the held quantity to available stock. Releasing an
//
//	already-released reservation is a 409, never a second decrement.
//
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Reservation ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/reservations/{id}/release [put]
func (h *ReservationHandler) Release(c *fiber.Ctx) error {
	if err := h.uc.Release(c.Context(), GetTenantID(c), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "reservation released"})
}
