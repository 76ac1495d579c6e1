package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

// InventoryHandler handles stock movements and stock level queries (protected).
type InventoryHandler struct {
	recorder *inventory.RecordMovementUseCase
	queries  *inventory.StockQueryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(recorder *inventory.RecordMovementUseCase, queries *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{recorder: recorder, queries: queries}
}

// RecordMovement godoc
// @Summary      Record a stock movement
// @Description  Appends one entry to the stock ledger and adjusts the stock
//
//	projection for both touched warehouse sides, atomically.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "movement_type, item_id, quantity, from/to warehouse"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	mv, err := h.recorder.RecordMovement(c.Context(), inventory.MovementInput{
		TenantID:        GetTenantID(c),
		UserID:          GetUserID(c),
		MovementType:    in.MovementType,
		ItemID:          in.ItemID,
		UID:             in.UID,
		FromWarehouseID: in.FromWarehouseID,
		FromLocationID:  in.FromLocationID,
		ToWarehouseID:   in.ToWarehouseID,
		ToLocationID:    in.ToLocationID,
		Quantity:        in.Quantity,
		Category:        in.Category,
		ReferenceType:   in.ReferenceType,
		ReferenceID:     in.ReferenceID,
		ReferenceNumber: in.ReferenceNumber,
		BatchNumber:     in.BatchNumber,
		Notes:           in.Notes,
		MovementDate:    in.MovementDate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mv))
}

// ListMovements godoc
// @Summary      List stock movements
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        movement_type  query  string  false  "Filter by movement type"
// @Param        item_id        query  string  false  "Filter by item"
// @Param        uid            query  string  false  "Filter by serialized unit"
// @Param        from_date      query  string  false  "RFC3339 lower bound"
// @Param        to_date        query  string  false  "RFC3339 upper bound"
// @Param        limit          query  int     false  "Page size"
// @Param        offset         query  int     false  "Page offset"
// @Success      200  {array}   dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()

	filter := repository.MovementFilter{
		MovementType: c.Query("movement_type"),
		ItemID:       c.Query("item_id"),
		UID:          c.Query("uid"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	if v := c.Query("from_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from_date must be RFC3339"})
		}
		filter.FromDate = &t
	}
	if v := c.Query("to_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to_date must be RFC3339"})
		}
		filter.ToDate = &t
	}

	movements, err := h.queries.Movements(c.Context(), GetTenantID(c), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

// ListStockLevels godoc
// @Summary      List stock levels
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filter by warehouse"
// @Param        item_id       query  string  false  "Filter by item"
// @Param        category      query  string  false  "Filter by stock category"
// @Param        low_stock     query  bool    false  "Only rows at or below the reorder level"
// @Param        limit         query  int     false  "Page size"
// @Param        offset        query  int     false  "Page offset"
// @Success      200  {array}   dto.StockLevelResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStockLevels(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()

	levels, err := h.queries.StockLevels(c.Context(), GetTenantID(c), repository.StockLevelFilter{
		WarehouseID: c.Query("warehouse_id"),
		ItemID:      c.Query("item_id"),
		Category:    c.Query("category"),
		LowStock:    c.QueryBool("low_stock"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.StockLevelResponse, 0, len(levels))
	for _, s := range levels {
		out = append(out, toStockLevelResponse(s))
	}
	return c.JSON(out)
}
