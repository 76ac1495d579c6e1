package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/application/inventory"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/repository"
)

// DemoHandler handles the demo loan lifecycle (protected).
type DemoHandler struct {
	uc *inventory.DemoUseCase
}

// NewDemoHandler builds the handler.
func NewDemoHandler(uc *inventory.DemoUseCase) *DemoHandler {
	return &DemoHandler{uc: uc}
}

// Issue godoc
// @Summary      Issue a demo unit
// @Description  Allocates a sequential demo id, creates the loan as ISSUED and
//
//	records the DEMO_ISSUE movement, atomically.
//
// @Tags         demo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueDemoRequest  true  "item_id, warehouse_id, customer_name"
// @Success      201   {object}  dto.DemoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/demo/issue [post]
func (h *DemoHandler) Issue(c *fiber.Ctx) error {
	var in dto.IssueDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	demo, err := h.uc.Issue(c.Context(), inventory.DemoIssueInput{
		TenantID:           GetTenantID(c),
		UserID:             GetUserID(c),
		ItemID:             in.ItemID,
		UID:                in.UID,
		WarehouseID:        in.WarehouseID,
		IssuedToStaffID:    in.IssuedToStaffID,
		CustomerName:       in.CustomerName,
		CustomerContact:    in.CustomerContact,
		IssueDate:          in.IssueDate,
		ExpectedReturnDate: in.ExpectedReturnDate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDemoResponse(demo))
}

// Return godoc
// @Summary      Return a demo unit
// @Description  Only an ISSUED demo can be returned; anything else is a 409.
// @Tags         demo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        demoId  path  string                true  "Demo ID (e.g. DEMO-000045)"
// @Param        body    body  dto.ReturnDemoRequest true  "return_date, inspection_notes"
// @Success      200     {object}  dto.DemoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/inventory/demo/{demoId}/return [put]
func (h *DemoHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	demo, err := h.uc.Return(c.Context(), GetTenantID(c), GetUserID(c), c.Params("demoId"), inventory.DemoReturnInput{
		ReturnDate:      in.ReturnDate,
		InspectionNotes: in.InspectionNotes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toDemoResponse(demo))
}

// ConvertToSale godoc
// @Summary      Convert a demo to a sale
// @Description  The unit stays out of the warehouse; the loan becomes SOLD and
//
//	a DEMO_SOLD movement is recorded against the sales order.
//
// @Tags         demo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        demoId  path  string                 true  "Demo ID"
// @Param        body    body  dto.ConvertDemoRequest true  "sales_order_id"
// @Success      200     {object}  dto.DemoResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/inventory/demo/{demoId}/convert-to-sale [put]
func (h *DemoHandler) ConvertToSale(c *fiber.Ctx) error {
	var in dto.ConvertDemoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.SalesOrderID == "" {
		return writeDomainError(c, domain.ErrInvalidInput)
	}
	demo, err := h.uc.ConvertToSale(c.Context(), GetTenantID(c), GetUserID(c), c.Params("demoId"), in.SalesOrderID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toDemoResponse(demo))
}

// List godoc
// @Summary      List demo loans
// @Tags         demo
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Filter by status (ISSUED, RETURNED, SOLD)"
// @Param        staff_id  query  string  false  "Filter by issuing staff member"
// @Success      200  {array}   dto.DemoResponse
// @Router       /api/inventory/demo [get]
func (h *DemoHandler) List(c *fiber.Ctx) error {
	demos, err := h.uc.List(c.Context(), GetTenantID(c), repository.DemoFilter{
		Status:  c.Query("status"),
		StaffID: c.Query("staff_id"),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.DemoResponse, 0, len(demos))
	for _, d := range demos {
		out = append(out, toDemoResponse(d))
	}
	return c.JSON(out)
}
