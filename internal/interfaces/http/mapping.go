package http

import (
	"github.com/qutubkothari/sak-erp-inventory/internal/application/dto"
	"github.com/qutubkothari/sak-erp-inventory/internal/domain/entity"
)

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		MovementNumber:  m.MovementNumber,
		MovementType:    m.MovementType,
		ItemID:          m.ItemID,
		UID:             m.UID,
		FromWarehouseID: m.FromWarehouseID,
		FromLocationID:  m.FromLocationID,
		ToWarehouseID:   m.ToWarehouseID,
		ToLocationID:    m.ToLocationID,
		Quantity:        m.Quantity,
		ReferenceType:   m.ReferenceType,
		ReferenceID:     m.ReferenceID,
		ReferenceNumber: m.ReferenceNumber,
		BatchNumber:     m.BatchNumber,
		Notes:           m.Notes,
		MovedBy:         m.MovedBy,
		MovementDate:    m.MovementDate,
		CreatedAt:       m.CreatedAt,
	}
}

func toStockLevelResponse(s *entity.StockLevel) dto.StockLevelResponse {
	return dto.StockLevelResponse{
		ID:                s.ID,
		ItemID:            s.ItemID,
		WarehouseID:       s.WarehouseID,
		LocationID:        s.LocationID,
		Category:          s.Category,
		TotalQuantity:     s.TotalQuantity,
		ReservedQuantity:  s.ReservedQuantity,
		AvailableQuantity: s.AvailableQuantity(),
		LastMovementDate:  s.LastMovementDate,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toReservationResponse(r *entity.StockReservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:               r.ID,
		ItemID:           r.ItemID,
		WarehouseID:      r.WarehouseID,
		ReservedQuantity: r.ReservedQuantity,
		ReferenceType:    r.ReferenceType,
		ReferenceID:      r.ReferenceID,
		ReferenceNumber:  r.ReferenceNumber,
		ReservedBy:       r.ReservedBy,
		ExpiresAt:        r.ExpiresAt,
		Released:         r.Released,
		ReleasedAt:       r.ReleasedAt,
		CreatedAt:        r.CreatedAt,
	}
}

func toAlertResponse(a *entity.InventoryAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:                a.ID,
		AlertType:         a.AlertType,
		ItemID:            a.ItemID,
		WarehouseID:       a.WarehouseID,
		JobOrderNumber:    a.JobOrderNumber,
		CurrentQuantity:   a.CurrentQuantity,
		ThresholdQuantity: a.ThresholdQuantity,
		Message:           a.Message,
		Severity:          a.Severity,
		Acknowledged:      a.Acknowledged,
		AcknowledgedBy:    a.AcknowledgedBy,
		AcknowledgedAt:    a.AcknowledgedAt,
		CreatedAt:         a.CreatedAt,
	}
}

func toDemoResponse(d *entity.DemoLoan) dto.DemoResponse {
	return dto.DemoResponse{
		ID:                 d.ID,
		DemoID:             d.DemoID,
		UID:                d.UID,
		ItemID:             d.ItemID,
		IssuedToStaffID:    d.IssuedToStaffID,
		CustomerName:       d.CustomerName,
		CustomerContact:    d.CustomerContact,
		IssueDate:          d.IssueDate,
		ExpectedReturnDate: d.ExpectedReturnDate,
		WarehouseID:        d.WarehouseID,
		Status:             d.Status,
		ActualReturnDate:   d.ActualReturnDate,
		InspectionNotes:    d.InspectionNotes,
		ConvertedToSale:    d.ConvertedToSale,
		SalesOrderID:       d.SalesOrderID,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
