package entity

import "time"

// Warehouse is a physical or logical storage location (multi-warehouse).
type Warehouse struct {
	ID            string
	TenantID      string
	WarehouseCode string
	WarehouseName string
	Location      string
	PlantCode     string
	ManagerID     string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
