package dto

import "time"

// CreateWarehouseRequest is the body for POST /api/warehouses.
type CreateWarehouseRequest struct {
	WarehouseCode string `json:"warehouse_code"`
	WarehouseName string `json:"warehouse_name"`
	Location      string `json:"location,omitempty"`
	PlantCode     string `json:"plant_code,omitempty"`
	ManagerID     string `json:"manager_id,omitempty"`
}

// UpdateWarehouseRequest is the body for PUT /api/warehouses/:id.
type UpdateWarehouseRequest struct {
	WarehouseName *string `json:"warehouse_name,omitempty"`
	Location      *string `json:"location,omitempty"`
	ManagerID     *string `json:"manager_id,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// WarehouseResponse mirrors a warehouse.
type WarehouseResponse struct {
	ID            string    `json:"id"`
	TenantID      string    `json:"tenant_id"`
	WarehouseCode string    `json:"warehouse_code"`
	WarehouseName string    `json:"warehouse_name"`
	Location      string    `json:"location,omitempty"`
	PlantCode     string    `json:"plant_code,omitempty"`
	ManagerID     string    `json:"manager_id,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
