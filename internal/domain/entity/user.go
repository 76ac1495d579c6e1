package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin       = "admin"
	RoleStorekeeper = "storekeeper"
	RoleSales       = "sales"
)

// User belongs to a tenant.
type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	Role         string // admin, storekeeper, sales
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
