package entity

import "time"

// User roles.
const (
	RolePlantAdmin = "Plant Admin"
	RoleASM        = "ASM"
	RoleExecutive  = "Executive"
	RoleStoreAdmin = "Store Admin"
	RoleUser       = "User"
)

// User is an operator account. StoreID is set for store-admin users only.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	StoreID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
