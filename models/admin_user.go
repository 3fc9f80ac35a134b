package models

import "gorm.io/gorm"

// AdminUser can log in to the read-only review endpoints. Accounts are
// provisioned out of band (seed script or SQL), never through the API.
type AdminUser struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}
