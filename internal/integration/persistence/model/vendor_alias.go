// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorAliasModel represents the vendor_aliases table: a curated mapping from a
// normalized vendor string to its canonical form (e.g. "AMZN MKTP" -> "AMAZON").
type VendorAliasModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Vendor    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Canonical string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the VendorAliasModel.
func (VendorAliasModel) TableName() string {
	return "vendor_aliases"
}
