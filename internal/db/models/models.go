// Package models contains database model definitions.
//
// Column and JSON names follow the hosted database schema, so the same
// structs decode PostgREST responses and map gorm rows.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection names.
const (
	CollectionDatasets       = "datasets"
	CollectionBundles        = "bundles"
	CollectionBundleDatasets = "bundle_datasets"
)

// Base holds the columns every catalog table shares.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a random id when none is set.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	return nil
}
