package models

import (
	"github.com/google/uuid"
)

// Bundle groups several datasets at a discounted price.
// DiscountPercentage is display data and is never derived from the prices.
type Bundle struct {
	Base

	Slug               string `gorm:"uniqueIndex" json:"slug"`
	Title              string `gorm:"not null" json:"title"`
	Description        string `json:"description"`
	PriceMXN           int    `gorm:"column:price_mxn;not null" json:"price_mxn"`
	OriginalPriceMXN   int    `gorm:"column:original_price_mxn" json:"original_price_mxn"`
	DiscountPercentage int    `gorm:"column:discount_percentage" json:"discount_percentage"`
	IdealFor           string `gorm:"column:ideal_for" json:"ideal_for"`
	IsPublished        bool   `gorm:"column:is_published;index" json:"is_published"`

	BundleDatasets []BundleDataset `gorm:"foreignKey:BundleID" json:"bundle_datasets,omitempty"`
}

// TableName implements gorm's tabler.
func (Bundle) TableName() string {
	return CollectionBundles
}

// IncludedDatasets returns the joined datasets in join order,
// skipping bridge rows whose dataset could not be joined.
func (b Bundle) IncludedDatasets() []Dataset {
	out := make([]Dataset, 0, len(b.BundleDatasets))

	for _, bd := range b.BundleDatasets {
		if bd.Dataset == nil {
			continue
		}

		out = append(out, *bd.Dataset)
	}

	return out
}

// BundleDataset is the bridge row between a bundle and a dataset.
type BundleDataset struct {
	Base

	BundleID  uuid.UUID `gorm:"type:uuid;index;not null" json:"bundle_id"`
	DatasetID uuid.UUID `gorm:"type:uuid;index;not null" json:"dataset_id"`

	// Dataset is nil when the referenced row is gone or hidden from the caller.
	Dataset *Dataset `gorm:"foreignKey:DatasetID" json:"datasets"`
}

// TableName implements gorm's tabler.
func (BundleDataset) TableName() string {
	return CollectionBundleDatasets
}
