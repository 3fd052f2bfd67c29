package models

// Dataset is a purchasable dataset of the catalog.
type Dataset struct {
	Base

	Slug         string `gorm:"uniqueIndex" json:"slug"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	Category     string `gorm:"index" json:"category"`
	PriceMXN     int    `gorm:"column:price_mxn;not null" json:"price_mxn"`
	RecordsCount int    `gorm:"column:records_count" json:"records_count"`
	IsPublished  bool   `gorm:"column:is_published;index" json:"is_published"`
}

// TableName implements gorm's tabler.
func (Dataset) TableName() string {
	return CollectionDatasets
}
