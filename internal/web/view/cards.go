package view

import (
	"strconv"

	"github.com/datasetsmx/storefront/internal/brand"
	"github.com/datasetsmx/storefront/internal/db/models"
)

// DatasetCard is the template data of one dataset.
type DatasetCard struct {
	ID          string
	Title       string
	Description string
	Category    string
	Price       string
	Records     string
	BuyLabel    string
}

// BundleCard is the template data of one bundle.
type BundleCard struct {
	ID            string
	Title         string
	Description   string
	IdealFor      string
	Price         string
	OriginalPrice string
	SaveBadge     string
	IncludesLabel string
	Included      []string
	BuyLabel      string
}

// NewDatasetCard builds the card of d.
func NewDatasetCard(d models.Dataset, text brand.Catalog, pricing brand.Pricing) DatasetCard {
	return DatasetCard{
		ID:          d.ID.String(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Price:       pricing.FormatAmount(d.PriceMXN),
		Records:     FormatRecords(d.RecordsCount),
		BuyLabel:    text.BuyDataset,
	}
}

// NewBundleCard builds the card of b. Both prices carry the currency code and
// never the tax suffix. The discount is shown as stored.
func NewBundleCard(b models.Bundle, text brand.Catalog, pricing brand.Pricing) BundleCard {
	included := make([]string, 0, len(b.BundleDatasets))
	for _, d := range b.IncludedDatasets() {
		included = append(included, d.Title)
	}

	return BundleCard{
		ID:            b.ID.String(),
		Title:         b.Title,
		Description:   b.Description,
		IdealFor:      b.IdealFor,
		Price:         pricing.FormatAmount(b.PriceMXN),
		OriginalPrice: pricing.FormatAmount(b.OriginalPriceMXN),
		SaveBadge:     text.SavePrefix + " " + strconv.Itoa(b.DiscountPercentage) + "%",
		IncludesLabel: text.Includes,
		Included:      included,
		BuyLabel:      text.BuyBundle,
	}
}

// DatasetCards builds the cards of ds in order.
func DatasetCards(ds []models.Dataset, text brand.Catalog, pricing brand.Pricing) []DatasetCard {
	out := make([]DatasetCard, 0, len(ds))
	for _, d := range ds {
		out = append(out, NewDatasetCard(d, text, pricing))
	}

	return out
}

// BundleCards builds the cards of bs in order.
func BundleCards(bs []models.Bundle, text brand.Catalog, pricing brand.Pricing) []BundleCard {
	out := make([]BundleCard, 0, len(bs))
	for _, b := range bs {
		out = append(out, NewBundleCard(b, text, pricing))
	}

	return out
}
