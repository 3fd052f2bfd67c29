package view

import (
	"html/template"
	"strconv"
	"time"

	"github.com/datasetsmx/storefront/internal/brand"
	"github.com/datasetsmx/storefront/internal/catalog"
	"github.com/datasetsmx/storefront/internal/web/navigation"
)

// BenefitTile is a benefit with its rendered icon.
type BenefitTile struct {
	Icon        template.HTML
	Title       string
	Description string
}

// Footer is the footer copy with the year resolved.
type Footer struct {
	brand.Footer
	BrandName string
	Notice    string // "© 2025 Datasets MX. ..."
}

// Page is the data of the landing page template.
type Page struct {
	Lang         string
	SiteURL      string
	Version      string
	Nav          *navigation.Context
	Identity     brand.Identity
	UI           brand.UI
	Hero         brand.Hero
	Benefits     []BenefitTile
	Catalog      Catalog
	Footer       Footer
	BundlesRoute string
}

// PageInput collects what BuildPage needs.
type PageInput struct {
	Brand        brand.Config
	Snapshot     catalog.Snapshot
	SiteURL      string
	BundlesRoute string
	Now          time.Time
}

// BuildPage assembles the landing page.
func BuildPage(in PageInput) Page {
	b := in.Brand

	benefits := make([]BenefitTile, 0, len(b.Content.Benefits))
	if b.UI.ShowBenefits {
		for _, bf := range b.Content.Benefits {
			benefits = append(benefits, BenefitTile{
				Icon:        BenefitIcon(bf.Icon),
				Title:       bf.Title,
				Description: bf.Description,
			})
		}
	}

	lang := b.Identity.Locale
	if len(lang) > 2 { //nolint:mnd
		lang = lang[:2]
	}

	return Page{
		Lang:         lang,
		SiteURL:      in.SiteURL,
		Version:      b.Version,
		Nav:          navigation.FromBrand(b, "inicio"),
		Identity:     b.Identity,
		UI:           b.UI,
		Hero:         b.Content.Hero,
		Benefits:     benefits,
		Catalog:      BuildCatalog(in.Snapshot, b),
		Footer:       NewFooter(b, in.Now),
		BundlesRoute: in.BundlesRoute,
	}
}

// NewFooter resolves the copyright notice for now.
func NewFooter(b brand.Config, now time.Time) Footer {
	return Footer{
		Footer:    b.Content.Footer,
		BrandName: b.Identity.Name,
		Notice:    "© " + strconv.Itoa(now.Year()) + " " + b.Content.Footer.Copyright,
	}
}
