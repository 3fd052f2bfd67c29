package view

import (
	"github.com/datasetsmx/storefront/internal/brand"
	"github.com/datasetsmx/storefront/internal/catalog"
)

// PanelKind selects the template of a catalog panel.
type PanelKind string

// Panel kinds.
const (
	PanelNone     PanelKind = ""
	PanelDatasets PanelKind = "datasets"
	PanelBundles  PanelKind = "bundles"
	PanelEmpty    PanelKind = "empty"
	PanelError    PanelKind = "error"
	PanelLoading  PanelKind = "loading"
)

// Panel is the content shown below the tabs.
type Panel struct {
	Kind     PanelKind
	Title    string // empty panel headline
	Message  string // empty subtitle, error or loading text
	Datasets []DatasetCard
	Bundles  []BundleCard
}

// TabButton is one catalog tab.
type TabButton struct {
	ID          string
	Label       string
	Description string
	Title       string
	Subtitle    string
	Active      bool
}

// Catalog is the template data of the catalog section.
type Catalog struct {
	Anchor     string
	ActiveTab  string
	Title      string
	Subtitle   string
	Loading    string // shown by the page script while the fragment loads
	LoadFailed string // shown by the page script when the fragment request fails
	Tabs       []TabButton
	Individual Panel
	Bundles    Panel // PanelNone until bundles were requested
	Visible    Panel
}

// BuildCatalog renders the snapshot of a catalog controller.
func BuildCatalog(s catalog.Snapshot, cfg brand.Config) Catalog {
	c := cfg.Content.Catalog

	out := Catalog{
		Anchor:     cfg.UI.CatalogAnchor,
		ActiveTab:  string(s.Tab),
		Loading:    c.LoadingBundles,
		LoadFailed: c.ErrorMessageBundles,
		Tabs: []TabButton{
			{
				ID:          string(catalog.TabIndividual),
				Label:       cfg.Content.Tabs.Individual.Label,
				Description: cfg.Content.Tabs.Individual.Description,
				Title:       c.Title,
				Subtitle:    c.Subtitle,
				Active:      s.Tab == catalog.TabIndividual,
			},
			{
				ID:          string(catalog.TabBundles),
				Label:       cfg.Content.Tabs.Bundles.Label,
				Description: cfg.Content.Tabs.Bundles.Description,
				Title:       c.TitleBundles,
				Subtitle:    c.SubtitleBundles,
				Active:      s.Tab == catalog.TabBundles,
			},
		},
		Individual: IndividualPanel(s, cfg),
		Bundles:    BundlesPanel(s, cfg),
	}

	if s.Tab == catalog.TabBundles {
		out.Title, out.Subtitle = c.TitleBundles, c.SubtitleBundles
		out.Visible = out.Bundles
	} else {
		out.Title, out.Subtitle = c.Title, c.Subtitle
		out.Visible = out.Individual
	}

	return out
}

// IndividualPanel picks error, empty or the dataset grid.
func IndividualPanel(s catalog.Snapshot, cfg brand.Config) Panel {
	c := cfg.Content.Catalog

	switch {
	case s.DatasetsFailed:
		return Panel{Kind: PanelError, Message: c.ErrorMessage}
	case len(s.Datasets) == 0:
		return Panel{Kind: PanelEmpty, Title: c.EmptyTitle, Message: c.EmptySubtitle}
	default:
		return Panel{Kind: PanelDatasets, Datasets: DatasetCards(s.Datasets, c, cfg.Pricing)}
	}
}

// BundlesPanel follows the bundle load state. Idle renders nothing.
func BundlesPanel(s catalog.Snapshot, cfg brand.Config) Panel {
	c := cfg.Content.Catalog

	switch s.BundlesState {
	case catalog.BundlesLoading:
		return Panel{Kind: PanelLoading, Message: c.LoadingBundles}
	case catalog.BundlesError:
		return Panel{Kind: PanelError, Message: c.ErrorMessageBundles}
	case catalog.BundlesLoaded:
		if len(s.Bundles) == 0 {
			return Panel{Kind: PanelEmpty, Title: c.EmptyBundlesTitle, Message: c.EmptyBundlesSubtitle}
		}

		return Panel{Kind: PanelBundles, Bundles: BundleCards(s.Bundles, c, cfg.Pricing)}
	default:
		return Panel{Kind: PanelNone}
	}
}
