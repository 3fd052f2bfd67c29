// Package brand holds the static brand identity, copy deck and pricing
// display settings of the storefront.
//
// Everything in here is fixed at compile time. Handlers receive a Config
// value from Default and never modify it.
package brand

// Version of the brand and copy deck. Bump it whenever copy or pricing changes.
const Version = "2025.1"

// Colors is the brand palette as hex strings.
type Colors struct {
	Primary       string
	Secondary     string
	Accent        string
	Background    string
	BackgroundAlt string
}

// Logo holds asset paths relative to the public directory.
type Logo struct {
	Light   string
	Dark    string
	Favicon string
}

// Social links and contact addresses. Empty values are not rendered.
type Social struct {
	Twitter  string
	LinkedIn string
	GitHub   string
	Email    string
}

// Identity is the brand identity shown in the document head and header.
type Identity struct {
	Name            string
	Tagline         string
	MetaDescription string
	Locale          string
	Colors          Colors
	Logo            Logo
	Social          Social
}

// Pricing controls how prices are displayed.
type Pricing struct {
	Currency       string
	CurrencySymbol string
	TaxIncluded    bool
}

// UI holds presentational toggles.
type UI struct {
	ShowBenefits     bool
	StickyHeader     bool
	ScrollThreshold  int // pixels scrolled before the header switches background
	DefaultTab       string
	CatalogAnchor    string
	SampleDownloadTo string
}

// Config is the complete, versioned registry.
type Config struct {
	Version  string
	Identity Identity
	Pricing  Pricing
	UI       UI
	Content  Content
}

// Default returns the registry used by the storefront.
func Default() Config {
	return Config{
		Version: Version,
		Identity: Identity{
			Name:    "Datasets MX",
			Tagline: "Datasets premium para decisiones inteligentes",
			MetaDescription: "Marketplace de datasets de alta calidad. Encuentra datos curados para análisis, " +
				"machine learning e inteligencia artificial. Compra segura y descarga inmediata.",
			Locale: "es-MX",
			Colors: Colors{
				Primary:       "#0F172A",
				Secondary:     "#10B981",
				Accent:        "#3B82F6",
				Background:    "#F8FAFC",
				BackgroundAlt: "#EFF6FF",
			},
			Logo: Logo{
				Light:   "/static/logo-light.svg",
				Dark:    "/static/logo-dark.svg",
				Favicon: "/static/favicon.svg",
			},
			Social: Social{
				Email: "hola@datasetsmx.com",
			},
		},
		Pricing: Pricing{
			Currency:       "MXN",
			CurrencySymbol: "$",
			TaxIncluded:    true,
		},
		UI: UI{
			ShowBenefits:     true,
			StickyHeader:     true,
			ScrollThreshold:  10,
			DefaultTab:       "individual",
			CatalogAnchor:    "catalogo",
			SampleDownloadTo: SamplePath,
		},
		Content: defaultContent(),
	}
}
