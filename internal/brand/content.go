package brand

// SamplePath is the public path of the free sample spreadsheet.
const SamplePath = "/muestras/muestra-gratuita.xlsx"

// Button variants used by hero call to actions.
const (
	VariantPrimary   = "primary"
	VariantSecondary = "secondary"
	VariantOutline   = "outline"
)

// NavLink is an entry of the header navigation.
type NavLink struct {
	ID       string
	Label    string
	Href     string
	Download bool
	Badge    string
}

// Header copy.
type Header struct {
	BrandName  string
	Navigation []NavLink
}

// CTA is a hero button.
type CTA struct {
	Text     string
	Href     string
	Variant  string
	Download bool
}

// Hero copy.
type Hero struct {
	Title    string
	Subtitle string
	Buttons  []CTA
}

// Benefit tile. Icon is one of database, shield, lightning, chart,
// download, support, lock or refresh.
type Benefit struct {
	Icon        string
	Title       string
	Description string
}

// Tab label and description.
type Tab struct {
	Label       string
	Description string
}

// Tabs of the catalog.
type Tabs struct {
	Individual Tab
	Bundles    Tab
}

// Catalog copy, including the empty, error and loading panels.
type Catalog struct {
	Title                string
	TitleBundles         string
	Subtitle             string
	SubtitleBundles      string
	EmptyTitle           string
	EmptySubtitle        string
	EmptyBundlesTitle    string
	EmptyBundlesSubtitle string
	ErrorMessage         string
	ErrorMessageBundles  string
	LoadingBundles       string
	BuyDataset           string
	BuyBundle            string
	Includes             string
	SavePrefix           string
	RecordsUnit          string
}

// FooterLink is a link of the footer links column.
type FooterLink struct {
	Label string
	Href  string
}

// Footer copy. Copyright is prefixed with "© <year>" when rendered.
type Footer struct {
	AboutTitle       string
	AboutDescription string
	LinksTitle       string
	Links            []FooterLink
	ContactTitle     string
	ContactEmail     string
	Copyright        string
}

// Content is the copy deck of the landing page.
type Content struct {
	Header   Header
	Hero     Hero
	Benefits []Benefit
	Tabs     Tabs
	Catalog  Catalog
	Footer   Footer
}

func defaultContent() Content {
	return Content{
		Header: Header{
			BrandName: "Datasets MX",
			Navigation: []NavLink{
				{ID: "inicio", Label: "Inicio", Href: "/"},
				{ID: "catalogo", Label: "Catálogo", Href: "#catalogo"},
				{ID: "muestra", Label: "Muestra", Href: SamplePath, Download: true, Badge: "GRATIS"},
				{ID: "contacto", Label: "Contacto", Href: "#contacto"},
			},
		},
		Hero: Hero{
			Title: "Marketplace de Datasets",
			Subtitle: "Descubre datasets premium de alta calidad, curados por expertos para potenciar tus " +
				"proyectos de análisis, machine learning e inteligencia artificial.",
			Buttons: []CTA{
				{Text: "Ver Datasets", Href: "#catalogo", Variant: VariantPrimary},
				{Text: "Descarga Muestra Gratis", Href: SamplePath, Variant: VariantOutline, Download: true},
			},
		},
		Benefits: []Benefit{
			{
				Icon:  "database",
				Title: "Datos Verificados",
				Description: "Cada dataset pasa por un riguroso proceso de validación para garantizar " +
					"precisión y consistencia en la información.",
			},
			{
				Icon:  "shield",
				Title: "Compra Segura",
				Description: "Transacciones protegidas con encriptación de grado bancario. " +
					"Tu información financiera siempre está segura.",
			},
			{
				Icon:  "lightning",
				Title: "Descarga Inmediata",
				Description: "Accede a tus datasets al instante después de la compra. " +
					"Sin tiempos de espera, sin complicaciones.",
			},
			{
				Icon:  "refresh",
				Title: "Actualizaciones Incluidas",
				Description: "Recibe actualizaciones gratuitas de los datasets por 12 meses. " +
					"Mantén tus datos siempre frescos.",
			},
		},
		Tabs: Tabs{
			Individual: Tab{Label: "Individual", Description: "Datasets unitarios para proyectos específicos"},
			Bundles:    Tab{Label: "Paquetes", Description: "Colecciones de datasets con descuento"},
		},
		Catalog: Catalog{
			Title:                "Explora nuestro catálogo",
			TitleBundles:         "Paquetes de Datasets",
			Subtitle:             "Datasets verificados y listos para usar en tus proyectos",
			SubtitleBundles:      "Ahorra con nuestras colecciones curadas de datasets",
			EmptyTitle:           "No hay datasets disponibles",
			EmptySubtitle:        "Vuelve pronto para descubrir nuevos datasets",
			EmptyBundlesTitle:    "No hay paquetes disponibles",
			EmptyBundlesSubtitle: "Pronto agregaremos paquetes con descuentos especiales",
			ErrorMessage:         "Error al cargar los datasets",
			ErrorMessageBundles:  "Error al cargar los paquetes",
			LoadingBundles:       "Cargando paquetes...",
			BuyDataset:           "Comprar ahora",
			BuyBundle:            "Comprar paquete",
			Includes:             "Incluye:",
			SavePrefix:           "AHORRA",
			RecordsUnit:          "registros",
		},
		Footer: Footer{
			AboutTitle: "Sobre Nosotros",
			AboutDescription: "Datos profesionales para equipos de desarrollo y testing en México. " +
				"Datasets curados y verificados para potenciar tus proyectos.",
			LinksTitle: "Enlaces",
			Links: []FooterLink{
				{Label: "Términos y Condiciones", Href: "/terminos"},
				{Label: "Política de Privacidad", Href: "/privacidad"},
				{Label: "Preguntas Frecuentes", Href: "/faq"},
			},
			ContactTitle: "Contacto",
			ContactEmail: "hola@datasetsmx.com",
			Copyright:    "Datasets MX. Todos los precios en MXN. IVA incluido.",
		},
	}
}
