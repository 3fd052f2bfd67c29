package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// BundlesPath serves the bundles panel fragment.
	BundlesPath = RootPath + "catalog/bundles"

	// ErrNilDepsFatalLogMsg is used if app, cfg or the catalog reader is nil.
	ErrNilDepsFatalLogMsg = "app, cfg or catalog is nil"
)
