// Package navigation provides the header navigation state of a page.
package navigation

import (
	"github.com/datasetsmx/storefront/internal/brand"
)

// Item is a header link ready for rendering.
type Item struct {
	ID       string
	Label    string
	Href     string
	Download bool
	Badge    string
	Active   bool
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle       string
	MetaDescription string
	ActiveSection   string
	Items           []Item
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Items:         make([]Item, 0),
	}
}

// FromBrand builds the context of the landing page from the registry.
func FromBrand(cfg brand.Config, activeSection string) *Context {
	ctx := NewContext(cfg.Identity.Name+" | "+cfg.Identity.Tagline, activeSection)
	ctx.MetaDescription = cfg.Identity.MetaDescription

	for _, l := range cfg.Content.Header.Navigation {
		ctx.AddLink(l)
	}

	return ctx
}

// AddLink appends a header link. It is active when its ID matches ActiveSection.
func (c *Context) AddLink(l brand.NavLink) *Context {
	c.Items = append(c.Items, Item{
		ID:       l.ID,
		Label:    l.Label,
		Href:     l.Href,
		Download: l.Download,
		Badge:    l.Badge,
		Active:   l.ID == c.ActiveSection,
	})

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
