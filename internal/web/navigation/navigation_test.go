package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasetsmx/storefront/internal/brand"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "inicio")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "inicio", ctx.ActiveSection)
	assert.NotNil(t, ctx.Items)
	assert.Empty(t, ctx.Items)
}

func TestContext_AddLink_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "catalogo").
		AddLink(brand.NavLink{ID: "inicio", Label: "Inicio", Href: "/"}).
		AddLink(brand.NavLink{ID: "catalogo", Label: "Catálogo", Href: "#catalogo"})

	require.Len(t, ctx.Items, 2)
	assert.False(t, ctx.Items[0].Active)
	assert.True(t, ctx.Items[1].Active)
	assert.True(t, ctx.IsSectionActive("catalogo"))
	assert.False(t, ctx.IsSectionActive("inicio"))
}

func TestFromBrand(t *testing.T) {
	ctx := FromBrand(brand.Default(), "inicio")

	assert.Contains(t, ctx.PageTitle, "Datasets MX")
	assert.NotEmpty(t, ctx.MetaDescription)
	require.Len(t, ctx.Items, 4)

	labels := make([]string, 0, len(ctx.Items))
	for _, it := range ctx.Items {
		labels = append(labels, it.Label)
	}

	assert.Equal(t, []string{"Inicio", "Catálogo", "Muestra", "Contacto"}, labels)
	assert.True(t, ctx.Items[0].Active)

	sample := ctx.Items[2]
	assert.True(t, sample.Download)
	assert.Equal(t, "GRATIS", sample.Badge)
	assert.Equal(t, brand.SamplePath, sample.Href)
}
