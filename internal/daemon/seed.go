package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/datasetsmx/storefront/internal/db/models"
)

// seedDatasets in display order, newest first.
func seedDatasets() []models.Dataset {
	return []models.Dataset{
		{
			Slug:         "rfc-sinteticos",
			Title:        "RFC Sintéticos",
			Description:  "RFC de personas físicas y morales con homoclave y dígito verificador válidos.",
			Category:     "Fiscal",
			PriceMXN:     145,
			RecordsCount: 10000,
			IsPublished:  true,
		},
		{
			Slug:         "curp-sinteticos",
			Title:        "CURP Sintéticos",
			Description:  "CURP con estructura oficial, entidad de nacimiento y dígito verificador.",
			Category:     "Identidad",
			PriceMXN:     145,
			RecordsCount: 10000,
			IsPublished:  true,
		},
		{
			Slug:         "direcciones-mx",
			Title:        "Direcciones de México",
			Description:  "Calles, colonias, municipios y códigos postales reales de las 32 entidades.",
			Category:     "Geolocalización",
			PriceMXN:     235,
			RecordsCount: 145000,
			IsPublished:  true,
		},
		{
			Slug:         "usuarios-completos",
			Title:        "Usuarios Completos",
			Description:  "Perfiles con nombre, RFC, CURP, teléfono, correo y domicilio consistentes entre sí.",
			Category:     "Demográficos",
			PriceMXN:     285,
			RecordsCount: 50000,
			IsPublished:  true,
		},
		{
			Slug:         "transacciones-bancarias",
			Title:        "Transacciones Bancarias",
			Description:  "Movimientos con CLABE, montos, conceptos y fechas para pruebas de conciliación.",
			Category:     "Financiero",
			PriceMXN:     190,
			RecordsCount: 25000,
			IsPublished:  true,
		},
		{
			Slug:        "empresas-borrador",
			Title:       "Empresas (borrador)",
			Description: "Razones sociales y giros. Sin publicar.",
			Category:    "Fiscal",
			PriceMXN:    99,
		},
	}
}

type seedBundle struct {
	bundle   models.Bundle
	datasets []string // slugs in join order
}

func seedBundles() []seedBundle {
	return []seedBundle{
		{
			bundle: models.Bundle{
				Slug:               "pack-profesional",
				Title:              "Pack Profesional",
				Description:        "Los datasets de identidad y domicilio que todo equipo de QA necesita.",
				IdealFor:           "Ideal para equipos de QA y desarrollo",
				PriceMXN:           665,
				OriginalPriceMXN:   780,
				DiscountPercentage: 15,
				IsPublished:        true,
			},
			datasets: []string{"rfc-sinteticos", "curp-sinteticos", "direcciones-mx"},
		},
		{
			bundle: models.Bundle{
				Slug:               "all-access",
				Title:              "All Access",
				Description:        "Todo el catálogo publicado en un solo paquete.",
				IdealFor:           "Ideal para empresas y consultoras",
				PriceMXN:           760,
				OriginalPriceMXN:   1010,
				DiscountPercentage: 25,
				IsPublished:        true,
			},
			datasets: []string{
				"rfc-sinteticos", "curp-sinteticos", "direcciones-mx",
				"usuarios-completos", "transacciones-bancarias",
			},
		},
	}
}

// seed fills an empty catalog with sample data. A catalog holding any
// dataset is left untouched.
func seed(db *gorm.DB, now time.Time) error {
	var count int64
	if err := db.Model(&models.Dataset{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Debug().Int64("datasets", count).Msg("catalog not empty, skipping seed")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		datasets := seedDatasets()
		bySlug := make(map[string]*models.Dataset, len(datasets))

		for i := range datasets {
			datasets[i].CreatedAt = now.Add(-time.Duration(i) * time.Hour)
			bySlug[datasets[i].Slug] = &datasets[i]
		}

		if err := tx.Create(&datasets).Error; err != nil {
			return err
		}

		for i, sb := range seedBundles() {
			b := sb.bundle
			b.CreatedAt = now.Add(-time.Duration(i) * time.Hour)

			if err := tx.Create(&b).Error; err != nil {
				return err
			}

			bridges := make([]models.BundleDataset, 0, len(sb.datasets))
			for j, slug := range sb.datasets {
				bridges = append(bridges, models.BundleDataset{
					Base:      models.Base{CreatedAt: now.Add(time.Duration(j) * time.Second)},
					BundleID:  b.ID,
					DatasetID: bySlug[slug].ID,
				})
			}

			if err := tx.Create(&bridges).Error; err != nil {
				return err
			}
		}

		log.Info().Int("datasets", len(datasets)).Int("bundles", len(seedBundles())).Msg("catalog seeded")

		return nil
	})
}
