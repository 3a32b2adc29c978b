//go:build unit

package product_test

import (
	"testing"

	"oficina-criativa/internal/domain/product"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func attributesOf(p *product.Product) product.Attributes {
	return product.Attributes{
		Slug:               p.Slug(),
		Name:               p.Name(),
		PriceText:          p.PriceText(),
		ShortDescription:   p.ShortDescription(),
		Description:        p.Description(),
		CoverImageURL:      p.CoverImageURL(),
		GalleryImageURLs:   p.GalleryImageURLs(),
		Benefits:           p.Benefits(),
		FAQs:               p.FAQs(),
		HotmartCheckoutURL: p.HotmartCheckoutURL(),
		WistiaMediaID:      p.WistiaMediaID(),
		WistiaAspect:       p.WistiaAspect(),
		WistiaMediaID2:     p.WistiaMediaID2(),
		WistiaAspect2:      p.WistiaAspect2(),
		VideoDividerText:   p.VideoDividerText(),
		DrivePreviewFolder: p.DrivePreviewFolder(),
		IsActive:           p.IsActive(),
		SortOrder:          p.SortOrder(),
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("carries every attribute", func(t *testing.T) {
		attrs := product.Attributes{
			Slug:               "painel-das-palavras",
			Name:               "Painel das Palavras",
			PriceText:          "€5,00",
			ShortDescription:   "Painel interativo para trabalhar vocabulário.",
			Description:        "Descrição longa.",
			CoverImageURL:      "https://cdn.example.com/painel.jpg",
			GalleryImageURLs:   []string{"https://cdn.example.com/g1.jpg"},
			Benefits:           []string{"Pronto a imprimir"},
			FAQs:               []product.FAQ{{Question: "Como recebo?", Answer: "Por email."}},
			HotmartCheckoutURL: "https://pay.hotmart.com/X123",
			WistiaMediaID:      "abc123",
			WistiaAspect:       "0.75",
			VideoDividerText:   "Veja como funciona:",
			DrivePreviewFolder: "https://drive.google.com/drive/folders/xyz",
			IsActive:           true,
			SortOrder:          5,
		}

		actual, err := product.New(attrs)
		require.NoError(t, err)
		require.NotNil(t, actual)

		if diff := cmp.Diff(attrs, attributesOf(actual), cmpOpts...); diff != "" {
			t.Errorf("Attributes mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("rejects blank slug", func(t *testing.T) {
		_, err := product.New(product.Attributes{Slug: "  ", Name: "Painel das Palavras"})
		assert.ErrorIs(t, err, product.ErrEmptySlug)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := product.New(product.Attributes{Slug: "painel-das-palavras", Name: ""})
		assert.ErrorIs(t, err, product.ErrEmptyName)
	})

	t.Run("catalog entries all construct", func(t *testing.T) {
		for _, attrs := range product.Catalog() {
			p, err := product.New(attrs)
			require.NoError(t, err, "catalog entry %q", attrs.Name)

			if diff := cmp.Diff(attrs, attributesOf(p), cmpOpts...); diff != "" {
				t.Errorf("catalog entry %q mismatch (-want +got):\n%s", attrs.Name, diff)
			}
		}
	})
}
