package seo

import (
	"strings"
	"testing"

	"rapifix_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteURL = "https://rapifix.com.ar"

func TestBuildLocalBusiness_WithReviews(t *testing.T) {
	t.Parallel()

	lb := BuildLocalBusiness(siteURL, ProfileInput{
		FullName:      "Juan Pérez",
		Description:   "Plomero matriculado",
		Slug:          "juan-perez-plomeria-centro",
		Phone:         "3511234567",
		CategoryName:  "Plomería",
		Neighborhoods: []string{"Centro", "Alberdi"},
		PriceRange:    models.PriceRangeMedium,
		AvgRating:     4.3,
		ReviewCount:   12,
	})

	assert.Equal(t, "https://schema.org", lb.Context)
	assert.Equal(t, "LocalBusiness", lb.Type)
	assert.Equal(t, siteURL+"/profesional/juan-perez-plomeria-centro", lb.URL)
	assert.Equal(t, "$$", lb.PriceRange)
	assert.Equal(t, "Plomería", lb.Category)
	assert.Equal(t, "Córdoba", lb.Address.AddressLocality)
	assert.Equal(t, "AR", lb.Address.AddressCountry)

	require.Len(t, lb.AreaServed, 2)
	assert.Equal(t, Place{Type: "Place", Name: "Centro"}, lb.AreaServed[0])
	assert.Equal(t, Place{Type: "Place", Name: "Alberdi"}, lb.AreaServed[1])

	require.NotNil(t, lb.AggregateRating)
	assert.Equal(t, 4.3, lb.AggregateRating.RatingValue)
	assert.Equal(t, 12, lb.AggregateRating.ReviewCount)
	assert.Equal(t, 5, lb.AggregateRating.BestRating)
}

func TestBuildLocalBusiness_NoReviews(t *testing.T) {
	t.Parallel()

	lb := BuildLocalBusiness(siteURL, ProfileInput{
		FullName:    "Ana Gómez",
		Slug:        "ana-gomez-electricidad-alberdi",
		ReviewCount: 0,
	})

	// Без отзывов блок рейтинга отсутствует целиком,
	// без рубрики и районов - их поля.
	assert.Nil(t, lb.AggregateRating)

	out, err := Marshal(lb)
	require.NoError(t, err)
	assert.NotContains(t, out, "aggregateRating")
	assert.NotContains(t, out, "category")
	assert.NotContains(t, out, "areaServed")
}

func TestMarshal_EscapesScriptBreakout(t *testing.T) {
	t.Parallel()

	lb := BuildLocalBusiness(siteURL, ProfileInput{
		FullName:    "Mal Actor",
		Description: "</script><script>alert(1)</script>",
		Slug:        "mal-actor",
	})

	out, err := Marshal(lb)
	require.NoError(t, err)

	// '<' сериализуется юникод-последовательностью, сырого тега в выводе нет.
	assert.False(t, strings.Contains(out, "</script>"))
	assert.Contains(t, out, "u003c/script")
}

func TestPriceRangeSymbol(t *testing.T) {
	t.Parallel()

	cases := map[models.PriceRange]string{
		models.PriceRangeLow:       "$",
		models.PriceRangeMedium:    "$$",
		models.PriceRangeHigh:      "$$$",
		models.PriceRangePremium:   "$$$$",
		models.PriceRange("other"): "",
		models.PriceRange(""):      "",
	}

	for in, want := range cases {
		assert.Equal(t, want, models.PriceRangeSymbol(in), "price range %q", in)
	}
}
