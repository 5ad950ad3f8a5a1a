package entity

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPromotion() *Promotion {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	return &Promotion{
		Title:       "Two pizzas for one",
		Description: "Every Tuesday evening",
		Category:    CategoryFood,
		Type:        PromotionTypeBOGO,
		Images:      []string{"uploads/pizza.png"},
		RedirectURL: "https://pizza.example.com/deal",
		StartDate:   now,
		EndDate:     now.Add(7 * 24 * time.Hour),
		IsActive:    true,
	}
}

func TestConversionRate(t *testing.T) {
	assert.Zero(t, ConversionRate(0, 0))
	assert.Zero(t, ConversionRate(5, 0))
	assert.InDelta(t, 100.0, ConversionRate(1, 1), 1e-9)
	assert.InDelta(t, 25.0, ConversionRate(1, 4), 1e-9)
	assert.InDelta(t, 100.0/3.0, ConversionRate(1, 3), 1e-9)
}

func TestPromotion_RecomputeConversionRate(t *testing.T) {
	p := validPromotion()
	p.Clicks, p.Impressions = 3, 12
	p.RecomputeConversionRate()
	assert.InDelta(t, 25.0, p.ConversionRate, 1e-9)

	p.Clicks, p.Impressions = 3, 0
	p.RecomputeConversionRate()
	assert.Zero(t, p.ConversionRate)
}

func TestPromotion_IsLive(t *testing.T) {
	p := validPromotion()

	assert.True(t, p.IsLive(p.StartDate))
	assert.False(t, p.IsLive(p.EndDate), "a promotion is no longer live at its end date")

	p.IsActive = false
	assert.False(t, p.IsLive(p.StartDate))
}

func TestPromotion_Validate(t *testing.T) {
	t.Run("valid promotion", func(t *testing.T) {
		require.NoError(t, validPromotion().Validate())
	})

	t.Run("prices do not derive the discount", func(t *testing.T) {
		p := validPromotion()
		original, discounted := decimal.NewFromInt(100), decimal.NewFromInt(75)
		p.OriginalPrice, p.DiscountedPrice = &original, &discounted

		require.NoError(t, p.Validate())
		assert.Nil(t, p.DiscountPercentage)
	})

	t.Run("reports every failing field", func(t *testing.T) {
		p := validPromotion()
		p.Title = ""
		p.Category = "cars"
		p.Type = "coupon"
		p.Images = nil
		p.RedirectURL = "ftp://pizza.example.com"

		err := p.Validate()
		require.Error(t, err)

		var verrs ValidationErrors
		require.ErrorAs(t, err, &verrs)

		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field)
		}
		assert.ElementsMatch(t, []string{"title", "category", "type", "images", "redirectUrl"}, fields)
	})

	t.Run("discount out of range", func(t *testing.T) {
		p := validPromotion()
		pct := 120.0
		p.DiscountPercentage = &pct
		assert.ErrorContains(t, p.Validate(), "discountPercentage")
	})

	t.Run("non-finite discount", func(t *testing.T) {
		for _, pct := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			p := validPromotion()
			p.DiscountPercentage = &pct
			assert.ErrorContains(t, p.Validate(), "discountPercentage", "discount %v", pct)
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		p := validPromotion()
		p.EndDate = p.StartDate.Add(-time.Hour)
		assert.ErrorContains(t, p.Validate(), "endDate")
	})

	t.Run("end date equal to start date", func(t *testing.T) {
		p := validPromotion()
		p.EndDate = p.StartDate
		assert.ErrorContains(t, p.Validate(), "endDate")
	})
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "trims and drops blanks", raw: " pizza , ,  pasta,", want: []string{"pizza", "pasta"}},
		{name: "keeps first occurrence", raw: "pizza,pasta,pizza,salad,pasta", want: []string{"pizza", "pasta", "salad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com"))
	assert.True(t, IsHTTPURL("http://www.example.com/path?x=1&y=2"))
	assert.False(t, IsHTTPURL("example.com"))
	assert.False(t, IsHTTPURL("ftp://example.com"))
	assert.False(t, IsHTTPURL(""))
	assert.False(t, IsHTTPURL("visit https://example.com"))
	assert.False(t, IsHTTPURL("https://example.com now"))
}
