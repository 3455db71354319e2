package services

import (
	"testing"
	"time"

	"brewlocal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testListing(name, description string, priceCents int64, createdAt time.Time) models.Listing {
	l := models.Listing{
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		IsAvailable: true,
	}
	l.CreatedAt = createdAt
	return l
}

func testCatalog() []models.Listing {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	espresso := testListing("Espresso Duplo", "blend da casa", 900, base.Add(48*time.Hour))
	espresso.Seller = &models.Seller{Slug: "cafe-do-bairro", Name: "Café do Bairro", BusinessHours: "Mon-Fri: 9:00 AM - 5:00 PM"}
	espresso.Category = &models.Category{Slug: "espresso"}

	latte := testListing("Matcha Latte", "matcha cerimonial com leite de aveia", 1800, base.Add(24*time.Hour))
	latte.Seller = &models.Seller{Slug: "casa-matcha", Name: "Casa Matcha", BusinessHours: "Sat: 10:00 AM - 4:00 PM"}
	latte.Category = &models.Category{Slug: "matcha"}

	coado := testListing("Café Coado", "torra média, notas de chocolate", 1200, base)
	coado.Seller = &models.Seller{Slug: "cafe-do-bairro", Name: "Café do Bairro", BusinessHours: "Mon-Fri: 9:00 AM - 5:00 PM"}
	coado.Category = &models.Category{Slug: "filter"}

	return []models.Listing{espresso, latte, coado}
}

func TestFilterListingsQuery(t *testing.T) {
	now := time.Now()

	result := FilterListings(testCatalog(), ListingFilter{Query: "matcha"}, now)
	require.Len(t, result, 1)
	assert.Equal(t, "Matcha Latte", result[0].Name)

	// Multi-term queries require every term to match.
	result = FilterListings(testCatalog(), ListingFilter{Query: "matcha aveia"}, now)
	require.Len(t, result, 1)

	result = FilterListings(testCatalog(), ListingFilter{Query: "matcha chocolate"}, now)
	assert.Empty(t, result)

	// Seller name is searchable too.
	result = FilterListings(testCatalog(), ListingFilter{Query: "bairro"}, now)
	assert.Len(t, result, 2)
}

func TestFilterListingsByCategoryAndSeller(t *testing.T) {
	now := time.Now()

	result := FilterListings(testCatalog(), ListingFilter{CategorySlug: "espresso"}, now)
	require.Len(t, result, 1)
	assert.Equal(t, "Espresso Duplo", result[0].Name)

	result = FilterListings(testCatalog(), ListingFilter{SellerSlug: "cafe-do-bairro"}, now)
	assert.Len(t, result, 2)
}

func TestFilterListingsMaxPrice(t *testing.T) {
	result := FilterListings(testCatalog(), ListingFilter{MaxPriceCents: 1200}, time.Now())
	require.Len(t, result, 2)
	for _, l := range result {
		assert.LessOrEqual(t, l.PriceCents, int64(1200))
	}
}

func TestFilterListingsOpenNow(t *testing.T) {
	// 2026-08-24 is a Monday; only the weekday seller is open at noon.
	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	result := FilterListings(testCatalog(), ListingFilter{OpenNow: true}, monday)
	require.Len(t, result, 2)
	for _, l := range result {
		assert.Equal(t, "cafe-do-bairro", l.Seller.Slug)
	}

	// Saturday noon flips the result to the matcha stand.
	saturday := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	result = FilterListings(testCatalog(), ListingFilter{OpenNow: true}, saturday)
	require.Len(t, result, 1)
	assert.Equal(t, "casa-matcha", result[0].Seller.Slug)
}

func TestFilterListingsSort(t *testing.T) {
	now := time.Now()

	result := FilterListings(testCatalog(), ListingFilter{Sort: SortPriceAsc}, now)
	require.Len(t, result, 3)
	assert.Equal(t, int64(900), result[0].PriceCents)
	assert.Equal(t, int64(1800), result[2].PriceCents)

	result = FilterListings(testCatalog(), ListingFilter{Sort: SortPriceDesc}, now)
	assert.Equal(t, int64(1800), result[0].PriceCents)

	result = FilterListings(testCatalog(), ListingFilter{Sort: SortName}, now)
	assert.Equal(t, "Café Coado", result[0].Name)

	// Default is newest first.
	result = FilterListings(testCatalog(), ListingFilter{}, now)
	assert.Equal(t, "Espresso Duplo", result[0].Name)
}

func TestFilterListingsDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	first := catalog[0].Name

	FilterListings(catalog, ListingFilter{Sort: SortName}, time.Now())
	assert.Equal(t, first, catalog[0].Name)
}
