package services

import (
	"sort"
	"strings"
	"time"

	"brewlocal/internal/repo"
	"brewlocal/pkg/models"
	"brewlocal/pkg/schedule"
)

// Sort options accepted by the public catalog.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// ListingFilter narrows and orders the public catalog.
type ListingFilter struct {
	Query         string
	CategorySlug  string
	SellerSlug    string
	MaxPriceCents int64
	OpenNow       bool
	Sort          string
}

// CatalogService serves the public browse/search surface. The SQL side only
// narrows the candidate set; filtering and ordering happen in memory so the
// matching rules stay in one place.
type CatalogService struct {
	listingRepo *repo.ListingRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(listingRepo *repo.ListingRepository) *CatalogService {
	return &CatalogService{listingRepo: listingRepo}
}

// Search returns available listings matching the filter, ordered per its
// Sort option.
func (s *CatalogService) Search(filter ListingFilter) ([]models.Listing, error) {
	var listings []models.Listing
	var err error

	if filter.Query != "" {
		listings, err = s.listingRepo.SearchAvailable(filter.Query)
	} else {
		listings, err = s.listingRepo.ListAvailable()
	}
	if err != nil {
		return nil, err
	}

	return FilterListings(listings, filter, time.Now()), nil
}

// FilterListings applies a ListingFilter to an in-memory listing set. Pure:
// the input slice is not modified.
func FilterListings(listings []models.Listing, filter ListingFilter, now time.Time) []models.Listing {
	result := make([]models.Listing, 0, len(listings))

	for _, l := range listings {
		if !matches(l, filter, now) {
			continue
		}
		result = append(result, l)
	}

	sortListings(result, filter.Sort)
	return result
}

func matches(l models.Listing, filter ListingFilter, now time.Time) bool {
	if filter.Query != "" && !matchesQuery(l, filter.Query) {
		return false
	}
	if filter.CategorySlug != "" {
		if l.Category == nil || l.Category.Slug != filter.CategorySlug {
			return false
		}
	}
	if filter.SellerSlug != "" {
		if l.Seller == nil || l.Seller.Slug != filter.SellerSlug {
			return false
		}
	}
	if filter.MaxPriceCents > 0 && l.PriceCents > filter.MaxPriceCents {
		return false
	}
	if filter.OpenNow {
		if l.Seller == nil {
			return false
		}
		if !schedule.Parse(l.Seller.BusinessHours).OpenAt(now) {
			return false
		}
	}
	return true
}

// matchesQuery does a case-insensitive substring match over name,
// description, tags and the seller name.
func matchesQuery(l models.Listing, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	haystack := strings.ToLower(l.Name + " " + l.Description + " " + l.Tags)
	if l.Seller != nil {
		haystack += " " + strings.ToLower(l.Seller.Name)
	}

	for _, term := range strings.Fields(query) {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

func sortListings(listings []models.Listing, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PriceCents < listings[j].PriceCents
		})
	case SortPriceDesc:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].PriceCents > listings[j].PriceCents
		})
	case SortName:
		sort.SliceStable(listings, func(i, j int) bool {
			return strings.ToLower(listings[i].Name) < strings.ToLower(listings[j].Name)
		})
	default: // SortNewest
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}
