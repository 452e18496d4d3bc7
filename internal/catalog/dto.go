package catalog

import (
	"fmt"

	"github.com/paymitra/storefront-backend/pkg/pagination"
)

// Sort names the supported catalog orderings.
type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortRating    Sort = "rating"
	SortNewest    Sort = "newest"
)

var validSorts = []Sort{
	SortFeatured,
	SortPriceAsc,
	SortPriceDesc,
	SortRating,
	SortNewest,
}

// ParseSort converts raw query input into a Sort, defaulting to featured.
func ParseSort(value string) (Sort, error) {
	if value == "" {
		return SortFeatured, nil
	}
	for _, candidate := range validSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort %q", value)
}

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	Category      string `json:"category,omitempty"`
	Vendor        string `json:"vendor,omitempty"`
	FeaturedOnly  bool   `json:"featured,omitempty"`
	NewOnly       bool   `json:"new,omitempty"`
	PriceMinCents *int64 `json:"price_min_cents,omitempty"`
	PriceMaxCents *int64 `json:"price_max_cents,omitempty"`
	Query         string `json:"q,omitempty"`
}

// ListInput captures the inputs needed to filter and page the catalog.
type ListInput struct {
	Filters    ListFilters
	Sort       Sort
	Pagination pagination.Params
}
