package domain

import (
	"sort"
	"strings"
)

// Sort modes for product listings.
const (
	SortFeatured   = "featured"
	SortBestSeller = "best-seller"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
)

// ValidSortModes returns the list of valid sort modes.
func ValidSortModes() []string {
	return []string{SortFeatured, SortBestSeller, SortPriceAsc, SortPriceDesc}
}

// IsValidSort checks whether the given sort string is a valid sort mode.
func IsValidSort(mode string) bool {
	for _, s := range ValidSortModes() {
		if s == mode {
			return true
		}
	}
	return false
}

// Criteria holds the optional filter and sort parameters of a catalog query.
type Criteria struct {
	Search   string  `json:"q,omitempty"`
	Brand    *string `json:"brand,omitempty"`
	Family   *string `json:"family,omitempty"`
	MinPrice *int64  `json:"min_price,omitempty"` // centavos
	MaxPrice *int64  `json:"max_price,omitempty"` // centavos
	Sort     string  `json:"sort,omitempty"`
}

// FilterProducts returns the subset of products matching the criteria, sorted
// per the criteria's sort mode. Pure: the input slice is never mutated and the
// result is deterministic. All sorts are stable — products with equal sort
// keys keep their input order, and without a sort mode the output preserves
// input order entirely.
func FilterProducts(products []Product, c Criteria) []Product {
	term := strings.ToLower(strings.TrimSpace(c.Search))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchesCriteria(p, c, term) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, c.Sort)
	return filtered
}

// matchesCriteria checks a single product against every filter stage. The
// stages are commutative set intersections, so evaluation order is free.
func matchesCriteria(p Product, c Criteria, term string) bool {
	// Case-insensitive substring search over name, brand, and description.
	// A whitespace-only term was already reduced to "" and means no filter.
	if term != "" {
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Brand), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	// Exact, case-sensitive equality filters.
	if c.Brand != nil && *c.Brand != "" && p.Brand != *c.Brand {
		return false
	}
	if c.Family != nil && *c.Family != "" && p.Family != *c.Family {
		return false
	}

	// Price bounds (inclusive).
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}

	return true
}

// sortProducts orders the slice in place according to the sort mode.
// sort.SliceStable keeps tied elements in input order.
func sortProducts(products []Product, mode string) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	case SortBestSeller:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].RatingCount > products[j].RatingCount
		})
	default:
		// No sort mode: keep the catalog's natural order.
	}
}

// DefaultMaxPrice is the facet price-range ceiling (in centavos) reported for
// an empty catalog, so filter sliders have a usable upper bound.
const DefaultMaxPrice int64 = 100_000

// PriceRange is the min/max price bounds over the catalog, in centavos.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Facets is the aggregate filter metadata derived from the full catalog.
type Facets struct {
	Brands     []string   `json:"brands"`
	Families   []string   `json:"families"`
	PriceRange PriceRange `json:"priceRange"`
}

// ComputeFacets derives filter facets from the complete, unfiltered catalog.
func ComputeFacets(products []Product) Facets {
	brandSet := make(map[string]struct{})
	familySet := make(map[string]struct{})

	for _, p := range products {
		brandSet[p.Brand] = struct{}{}
		familySet[p.Family] = struct{}{}
	}

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	families := make([]string, 0, len(familySet))
	for f := range familySet {
		families = append(families, f)
	}
	sort.Strings(families)

	pr := PriceRange{Min: 0, Max: DefaultMaxPrice}
	if len(products) > 0 {
		pr.Min = products[0].Price
		pr.Max = products[0].Price
		for _, p := range products[1:] {
			if p.Price < pr.Min {
				pr.Min = p.Price
			}
			if p.Price > pr.Max {
				pr.Max = p.Price
			}
		}
	}

	return Facets{
		Brands:     brands,
		Families:   families,
		PriceRange: pr,
	}
}
