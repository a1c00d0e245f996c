package wine

import (
	"SipMate-Backend/entities"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TypeAll is the sentinel type filter value that disables type filtering.
const TypeAll = "all"

// WineTypes is the canonical type taxonomy, matching the catalog column.
var WineTypes = []string{"red", "white", "rosé", "sparkling", "dessert"}

const (
	SortNameAsc    = "name_asc"
	SortNameDesc   = "name_desc"
	SortRatingAsc  = "rating_asc"
	SortRatingDesc = "rating_desc"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	SortYearAsc    = "year_asc"
	SortYearDesc   = "year_desc"
	SortType       = "type"
)

// FilterWines returns the wines matching both the free-text query and the
// type filter. The query is matched case-insensitively as a substring of
// name, winery, region, type and food pairing; a wine is retained if any
// field matches. Missing fields never match. The input slice is not
// mutated.
func FilterWines(wines []entities.Wine, query string, wineType string) []entities.Wine {
	filtered := make([]entities.Wine, 0, len(wines))

	query = strings.ToLower(strings.TrimSpace(query))
	for _, w := range wines {
		if query != "" && !matchesQuery(w, query) {
			continue
		}
		if wineType != "" && wineType != TypeAll && w.Type != wineType {
			continue
		}
		filtered = append(filtered, w)
	}

	return filtered
}

func matchesQuery(w entities.Wine, query string) bool {
	if strings.Contains(strings.ToLower(w.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(w.Type), query) {
		return true
	}
	for _, field := range []*string{w.Winery, w.Region, w.FoodPairing} {
		if field != nil && strings.Contains(strings.ToLower(*field), query) {
			return true
		}
	}
	return false
}

// SortWines returns a new slice ordered by the given sort key. Missing
// ratings, prices and years compare as zero. The sort is stable, so wines
// that compare equal keep their snapshot order. An unknown sort key returns
// the input order unchanged.
func SortWines(wines []entities.Wine, sortKey string) []entities.Wine {
	sorted := make([]entities.Wine, len(wines))
	copy(sorted, wines)

	var less func(a, b entities.Wine) bool

	switch sortKey {
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.English)
		less = func(a, b entities.Wine) bool {
			cmp := col.CompareString(a.Name, b.Name)
			if sortKey == SortNameAsc {
				return cmp < 0
			}
			return cmp > 0
		}
	case SortRatingAsc:
		less = func(a, b entities.Wine) bool { return floatOrZero(a.Rating) < floatOrZero(b.Rating) }
	case SortRatingDesc:
		less = func(a, b entities.Wine) bool { return floatOrZero(a.Rating) > floatOrZero(b.Rating) }
	case SortPriceAsc:
		less = func(a, b entities.Wine) bool { return floatOrZero(a.Price) < floatOrZero(b.Price) }
	case SortPriceDesc:
		less = func(a, b entities.Wine) bool { return floatOrZero(a.Price) > floatOrZero(b.Price) }
	case SortYearAsc:
		less = func(a, b entities.Wine) bool { return intOrZero(a.Year) < intOrZero(b.Year) }
	case SortYearDesc:
		less = func(a, b entities.Wine) bool { return intOrZero(a.Year) > intOrZero(b.Year) }
	case SortType:
		less = func(a, b entities.Wine) bool { return a.Type < b.Type }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// BrowseWines applies the text and type filters, then sorts. Filtering
// always runs before sorting; the two filter predicates are commutative.
func BrowseWines(wines []entities.Wine, query string, wineType string, sortKey string) []entities.Wine {
	return SortWines(FilterWines(wines, query, wineType), sortKey)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
