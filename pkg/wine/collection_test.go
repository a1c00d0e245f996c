package wine

import (
	"SipMate-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func wineNames(ws []entities.Wine) []string {
	names := make([]string, 0, len(ws))
	for _, w := range ws {
		names = append(names, w.Name)
	}
	return names
}

func testCatalog() []entities.Wine {
	return []entities.Wine{
		{
			Name:        "Château Margaux",
			Type:        "red",
			Winery:      strPtr("Château Margaux"),
			Region:      strPtr("Bordeaux, France"),
			Year:        intPtr(2015),
			Price:       floatPtr(650),
			Rating:      floatPtr(4.9),
			FoodPairing: strPtr("Red meat, game"),
		},
		{
			Name:   "Albariño Rías Baixas",
			Type:   "white",
			Winery: strPtr("Bodegas Martín Códax"),
			Region: strPtr("Galicia, Spain"),
			Year:   intPtr(2022),
			Price:  floatPtr(18),
			Rating: floatPtr(4.2),
		},
		{
			Name:        "Old Vine Zinfandel",
			Type:        "red",
			Winery:      strPtr("Ridge Vineyards"),
			Region:      strPtr("California, USA"),
			Year:        intPtr(2019),
			Price:       floatPtr(35),
			FoodPairing: strPtr("Barbecue, comfort food"),
		},
		{
			Name:   "Prosecco Superiore",
			Type:   "sparkling",
			Region: strPtr("Veneto, Italy"),
			Price:  floatPtr(22),
			Rating: floatPtr(4.0),
		},
		{
			Name: "Mystery Rosé",
			Type: "rosé",
		},
	}
}

func TestFilterWinesByQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "matches name case-insensitively",
			query:    "zinfandel",
			expected: []string{"Old Vine Zinfandel"},
		},
		{
			name:     "matches winery",
			query:    "ridge",
			expected: []string{"Old Vine Zinfandel"},
		},
		{
			name:     "matches region",
			query:    "france",
			expected: []string{"Château Margaux"},
		},
		{
			name:     "matches food pairing",
			query:    "barbecue",
			expected: []string{"Old Vine Zinfandel"},
		},
		{
			name:     "matches type",
			query:    "sparkling",
			expected: []string{"Prosecco Superiore"},
		},
		{
			name:     "whitespace-only query matches everything",
			query:    "   ",
			expected: []string{"Château Margaux", "Albariño Rías Baixas", "Old Vine Zinfandel", "Prosecco Superiore", "Mystery Rosé"},
		},
		{
			name:     "no match yields empty result",
			query:    "tequila",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWines(testCatalog(), tt.query, TypeAll)
			assert.Equal(t, tt.expected, wineNames(got))
		})
	}
}

func TestFilterWinesByType(t *testing.T) {
	catalog := testCatalog()

	reds := FilterWines(catalog, "", "red")
	assert.Equal(t, []string{"Château Margaux", "Old Vine Zinfandel"}, wineNames(reds))

	all := FilterWines(catalog, "", TypeAll)
	assert.Len(t, all, len(catalog))

	// empty type behaves like the all sentinel
	assert.Equal(t, wineNames(all), wineNames(FilterWines(catalog, "", "")))
}

func TestFilterWinesMissingFieldsNeverMatch(t *testing.T) {
	// Mystery Rosé has no winery, region or pairing; a query that would only
	// hit those fields must not surface it.
	got := FilterWines(testCatalog(), "spain", TypeAll)
	assert.Equal(t, []string{"Albariño Rías Baixas"}, wineNames(got))
}

func TestFilterWinesIdempotent(t *testing.T) {
	once := FilterWines(testCatalog(), "red", "red")
	twice := FilterWines(once, "red", "red")
	assert.Equal(t, once, twice)
}

func TestFilterWinesPredicatesCommute(t *testing.T) {
	catalog := testCatalog()

	queryFirst := FilterWines(FilterWines(catalog, "a", TypeAll), "", "red")
	typeFirst := FilterWines(FilterWines(catalog, "", "red"), "a", TypeAll)
	combined := FilterWines(catalog, "a", "red")

	assert.Equal(t, combined, queryFirst)
	assert.Equal(t, combined, typeFirst)
}

func TestFilterWinesDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	original := wineNames(catalog)
	FilterWines(catalog, "zin", "red")
	assert.Equal(t, original, wineNames(catalog))
}

func TestSortWines(t *testing.T) {
	tests := []struct {
		name     string
		sortKey  string
		expected []string
	}{
		{
			name:     "name ascending",
			sortKey:  SortNameAsc,
			expected: []string{"Albariño Rías Baixas", "Château Margaux", "Mystery Rosé", "Old Vine Zinfandel", "Prosecco Superiore"},
		},
		{
			name:     "name descending",
			sortKey:  SortNameDesc,
			expected: []string{"Prosecco Superiore", "Old Vine Zinfandel", "Mystery Rosé", "Château Margaux", "Albariño Rías Baixas"},
		},
		{
			name:    "rating descending, missing rating sorts as zero",
			sortKey: SortRatingDesc,
			expected: []string{"Château Margaux", "Albariño Rías Baixas", "Prosecco Superiore", "Old Vine Zinfandel", "Mystery Rosé"},
		},
		{
			name:    "price ascending, missing price sorts as zero",
			sortKey: SortPriceAsc,
			expected: []string{"Mystery Rosé", "Albariño Rías Baixas", "Prosecco Superiore", "Old Vine Zinfandel", "Château Margaux"},
		},
		{
			name:    "year descending, missing year sorts as zero",
			sortKey: SortYearDesc,
			expected: []string{"Albariño Rías Baixas", "Old Vine Zinfandel", "Château Margaux", "Prosecco Superiore", "Mystery Rosé"},
		},
		{
			name:     "unknown key keeps snapshot order",
			sortKey:  "bogus",
			expected: []string{"Château Margaux", "Albariño Rías Baixas", "Old Vine Zinfandel", "Prosecco Superiore", "Mystery Rosé"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortWines(testCatalog(), tt.sortKey)
			assert.Equal(t, tt.expected, wineNames(got))
		})
	}
}

func TestSortWinesStableOnEqualKeys(t *testing.T) {
	// Zinfandel and Mystery Rosé both have no rating; stable sort must keep
	// their relative snapshot order on the rating key.
	got := SortWines(testCatalog(), SortRatingAsc)
	require.Len(t, got, 5)
	assert.Equal(t, "Old Vine Zinfandel", got[0].Name)
	assert.Equal(t, "Mystery Rosé", got[1].Name)
}

func TestSortWinesIsAPermutation(t *testing.T) {
	catalog := testCatalog()
	for _, key := range []string{SortNameAsc, SortNameDesc, SortRatingAsc, SortRatingDesc, SortPriceAsc, SortPriceDesc, SortYearAsc, SortYearDesc, SortType} {
		got := SortWines(catalog, key)
		assert.ElementsMatch(t, wineNames(catalog), wineNames(got), "sort key %s", key)
	}
}

func TestSortWinesDoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	original := wineNames(catalog)
	SortWines(catalog, SortNameDesc)
	assert.Equal(t, original, wineNames(catalog))
}

func TestBrowseWinesFilterThenSort(t *testing.T) {
	got := BrowseWines(testCatalog(), "", "red", SortPriceAsc)
	assert.Equal(t, []string{"Old Vine Zinfandel", "Château Margaux"}, wineNames(got))
}

func TestBrowseWinesQueryAndTypeCombine(t *testing.T) {
	// "a" matches every name but only the reds survive the type filter.
	got := BrowseWines(testCatalog(), "a", "red", SortNameAsc)
	assert.Equal(t, []string{"Château Margaux", "Old Vine Zinfandel"}, wineNames(got))
}
