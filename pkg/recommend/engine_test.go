package recommend

import (
	"SipMate-Backend/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func fPtr(f float64) *float64 { return &f }

func names(ws []entities.Wine) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func catalog() []entities.Wine {
	return []entities.Wine{
		{
			Name:              "Velvet Merlot",
			Type:              "red",
			Price:             fPtr(25),
			Rating:            fPtr(4.1),
			AlcoholPercentage: fPtr(13.5),
			Description:       strPtr("A smooth, easy-drinking red."),
		},
		{
			Name:              "Grand Cru Champagne",
			Type:              "sparkling",
			Price:             fPtr(250),
			Rating:            fPtr(4.8),
			AlcoholPercentage: fPtr(12.0),
			Region:            strPtr("Champagne, France"),
		},
		{
			Name:              "Coastal Sauvignon Blanc",
			Type:              "white",
			Price:             fPtr(15),
			Rating:            fPtr(4.3),
			AlcoholPercentage: fPtr(12.5),
		},
		{
			Name:              "Estate Cabernet",
			Type:              "red",
			Price:             fPtr(150),
			Rating:            fPtr(4.5),
			AlcoholPercentage: fPtr(14.5),
			FoodPairing:       strPtr("Steak, lamb"),
		},
		{
			Name:  "Unpriced Table Red",
			Type:  "red",
			Price: nil,
		},
	}
}

func TestRecommendNoSelectionRanksByRating(t *testing.T) {
	got := Recommend(catalog(), "", "")
	assert.Equal(t, []string{
		"Grand Cru Champagne",
		"Estate Cabernet",
		"Coastal Sauvignon Blanc",
		"Velvet Merlot",
		"Unpriced Table Red",
	}, names(got))
}

func TestRecommendCapsAtSix(t *testing.T) {
	wines := make([]entities.Wine, 0, 10)
	for i := 0; i < 10; i++ {
		wines = append(wines, entities.Wine{Name: "Wine", Type: "red", Rating: fPtr(4.0)})
	}
	got := Recommend(wines, "", "")
	assert.Len(t, got, RecommendationCap)
}

func TestRecommendPriceBandInclusive(t *testing.T) {
	got := Recommend(catalog(), "", BandBudget)
	// missing price counts as zero, so the unpriced red falls in the budget band
	assert.ElementsMatch(t, []string{"Velvet Merlot", "Coastal Sauvignon Blanc", "Unpriced Table Red"}, names(got))

	got = Recommend(catalog(), "", BandLuxury)
	assert.Equal(t, []string{"Grand Cru Champagne"}, names(got))

	// a band with a positive lower bound excludes unpriced wines
	got = Recommend(catalog(), "", BandPremium)
	assert.Equal(t, []string{"Estate Cabernet"}, names(got))
}

func TestRecommendMoodPredicates(t *testing.T) {
	tests := []struct {
		mood     string
		expected []string
	}{
		{MoodComfort, []string{"Velvet Merlot"}},
		{MoodCelebration, []string{"Grand Cru Champagne", "Estate Cabernet"}},
		// the unpriced red has no alcohol figure, which compares as zero
		{MoodRelaxing, []string{"Coastal Sauvignon Blanc", "Grand Cru Champagne", "Unpriced Table Red"}},
		{MoodRomantic, []string{"Grand Cru Champagne"}},
		{MoodDinner, []string{"Estate Cabernet"}},
		{MoodSummer, []string{"Coastal Sauvignon Blanc"}},
	}

	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			got := Recommend(catalog(), tt.mood, "")
			assert.ElementsMatch(t, tt.expected, names(got))
		})
	}
}

func TestRecommendMoodAndBandIntersect(t *testing.T) {
	// Estate Cabernet qualifies for Celebration by rating but its price of
	// 150 sits outside the Luxury band, so only the Champagne survives.
	got := Recommend(catalog(), MoodCelebration, BandLuxury)
	assert.Equal(t, []string{"Grand Cru Champagne"}, names(got))
}

func TestRecommendCelebrationNeedsExplicitRating(t *testing.T) {
	wines := []entities.Wine{
		{Name: "Cheap Unrated", Type: "red", Price: fPtr(10)},
	}
	got := Recommend(wines, MoodCelebration, "")
	assert.Empty(t, got)
}

func TestRecommendUnknownLabelsSkipFilters(t *testing.T) {
	all := Recommend(catalog(), "", "")
	assert.Equal(t, names(all), names(Recommend(catalog(), "Adventurous", "Mid ($1-$2)")))
}

func TestRecommendDoesNotMutateInput(t *testing.T) {
	wines := catalog()
	original := names(wines)
	Recommend(wines, MoodDinner, BandPremium)
	assert.Equal(t, original, names(wines))
}

func TestRecommendStableOnEqualRatings(t *testing.T) {
	wines := []entities.Wine{
		{Name: "First", Type: "red", Rating: fPtr(4.0)},
		{Name: "Second", Type: "red", Rating: fPtr(4.0)},
		{Name: "Third", Type: "red", Rating: fPtr(4.0)},
	}
	got := Recommend(wines, "", "")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"First", "Second", "Third"}, names(got))
}

func TestTaxonomyLookups(t *testing.T) {
	mood, ok := MoodByLabel(MoodComfort)
	require.True(t, ok)
	assert.Equal(t, MoodComfort, mood.Label)

	_, ok = MoodByLabel("Moody")
	assert.False(t, ok)

	band, ok := PriceBandByLabel(BandMidRange)
	require.True(t, ok)
	assert.Equal(t, 30.0, band.Min)
	assert.Equal(t, 80.0, band.Max)

	_, ok = PriceBandByLabel("Free ($0)")
	assert.False(t, ok)
}
