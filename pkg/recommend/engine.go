package recommend

import (
	"SipMate-Backend/entities"
	"sort"
	"strings"
)

// RecommendationCap bounds the ranked output.
const RecommendationCap = 6

// Recommend narrows the catalog snapshot by the selected price band and
// mood, ranks the survivors by rating descending and caps the result.
// Empty labels skip that filter; an unknown label behaves like no
// selection. The sort is stable, so equally rated wines keep their
// snapshot order. The input slice is never mutated.
func Recommend(wines []entities.Wine, moodLabel string, bandLabel string) []entities.Wine {
	filtered := make([]entities.Wine, 0, len(wines))

	band, hasBand := PriceBandByLabel(bandLabel)
	predicate, hasMood := moodPredicate(moodLabel)

	for _, w := range wines {
		if hasBand {
			price := floatOrZero(w.Price)
			if price < band.Min || price > band.Max {
				continue
			}
		}
		if hasMood && !predicate(w) {
			continue
		}
		filtered = append(filtered, w)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return floatOrZero(filtered[i].Rating) > floatOrZero(filtered[j].Rating)
	})

	if len(filtered) > RecommendationCap {
		filtered = filtered[:RecommendationCap]
	}
	return filtered
}

func moodPredicate(label string) (func(entities.Wine) bool, bool) {
	switch label {
	case MoodComfort:
		return func(w entities.Wine) bool {
			return w.Type == "red" &&
				(containsFold(w.Description, "smooth") || containsFold(w.FoodPairing, "comfort"))
		}, true
	case MoodCelebration:
		return func(w entities.Wine) bool {
			return floatOrZero(w.Price) > 100 || (w.Rating != nil && *w.Rating >= 4.5)
		}, true
	case MoodRelaxing:
		return func(w entities.Wine) bool {
			return w.Type == "white" || floatOrZero(w.AlcoholPercentage) < 13
		}, true
	case MoodRomantic:
		return func(w entities.Wine) bool {
			return containsFold(w.Region, "france") || containsFold(w.Description, "elegant")
		}, true
	case MoodDinner:
		return func(w entities.Wine) bool {
			return w.FoodPairing != nil && len(*w.FoodPairing) > 0
		}, true
	case MoodSummer:
		return func(w entities.Wine) bool {
			return w.Type == "white" || containsFold(w.FoodPairing, "light")
		}, true
	}
	return nil, false
}

func containsFold(field *string, substr string) bool {
	if field == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*field), substr)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
