package recommend

// Mood is a named predicate bucket used to narrow recommendations. The
// keywords are display hints only; the actual predicate lives in the engine.
type Mood struct {
	Label    string
	Keywords []string
}

// PriceBand is a named inclusive range over the price attribute. The upper
// sentinel 9999 stands in for "unbounded".
type PriceBand struct {
	Label string
	Min   float64
	Max   float64
}

const (
	MoodComfort     = "Comfort"
	MoodCelebration = "Celebration"
	MoodRelaxing    = "Relaxing"
	MoodRomantic    = "Romantic"
	MoodDinner      = "Dinner"
	MoodSummer      = "Summer"
)

var Moods = []Mood{
	{Label: MoodComfort, Keywords: []string{"smooth", "mellow", "comforting"}},
	{Label: MoodCelebration, Keywords: []string{"premium", "special", "festive"}},
	{Label: MoodRelaxing, Keywords: []string{"light", "easy", "casual"}},
	{Label: MoodRomantic, Keywords: []string{"elegant", "sophisticated", "intimate"}},
	{Label: MoodDinner, Keywords: []string{"food pairing", "bold", "complex"}},
	{Label: MoodSummer, Keywords: []string{"refreshing", "crisp", "light"}},
}

const (
	BandBudget   = "Budget ($0-$30)"
	BandMidRange = "Mid-range ($30-$80)"
	BandPremium  = "Premium ($80-$200)"
	BandLuxury   = "Luxury ($200+)"
)

var PriceBands = []PriceBand{
	{Label: BandBudget, Min: 0, Max: 30},
	{Label: BandMidRange, Min: 30, Max: 80},
	{Label: BandPremium, Min: 80, Max: 200},
	{Label: BandLuxury, Min: 200, Max: 9999},
}

func MoodByLabel(label string) (Mood, bool) {
	for _, m := range Moods {
		if m.Label == label {
			return m, true
		}
	}
	return Mood{}, false
}

func PriceBandByLabel(label string) (PriceBand, bool) {
	for _, b := range PriceBands {
		if b.Label == label {
			return b, true
		}
	}
	return PriceBand{}, false
}
