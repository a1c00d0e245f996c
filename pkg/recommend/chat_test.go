package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondRejectsEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		_, ok := Respond(input)
		assert.False(t, ok, "input %q should be rejected", input)
	}
}

func TestRespondKeywordReplies(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		replyContains string
	}{
		{"budget keyword", "I want something cheap", "budget-friendly"},
		{"luxury keyword", "show me a luxury bottle", "premium wines"},
		{"red keyword", "a bold red please", "Red wines"},
		{"white keyword", "something crisp and white", "White wines"},
		{"pairing keyword", "what pairs with my dinner", "Food pairing"},
		{"celebration keyword", "wine for a party", "celebrations"},
		{"romantic keyword", "a date night wine", "romantic occasions"},
		{"case-insensitive", "CHEAP WINE PLEASE", "budget-friendly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := Respond(tt.input)
			require.True(t, ok)
			assert.True(t, strings.Contains(res.Reply, tt.replyContains),
				"reply %q should contain %q", res.Reply, tt.replyContains)
		})
	}
}

func TestRespondFallback(t *testing.T) {
	res, ok := Respond("tell me something")
	require.True(t, ok)
	assert.Equal(t, fallbackReply, res.Reply)
	assert.Empty(t, res.Mood)
	assert.Empty(t, res.PriceBand)
}

func TestRespondFirstMatchWins(t *testing.T) {
	// "cheap red" hits both the budget and the red rule; the budget rule
	// comes first in the table.
	res, ok := Respond("a cheap red")
	require.True(t, ok)
	assert.Contains(t, res.Reply, "budget-friendly")
}

func TestRespondSideEffects(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		mood      string
		priceBand string
	}{
		{"cheap selects budget band", "something cheap", "", BandBudget},
		{"expensive selects luxury band", "an expensive gift", "", BandLuxury},
		{"celebration selects mood", "a celebration wine", MoodCelebration, ""},
		{"romantic selects mood", "romantic evening", MoodRomantic, ""},
		{"dinner selects mood", "wine for dinner", MoodDinner, ""},
		{"food selects dinner mood", "food friendly bottle", MoodDinner, ""},
		{"both dimensions at once", "cheap wine for a romantic dinner", MoodRomantic, BandBudget},
		{"celebration outranks romantic", "romantic celebration", MoodCelebration, ""},
		// "affordable" triggers the budget reply but not the band selection
		{"affordable has no side effect", "an affordable bottle", "", ""},
		// "party" triggers the celebration reply but selects no mood
		{"party has no side effect", "wine for a party", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, ok := Respond(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.mood, res.Mood)
			assert.Equal(t, tt.priceBand, res.PriceBand)
		})
	}
}

func TestRespondSelectionsAreValidLabels(t *testing.T) {
	res, ok := Respond("expensive wine for a celebration dinner")
	require.True(t, ok)

	_, found := MoodByLabel(res.Mood)
	assert.True(t, found)
	_, found = PriceBandByLabel(res.PriceBand)
	assert.True(t, found)
}
