package recommend

import "strings"

// Greeting opens every transcript.
const Greeting = "Hello! I'm your wine assistant. Tell me your mood, budget, or what you're looking for, and I'll recommend the perfect wine for you. 🍷"

// ChatResult carries the canned reply plus the filter selections a message
// auto-applies. Empty Mood/PriceBand means the message selected nothing for
// that dimension.
type ChatResult struct {
	Reply     string
	Mood      string
	PriceBand string
}

type chatRule struct {
	keywords []string
	reply    string
}

// Rules are tested in order against the lower-cased input; first match wins.
var chatRules = []chatRule{
	{
		keywords: []string{"budget", "cheap", "affordable"},
		reply:    "For budget-friendly options, I recommend looking at wines under $30. These can still offer great quality and flavor! Try filtering by the Budget price range. 💰",
	},
	{
		keywords: []string{"expensive", "premium", "luxury"},
		reply:    "For premium wines, look at our luxury selection over $200. These wines offer exceptional quality and are perfect for special occasions! 🥂",
	},
	{
		keywords: []string{"red", "bold"},
		reply:    "Red wines are perfect for bold flavors! Look for wines with good tannins and rich flavors. Try the 'Dinner' mood for food-pairing reds. 🍷",
	},
	{
		keywords: []string{"white", "light", "crisp"},
		reply:    "White wines are refreshing and versatile! Perfect for summer days or lighter meals. Try the 'Summer' or 'Relaxing' moods. 🥂",
	},
	{
		keywords: []string{"food", "pairing", "dinner"},
		reply:    "Food pairing is essential! Try the 'Dinner' mood to see wines with detailed food pairing suggestions. What type of cuisine are you planning? 🍽️",
	},
	{
		keywords: []string{"celebration", "party", "special"},
		reply:    "For celebrations, choose something special! Try the 'Celebration' mood for premium wines perfect for memorable moments. 🎉",
	},
	{
		keywords: []string{"romantic", "date"},
		reply:    "For romantic occasions, try elegant wines with sophistication. The 'Romantic' mood will show you perfect wines for intimate moments. 💕",
	},
}

const fallbackReply = "I'd love to help you find the perfect wine! Try selecting a mood or price range above, or tell me more about what you're looking for - budget, occasion, or flavor preferences? 🤔🍷"

// Respond maps a user message to exactly one canned reply and the filter
// selections it implies. The second return value is false for
// empty/whitespace-only input, which is rejected before any transcript
// entry is made.
func Respond(input string) (ChatResult, bool) {
	if strings.TrimSpace(input) == "" {
		return ChatResult{}, false
	}

	message := strings.ToLower(input)
	result := ChatResult{Reply: fallbackReply}

	for _, rule := range chatRules {
		if containsAny(message, rule.keywords) {
			result.Reply = rule.reply
			break
		}
	}

	// Filter side effects follow the original app's auto-select rules, which
	// use a narrower keyword set than the replies.
	if containsAny(message, []string{"budget", "cheap"}) {
		result.PriceBand = BandBudget
	} else if containsAny(message, []string{"premium", "expensive"}) {
		result.PriceBand = BandLuxury
	}

	if strings.Contains(message, "celebration") {
		result.Mood = MoodCelebration
	} else if strings.Contains(message, "romantic") {
		result.Mood = MoodRomantic
	} else if containsAny(message, []string{"dinner", "food"}) {
		result.Mood = MoodDinner
	}

	return result, true
}

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}
