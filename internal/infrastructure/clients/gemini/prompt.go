package gemini

import (
	"fmt"
	"strings"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

const promptTemplate = `
I'm planning a %[4]s trip to %[1]s from %[2]s to %[3]s.
Please provide detailed travel suggestions in the following exact JSON format (no additional text, just the JSON):

{
  "accommodations": [
    {
      "name": "Specific Hotel/Accommodation Name",
      "type": "hotel/airbnb/hostel/resort/boutique",
      "area": "Specific Neighborhood/District",
      "priceRange": "budget/mid-range/luxury",
      "description": "Detailed description with unique features",
      "amenities": ["wifi", "pool", "gym", "breakfast", "spa", "parking"],
      "rating": "4.5/5",
      "approximatePrice": "$100-200/night"
    }
  ],
  "activities": [
    {
      "name": "Specific Activity/Attraction Name",
      "type": "sightseeing/adventure/cultural/dining/shopping/entertainment",
      "duration": "1-2 hours/2-3 hours/half day/full day",
      "bestTime": "morning/afternoon/evening/anytime",
      "description": "Detailed description of what to expect",
      "estimatedCost": "Free/$10-20/$20-50/$50+",
      "location": "Specific address or area",
      "tips": "Practical tip for this activity"
    }
  ],
  "localTips": [
    "Specific practical tip about transportation",
    "Local custom or etiquette tip",
    "Money/payment tip",
    "Safety or health tip",
    "Best time to visit tip"
  ]
}

Requirements:
- Provide 4-6 real, specific accommodation options with actual names if possible
- Provide 10-15 diverse activity suggestions covering different interests including:
  * Cultural attractions (museums, landmarks, historical sites)
  * Dining experiences (restaurants, food markets, local cuisine)
  * Entertainment (shows, nightlife, events)
  * Sightseeing (viewpoints, tours, walks)
  * Shopping (markets, districts, unique stores)
  * Outdoor activities (parks, nature, sports)
- Include 5-7 practical local tips
- Focus on popular, well-reviewed places in %[1]s
- Consider the travel dates %[2]s to %[3]s
- Make suggestions specific to %[1]s, not generic
- Include at least 2-3 dining-related activities in the activities list
`

// BuildPrompt renders the suggestion prompt for a query. An empty trip
// type defaults to "leisure".
func BuildPrompt(query entities.SuggestionQuery) string {
	tripType := query.TripType
	if tripType == "" {
		tripType = "leisure"
	}
	return strings.TrimSpace(fmt.Sprintf(promptTemplate,
		query.Destination, query.StartDate, query.EndDate, tripType))
}
