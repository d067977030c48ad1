package services

import (
	"fmt"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// fallbackSuggestions returns the canned suggestion set used when the
// model is unavailable or its reply could not be parsed.
func fallbackSuggestions(destination string) *entities.SuggestionSet {
	return &entities.SuggestionSet{
		Accommodations: []entities.SuggestedAccommodation{
			{
				Name:        fmt.Sprintf("Central Hotel %s", destination),
				Type:        "hotel",
				Area:        "City Center",
				PriceRange:  "mid-range",
				Description: "Centrally located hotel with modern amenities",
				Amenities:   []string{"wifi", "breakfast", "concierge"},
			},
			{
				Name:        fmt.Sprintf("Budget Inn %s", destination),
				Type:        "hostel",
				Area:        "Downtown",
				PriceRange:  "budget",
				Description: "Affordable accommodation for budget travelers",
				Amenities:   []string{"wifi", "shared kitchen"},
			},
			{
				Name:        fmt.Sprintf("Luxury Resort %s", destination),
				Type:        "resort",
				Area:        "Premium District",
				PriceRange:  "luxury",
				Description: "High-end resort with premium facilities",
				Amenities:   []string{"wifi", "pool", "spa", "gym", "restaurant"},
			},
		},
		Activities: []entities.SuggestedActivity{
			{
				Name:          fmt.Sprintf("%s City Tour", destination),
				Type:          "sightseeing",
				Duration:      "3-4 hours",
				BestTime:      "morning",
				Description:   "Explore the main attractions and landmarks",
				EstimatedCost: "Medium",
			},
			{
				Name:          "Local Food Tour",
				Type:          "dining",
				Duration:      "2-3 hours",
				BestTime:      "evening",
				Description:   "Taste authentic local cuisine",
				EstimatedCost: "Medium",
			},
			{
				Name:          "Cultural Museum Visit",
				Type:          "cultural",
				Duration:      "2 hours",
				BestTime:      "afternoon",
				Description:   "Learn about local history and culture",
				EstimatedCost: "Low",
			},
			{
				Name:          "Shopping District",
				Type:          "shopping",
				Duration:      "2-4 hours",
				BestTime:      "afternoon",
				Description:   "Browse local markets and shops",
				EstimatedCost: "Variable",
			},
			{
				Name:          "Scenic Viewpoint",
				Type:          "sightseeing",
				Duration:      "1-2 hours",
				BestTime:      "sunset",
				Description:   "Enjoy panoramic views of the city",
				EstimatedCost: "Free",
			},
		},
		LocalTips: []string{
			"Check local transportation options for easy getting around",
			"Learn a few basic phrases in the local language",
			"Research local customs and etiquette",
			"Keep emergency contact numbers handy",
		},
		Source: entities.SuggestionSourceFallback,
	}
}
