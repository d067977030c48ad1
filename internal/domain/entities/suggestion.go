package entities

import "time"

// Suggestion provenance values.
const (
	SuggestionSourceGemini   = "gemini"
	SuggestionSourceFallback = "fallback"
)

// SuggestedAccommodation is one lodging recommendation from the
// suggestion service. Fields mirror the prompt's requested schema; the
// model may omit any of them.
type SuggestedAccommodation struct {
	Name             string   `json:"name"`
	Type             string   `json:"type,omitempty"`
	Area             string   `json:"area,omitempty"`
	PriceRange       string   `json:"priceRange,omitempty"`
	Description      string   `json:"description,omitempty"`
	Amenities        []string `json:"amenities,omitempty"`
	Rating           string   `json:"rating,omitempty"`
	ApproximatePrice string   `json:"approximatePrice,omitempty"`
}

// SuggestedActivity is one activity recommendation.
type SuggestedActivity struct {
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Duration      string `json:"duration,omitempty"`
	BestTime      string `json:"bestTime,omitempty"`
	Description   string `json:"description,omitempty"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
	Location      string `json:"location,omitempty"`
	Tips          string `json:"tips,omitempty"`
}

// SuggestionSet is a full batch of travel suggestions for a destination,
// tagged with its provenance so callers can tell real model output from
// the canned fallback.
type SuggestionSet struct {
	Accommodations []SuggestedAccommodation `json:"accommodations"`
	Activities     []SuggestedActivity      `json:"activities"`
	LocalTips      []string                 `json:"localTips"`
	Source         string                   `json:"source"`
}

// SuggestionQuery is the input to the suggestion service.
type SuggestionQuery struct {
	Destination string
	StartDate   string
	EndDate     string
	TripType    string
}

// SuggestionResult is what the travel suggestion endpoint returns: the
// set plus any non-fatal errors collected while producing it.
type SuggestionResult struct {
	Destination string         `json:"destination"`
	Suggestions *SuggestionSet `json:"suggestions"`
	Errors      []string       `json:"errors,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}
