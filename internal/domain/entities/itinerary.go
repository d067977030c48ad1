package entities

import "time"

// Itinerary item types; each tags the collection the item came from.
const (
	ItineraryAccommodation  = "accommodation"
	ItineraryTransportation = "transportation"
	ItineraryActivity       = "activity"
)

// ItineraryItem is one entry in the merged chronological view of a trip.
// Date is the item's anchor timestamp: check-in for accommodations,
// departure for transportation, start for activities.
type ItineraryItem struct {
	Type string      `json:"type"`
	Date time.Time   `json:"date"`
	Data interface{} `json:"data"`
}
