package model

// Destination is a single row of the loaded dataset.
type Destination struct {
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Zone     string  `json:"zone"`
	Type     string  `json:"type"`
	Fee      float64 `json:"entrance_fee_inr"`
	Rating   float64 `json:"google_review_rating"`
	BestTime string  `json:"best_time_to_visit"`
	DSLR     string  `json:"dslr_allowed"` // "Yes", "No" or empty
}

// Criteria holds one recommendation query. Zero values mean "no constraint";
// MaxFee is a pointer because a ceiling of 0 (free entry only) is a real filter.
type Criteria struct {
	Zone          string
	Type          string
	MaxFee        *float64
	DSLR          string
	IncludeNearby bool
}

// NearbyPlace is the projection of a destination shown in a nearby list.
type NearbyPlace struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Rating float64 `json:"rating"`
}

// Result is one recommendation as presented to the user.
type Result struct {
	Name     string        `json:"name"`
	City     string        `json:"city"`
	Rating   float64       `json:"rating"`
	Fee      float64       `json:"entrance_fee_inr"`
	BestTime string        `json:"best_time_to_visit"`
	Nearby   []NearbyPlace `json:"nearby,omitempty"`
}

// Coordinates is a geocoded point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TravelEstimate is the output of the travel-cost pipeline.
type TravelEstimate struct {
	From       string             `json:"from"`
	To         string             `json:"to"`
	FromCoords Coordinates        `json:"from_coords"`
	ToCoords   Coordinates        `json:"to_coords"`
	DistanceKm float64            `json:"distance_km"`
	Costs      map[string]float64 `json:"costs"` // mode label -> ₹
}
