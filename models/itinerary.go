package models

// ItineraryDates bounds the stay.
type ItineraryDates struct {
	CheckIn  string `json:"check_in"`  // ISO date YYYY-MM-DD
	CheckOut string `json:"check_out"` // ISO date YYYY-MM-DD
}

// Stay is the property block inside an itinerary.
type Stay struct {
	Name               string   `json:"name"`
	Beds               float64  `json:"beds"`
	Baths              float64  `json:"baths"`
	PricePerNight      float64  `json:"price_per_night"`
	PriceTotal         float64  `json:"price_total"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	ImageURL           string   `json:"image_url"`
	URL                string   `json:"url"`
	Amenities          []string `json:"amenities"`
	CancellationPolicy string   `json:"cancellation_policy"`
	GuestsMax          int      `json:"guests_max"`
}

// Itinerary is the single recommendation presented to the traveler.
type Itinerary struct {
	ID              string         `json:"id"` // matches the chosen listing id
	Destination     string         `json:"destination"`
	Name            string         `json:"name"`
	Dates           ItineraryDates `json:"dates"`
	Stay            Stay           `json:"stay"`
	TotalPrice      float64        `json:"total_price"`
	Currency        string         `json:"currency"`
	Nights          int            `json:"nights"`
	WhyThisProperty string         `json:"why_this_property"`
}

// TravelerProfile is the simulated persona the composer personalizes copy
// with. Real profiles are out of scope; these are fixed demo values.
type TravelerProfile struct {
	HomeCity      string `json:"home_city"`
	AverageBudget string `json:"average_budget"`
	TravelParty   string `json:"travel_party"`
	TripStyle     string `json:"trip_style"`
}
