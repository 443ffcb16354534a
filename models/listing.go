package models

// Listing is a normalized stay candidate, whether it came from the curated
// catalog or the synthetic generator. Beds and baths are floats because half
// baths are a thing.
type Listing struct {
	ID                 string     `json:"id"` // "CATALOG_..." or "MOCK_..."
	Name               string     `json:"name"`
	Destination        string     `json:"destination"`
	Coords             [2]float64 `json:"coords"` // lat, lng
	Beds               float64    `json:"beds"`
	Baths              float64    `json:"baths"`
	GuestsMax          int        `json:"guests_max"`
	PricePerNight      float64    `json:"price_per_night"`
	TotalPrice         float64    `json:"total_price,omitempty"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"review_count"`
	ImageURL           string     `json:"image_url"`
	URL                string     `json:"url"`
	Amenities          []string   `json:"amenities"`
	CancellationPolicy string     `json:"cancellation_policy"`
	Description        string     `json:"description"`
	Vibe               []string   `json:"vibe,omitempty"`
}

// Clone returns a deep copy so callers can mutate results without touching
// the shared catalog.
func (l Listing) Clone() Listing {
	out := l
	out.Amenities = append([]string(nil), l.Amenities...)
	out.Vibe = append([]string(nil), l.Vibe...)
	return out
}

// HasCoords reports whether the listing carries a usable location.
func (l Listing) HasCoords() bool {
	return l.Coords[0] != 0 || l.Coords[1] != 0
}
