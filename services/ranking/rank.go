// File: services/ranking/rank.go
package ranking

import (
	"math"
	"sort"
	"strings"

	"wayfarer/models"
)

// Intent carries the facets of the trip request the scorer cares about.
// Zero values mean "not specified": guests falls back to 2, nights to 2,
// and a zero budget disables the budget term.
type Intent struct {
	Guests    int
	BudgetMax float64
	Nights    int
}

var airportCoords = map[string][2]float64{
	"SFO": {37.6213, -122.3790},
	"OAK": {37.7126, -122.2197},
	"LAX": {33.9416, -118.4085},
	"SAN": {32.7338, -117.1933},
}

type scoredListing struct {
	listing models.Listing
	score   float64
	total   float64
}

// Rank orders listings best-first against the intent. Listings that sleep
// fewer than the requested guests are dropped unless that would drop every
// candidate, in which case the whole pool is ranked. The input slice is not
// modified.
func Rank(listings []models.Listing, intent Intent, origin string) []models.Listing {
	originCoords, ok := airportCoords[strings.ToUpper(origin)]
	if !ok {
		originCoords = airportCoords["SFO"]
	}

	guests := intent.Guests
	if guests <= 0 {
		guests = 2
	}
	nights := intent.Nights
	if nights <= 0 {
		nights = 2
	}

	scored := make([]scoredListing, 0, len(listings))
	for _, listing := range listings {
		if listing.GuestsMax < guests {
			continue
		}
		scored = append(scored, scoreListing(listing, intent, originCoords, nights))
	}
	if len(scored) == 0 {
		for _, listing := range listings {
			scored = append(scored, scoreListing(listing, intent, originCoords, nights))
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].total < scored[j].total
	})

	ranked := make([]models.Listing, len(scored))
	for i, entry := range scored {
		ranked[i] = entry.listing
	}
	return ranked
}

func scoreListing(listing models.Listing, intent Intent, originCoords [2]float64, nights int) scoredListing {
	score := 100.0
	total := listing.PricePerNight * float64(nights)

	if intent.BudgetMax > 0 {
		if total > intent.BudgetMax {
			score -= math.Min(50, (total-intent.BudgetMax)/20)
		} else {
			score += (intent.BudgetMax - total) / 50
		}
	}

	score += (listing.Rating - 4.0) * 10
	score += math.Min(10, float64(listing.ReviewCount)/10)

	if listing.HasCoords() {
		distKM := haversine(originCoords[0], originCoords[1], listing.Coords[0], listing.Coords[1])
		if distKM < 200 {
			score += 10
		} else if distKM > 800 {
			score -= 5
		}
	}

	score += listing.Beds*2 + listing.Baths*3

	return scoredListing{listing: listing, score: score, total: total}
}

// haversine returns the great-circle distance between two points in km.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
