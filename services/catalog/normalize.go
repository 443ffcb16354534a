package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"wayfarer/models"
)

// Base coordinates for destinations whose properties don't carry their own.
var destinationCoords = map[string][2]float64{
	"lake tahoe":       {39.0968, -120.0324},
	"tahoe city":       {39.1720, -120.1380},
	"south lake tahoe": {38.9399, -119.9772},
	"cancun":           {21.1619, -86.8515},
	"cancun mexico":    {21.1619, -86.8515},
}

var defaultCoords = [2]float64{37.7749, -122.4194}

func convertDestinationEntry(entry map[string]any) []models.Listing {
	base := resolveCoords(stringField(entry, "name"))

	props, _ := entry["properties"].([]any)
	listings := make([]models.Listing, 0, len(props))
	for _, raw := range props {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if listing, ok := normalizeProperty(entry, prop, base); ok {
			listings = append(listings, listing)
		}
	}
	return listings
}

// normalizeProperty flattens one heterogeneously-shaped catalog property
// into a Listing. Every field has a fallback; only a missing name makes the
// property unusable.
func normalizeProperty(entry, prop map[string]any, base [2]float64) (models.Listing, bool) {
	name := stringField(prop, "name")
	if name == "" {
		name = stringField(prop, "title")
	}
	if name == "" {
		return models.Listing{}, false
	}

	listingID := stringField(prop, "listing_id")
	if listingID == "" {
		listingID = stringField(prop, "property_id")
	}
	if listingID == "" {
		listingID = strings.ReplaceAll(strings.ToLower(name), " ", "-")
	}

	pricing := mapField(prop, "pricing")
	tripInfo := mapField(entry, "trip_overview")
	if tripInfo == nil {
		tripInfo = mapField(entry, "search_info")
	}

	numNights := extractNumeric(firstTruthy(pricing["num_nights"], tripInfo["num_nights"]), 1)
	if numNights < 1 {
		numNights = 1
	}
	nightly := extractNumeric(pricing["nightly_rate"], 0)
	total := extractNumeric(pricing["total_cost_usd"], 0)
	if nightly == 0 && total > 0 {
		nightly = math.Round(total / numNights)
	}
	if total == 0 && nightly > 0 {
		total = nightly * numNights
	}

	details := mapField(prop, "property_details")
	accommodation := mapField(prop, "accommodation")
	ratings := mapField(prop, "ratings")

	rating := extractNumeric(firstTruthy(prop["rating"], details["rating"], ratings["overall"]), 0)
	reviews := extractNumeric(firstTruthy(prop["num_reviews"], details["num_reviews"], ratings["num_reviews"]), 0)

	beds := extractNumeric(firstTruthy(
		prop["beds"], details["beds"], details["bedrooms"],
		accommodation["bed_configuration"], prop["bedrooms"],
	), 3)
	baths := extractNumeric(firstTruthy(
		prop["bathrooms"], details["bathrooms"], accommodation["bathrooms"],
	), 2)
	guestsMax := extractNumeric(firstTruthy(
		prop["max_guests"], details["max_guests"],
		accommodation["max_occupancy"], tripInfo["num_adults"],
	), 4)

	amenities := amenityList(firstTruthy(prop["amenities"], details["amenities"], accommodation["amenities"]))
	if len(amenities) > 12 {
		amenities = amenities[:12]
	}

	tags := mapField(prop, "tags")
	propertyType := stringField(prop, "property_type")
	destName := stringField(entry, "name")
	vibe := deriveVibeTags(tags, amenities, propertyType, destName)

	description := stringField(prop, "description")
	if description == "" {
		description = composeDescription(propertyType, amenities, tags)
	}

	imageURL := stringField(prop, "image_url")
	if imageURL == "" {
		city := strings.ToLower(strings.TrimSpace(strings.SplitN(destName, ",", 2)[0]))
		imageURL = fmt.Sprintf("https://source.unsplash.com/featured/?%s,travel,%d", city, rand.Intn(900)+100)
	}

	destination := destName
	if destination == "" {
		destination = stringField(entry, "region")
	}
	if destination == "" {
		destination = "Curated Destination"
	}

	cancellation := stringField(prop, "cancellation_policy")
	if cancellation == "" {
		cancellation = "Flexible"
	}

	return models.Listing{
		ID:          "CATALOG_" + listingID,
		Name:        name,
		Destination: destination,
		Coords: [2]float64{
			base[0] + jitter(0.02),
			base[1] + jitter(0.02),
		},
		Beds:               beds,
		Baths:              baths,
		GuestsMax:          int(guestsMax),
		PricePerNight:      nightly,
		TotalPrice:         total,
		Rating:             rating,
		ReviewCount:        int(reviews),
		ImageURL:           imageURL,
		URL:                stringField(prop, "url"),
		Amenities:          amenities,
		CancellationPolicy: cancellation,
		Description:        description,
		Vibe:               vibe,
	}, true
}

func deriveVibeTags(tags map[string]any, amenities []string, propertyType, destinationName string) []string {
	var result []string
	amenitiesText := strings.ToLower(strings.Join(amenities, " "))
	typeLower := strings.ToLower(propertyType)

	if boolField(tags, "all_inclusive") {
		result = append(result, "all-inclusive energy")
	}
	if boolField(tags, "adults_only") {
		result = append(result, "adults-only vibe")
	}
	if boolField(tags, "eco_certified") {
		result = append(result, "eco-certified stay")
	}

	if strings.Contains(amenitiesText, "spa") || strings.Contains(amenitiesText, "wellness") {
		result = append(result, "spa & wellness")
	}
	if strings.Contains(amenitiesText, "pool") || strings.Contains(amenitiesText, "infinity") {
		result = append(result, "poolside scene")
	}
	if strings.Contains(amenitiesText, "beach") || strings.Contains(amenitiesText, "ocean") || strings.Contains(amenitiesText, "shore") {
		result = append(result, "beach access")
	}
	if strings.Contains(amenitiesText, "fireplace") {
		result = append(result, "fireside evenings")
	}
	if strings.Contains(amenitiesText, "ski") || strings.Contains(amenitiesText, "heavenly") || strings.Contains(amenitiesText, "northstar") {
		result = append(result, "slope-ready")
	}
	if strings.Contains(typeLower, "resort") {
		result = append(result, "resort living")
	}

	if len(result) == 0 {
		city := strings.TrimSpace(strings.SplitN(destinationName, ",", 2)[0])
		result = append(result, strings.TrimSpace(city+" favorite"))
	}
	if len(result) > 3 {
		result = result[:3]
	}
	return result
}

func composeDescription(propertyType string, amenities []string, tags map[string]any) string {
	var segments []string
	if propertyType != "" {
		segments = append(segments, propertyType)
	}
	if boolField(tags, "all_inclusive") {
		segments = append(segments, "All-inclusive perks")
	}
	if boolField(tags, "adults_only") {
		segments = append(segments, "Adults-only atmosphere")
	}
	if len(amenities) > 0 {
		highlights := amenities
		if len(highlights) > 3 {
			highlights = highlights[:3]
		}
		segments = append(segments, "Highlights: "+strings.Join(highlights, ", "))
	}
	return strings.TrimSpace(strings.Join(segments, ". "))
}

func resolveCoords(destinationName string) [2]float64 {
	if destinationName == "" {
		return defaultCoords
	}
	primary := strings.TrimSpace(strings.ToLower(strings.SplitN(destinationName, ",", 2)[0]))
	if coords, ok := destinationCoords[primary]; ok {
		return coords
	}
	if coords, ok := destinationCoords[strings.TrimSpace(strings.ToLower(destinationName))]; ok {
		return coords
	}
	return defaultCoords
}

// jitter returns a uniform offset in [-span, span].
func jitter(span float64) float64 {
	return rand.Float64()*2*span - span
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func mapField(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

func boolField(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

// firstTruthy returns the first value that is present and non-empty in the
// loose sense the catalog data calls for: nil, "", 0, and false all count
// as absent.
func firstTruthy(values ...any) any {
	for _, v := range values {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t != "" {
				return v
			}
		case float64:
			if t != 0 {
				return v
			}
		case int:
			if t != 0 {
				return v
			}
		case bool:
			if t {
				return v
			}
		default:
			return v
		}
	}
	return nil
}

// extractNumeric coerces strings like "$1,200" or "2 queen beds" into their
// numeric value, falling back when nothing numeric is present.
func extractNumeric(value any, fallback float64) float64 {
	switch t := value.(type) {
	case nil:
		return fallback
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		var digits strings.Builder
		for _, ch := range t {
			if (ch >= '0' && ch <= '9') || ch == '.' {
				digits.WriteRune(ch)
			}
		}
		if digits.Len() == 0 {
			return fallback
		}
		n, err := strconv.ParseFloat(digits.String(), 64)
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}

func amenityList(value any) []string {
	switch t := value.(type) {
	case string:
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	default:
		return []string{}
	}
}
