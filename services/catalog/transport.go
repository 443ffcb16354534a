package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"wayfarer/models"
)

type routeEntry struct {
	origin      string
	destination string
	options     []models.TransportOption
}

var staticRoutes = []routeEntry{
	{
		origin:      "Berkeley, CA",
		destination: "Lake Tahoe",
		options: []models.TransportOption{
			{
				Label:      "Drive via I-80 E",
				Mode:       "car",
				Duration:   "3 hr 30 min",
				Distance:   "186 miles",
				Cost:       "≈ $55 gas + $7 bridge toll",
				Highlights: "Fastest door-to-door option with scenic summit views.",
			},
			{
				Label:      "Amtrak Capitol Corridor + Tahoe Shuttle",
				Mode:       "train_bus",
				Duration:   "4 hr 15 min",
				Distance:   "Rail to Truckee, shuttle to Tahoe",
				Cost:       "$48 saver fare",
				Highlights: "Wi-Fi on the train, skip driving in snow.",
			},
			{
				Label:      "Lux Coach to Heavenly Village",
				Mode:       "bus",
				Duration:   "4 hr 40 min",
				Distance:   "Door-to-door charter",
				Cost:       "$79 round-trip",
				Highlights: "Includes snacks and gear storage; relax the entire way.",
			},
		},
	},
}

// TransportIndex resolves ground and air options between an origin city and
// a trip destination. Routes come from an optional data file plus a small
// built-in table; lookups never fail, they just come back empty.
type TransportIndex struct {
	entries []routeEntry
}

// NewTransportIndex loads routes from the given JSON file. A missing or
// malformed file yields a usable index backed only by the static table,
// along with the error for the caller to log.
func NewTransportIndex(path string) (*TransportIndex, error) {
	idx := &TransportIndex{}

	raw, err := os.ReadFile(path)
	if err != nil {
		return idx, fmt.Errorf("reading transport data %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return idx, fmt.Errorf("parsing transport data %s: %w", path, err)
	}

	idx.loadTripDocument(doc)
	return idx, nil
}

// Options returns the best-known route set for the pair. Loaded routes are
// preferred over the static table, and destination matching is loose in
// both directions so "Lake Tahoe" finds "Tahoe City · Lake Tahoe".
func (t *TransportIndex) Options(origin, destination string) []models.TransportOption {
	originLower := strings.ToLower(origin)
	destLower := strings.ToLower(destination)

	for _, entry := range t.entries {
		if strings.ToLower(entry.origin) == originLower && looseMatch(entry.destination, destLower) {
			return entry.options
		}
	}
	for _, entry := range t.entries {
		if looseMatch(entry.destination, destLower) {
			return entry.options
		}
	}
	for _, entry := range staticRoutes {
		if strings.ToLower(entry.origin) == originLower && strings.Contains(destLower, strings.ToLower(entry.destination)) {
			return entry.options
		}
	}
	if idx := strings.Index(destination, " ·"); idx >= 0 {
		primary := destination[:idx]
		for _, entry := range staticRoutes {
			if entry.origin == origin && entry.destination == primary {
				return entry.options
			}
		}
	}
	return nil
}

func looseMatch(key, destLower string) bool {
	keyLower := strings.ToLower(key)
	return strings.Contains(destLower, keyLower) || strings.Contains(keyLower, destLower)
}

// loadTripDocument converts one trip-overview document into route entries,
// registered under every spelling variant of the origin and destination.
func (t *TransportIndex) loadTripDocument(doc map[string]any) {
	overview := mapField(doc, "trip_overview")
	origin := stringField(overview, "departure_city")
	destination := stringField(overview, "destination")
	if origin == "" || destination == "" {
		return
	}

	var options []models.TransportOption

	if flight := selectRecommended(listField(mapField(doc, "flight_options"), "outbound_flights"), nil); flight != nil {
		var highlightParts []string
		if notes := stringField(flight, "notes"); notes != "" {
			highlightParts = append(highlightParts, notes)
		}
		if checked := stringField(mapField(flight, "baggage"), "checked"); checked != "" {
			highlightParts = append(highlightParts, "Checked bags: "+checked)
		}
		highlights := "Fastest air option."
		if len(highlightParts) > 0 {
			highlights = strings.Join(highlightParts, " / ")
		}
		label := strings.TrimSpace(stringOrDefault(flight, "airline", "Flight") + " " + stringField(flight, "route"))
		options = append(options, models.TransportOption{
			Label:      label,
			Mode:       "flight",
			Duration:   stringField(flight, "duration"),
			Cost:       formatCost(flight["price_total"]),
			Highlights: highlights,
		})
	}

	toAirport := mapField(doc, "berkeley_to_airport")
	bayAreaLeg := selectRecommended(
		listField(toAirport, "to_oakland_airport"),
		selectRecommended(listField(toAirport, "to_san_francisco_airport"), nil),
	)
	if bayAreaLeg != nil {
		cost := firstTruthy(bayAreaLeg["total_cost"], bayAreaLeg["cost_per_person"])
		notes := stringField(bayAreaLeg, "instructions")
		if notes == "" {
			notes = stringOrDefault(bayAreaLeg, "notes", "Direct to the terminal.")
		}
		options = append(options, models.TransportOption{
			Label:      stringOrDefault(bayAreaLeg, "type", "Ground transfer") + " to the airport",
			Mode:       "ground",
			Duration:   stringField(bayAreaLeg, "duration"),
			Cost:       formatCost(cost),
			Highlights: notes,
		})
	}

	if arrivalLeg := selectRecommended(orderedValues(mapField(doc, "cancun_airport_to_hotels")), nil); arrivalLeg != nil {
		cost := firstTruthy(arrivalLeg["cost_roundtrip"], arrivalLeg["cost_per_person_roundtrip"])
		notes := stringField(arrivalLeg, "notes")
		if notes == "" {
			notes = stringOrDefault(arrivalLeg, "advance_booking", "Pre-book recommended.")
		}
		options = append(options, models.TransportOption{
			Label:      stringOrDefault(arrivalLeg, "provider", "Transfer") + " to the resort",
			Mode:       "ground",
			Duration:   stringField(arrivalLeg, "duration"),
			Cost:       formatCost(cost),
			Highlights: notes,
		})
	}

	if len(options) == 0 {
		return
	}

	for _, ok := range keyVariants(origin, "California", "CA") {
		for _, dk := range destinationVariants(destination) {
			t.register(ok, dk, options)
		}
	}
}

func (t *TransportIndex) register(origin, destination string, options []models.TransportOption) {
	for _, entry := range t.entries {
		if entry.origin == origin && entry.destination == destination {
			return
		}
	}
	t.entries = append(t.entries, routeEntry{origin: origin, destination: destination, options: options})
}

func keyVariants(value, old, replacement string) []string {
	variants := []string{strings.TrimSpace(value)}
	if replaced := strings.TrimSpace(strings.ReplaceAll(value, old, replacement)); replaced != variants[0] {
		variants = append(variants, replaced)
	}
	return variants
}

func destinationVariants(destination string) []string {
	seen := map[string]bool{}
	var variants []string
	for _, candidate := range []string{
		destination,
		strings.SplitN(destination, ",", 2)[0],
		strings.ReplaceAll(destination, "Mexico", "MX"),
	} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		variants = append(variants, candidate)
	}
	return variants
}

// selectRecommended picks the entry flagged recommended, else the first one.
func selectRecommended(entries []map[string]any, fallback map[string]any) map[string]any {
	if len(entries) == 0 {
		return fallback
	}
	for _, entry := range entries {
		if flagged, _ := entry["recommended"].(bool); flagged {
			return entry
		}
	}
	return entries[0]
}

func listField(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	raw, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

// orderedValues returns a map's entries sorted by key so route selection
// does not depend on map iteration order.
func orderedValues(m map[string]any) []map[string]any {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		if entry, ok := m[key].(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

func stringOrDefault(m map[string]any, key, fallback string) string {
	if s := stringField(m, key); s != "" {
		return s
	}
	return fallback
}

func formatCost(value any) string {
	switch t := value.(type) {
	case nil:
		return "See details"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("$%d", int64(t))
		}
		return fmt.Sprintf("$%g", t)
	case int:
		return fmt.Sprintf("$%d", t)
	case string:
		if n, err := strconv.ParseFloat(t, 64); err == nil {
			return formatCost(n)
		}
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
