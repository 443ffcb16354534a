// File: services/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"wayfarer/models"
)

// Index is the read-only listing catalog, built once at startup and shared
// across requests. Lookups never mutate it; Search hands out deep copies.
type Index struct {
	keys     []string // insertion order, for deterministic substring matching
	listings map[string][]models.Listing
	entries  int // destination entries loaded, each reachable under several keys
}

// New loads and normalizes the catalog file. A missing or malformed file
// returns an empty index together with the error, so callers can log the
// degradation and keep serving synthetic listings.
func New(path string) (*Index, error) {
	idx := &Index{listings: make(map[string][]models.Listing)}

	raw, err := os.ReadFile(path)
	if err != nil {
		return idx, fmt.Errorf("read catalog file: %w", err)
	}

	var doc struct {
		TravelDatabase struct {
			Destinations []map[string]any `json:"destinations"`
		} `json:"travel_database"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return idx, fmt.Errorf("parse catalog file: %w", err)
	}

	for _, entry := range doc.TravelDatabase.Destinations {
		listings := convertDestinationEntry(entry)
		if len(listings) == 0 {
			continue
		}
		idx.entries++
		for _, key := range destinationKeys(entry) {
			idx.register(key, listings)
		}
	}

	return idx, nil
}

func (idx *Index) register(key string, listings []models.Listing) {
	if key == "" {
		return
	}
	if _, exists := idx.listings[key]; !exists {
		idx.keys = append(idx.keys, key)
	}
	idx.listings[key] = listings
}

// Destinations reports how many destination entries the catalog loaded.
func (idx *Index) Destinations() int {
	return idx.entries
}

// match finds the stored listings for a destination: exact key first, then
// substring containment in either direction, in insertion order.
func (idx *Index) match(destination string) []models.Listing {
	dest := strings.ToLower(destination)
	if listings, ok := idx.listings[dest]; ok {
		return listings
	}
	for _, key := range idx.keys {
		if strings.Contains(dest, key) || strings.Contains(key, dest) {
			return idx.listings[key]
		}
	}
	return nil
}

// destinationKeys derives every lookup key a destination entry answers to:
// its name, its region, the part of each before any comma, and its id.
func destinationKeys(entry map[string]any) []string {
	var keys []string
	seen := make(map[string]bool)
	add := func(key string) {
		key = strings.TrimSpace(strings.ToLower(key))
		if key != "" && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	for _, value := range []string{stringField(entry, "name"), stringField(entry, "region")} {
		if value == "" {
			continue
		}
		add(value)
		add(strings.SplitN(value, ",", 2)[0])
	}
	if id := stringField(entry, "destination_id"); id != "" {
		add(id)
	}
	return keys
}
