package intent

import "testing"

func TestExtractDestination(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"I want to go to tahoe", "Lake Tahoe"},
		{"skiing in Tahoe next weekend for 4 people", "Lake Tahoe"},
		{"south lake tahoe please", "South Lake Tahoe"},
		{"a week in sf", "San Francisco"},
		{"thinking about la", "Los Angeles"},
		{"la jolla sounds nice", "La Jolla"},
		{"napa valley wine tour", "Napa Valley"},
		{"mammoth in january", "Mammoth"},
		{"Big Sur hiking", "Big Sur"},
		{"cancun all inclusive", "Cancun"},
		// Word-boundary: "la" must not fire inside other words.
		{"I just want to relax", ""},
		{"a place by the lake", ""},
		{"surprise me", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ExtractDestination(tt.message); got != tt.want {
				t.Errorf("ExtractDestination(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractActivity(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"skiing in Tahoe", "ski"},
		{"we want to snowboard", "ski"},
		{"a beach weekend", "beach"},
		{"somewhere to surf", "beach"},
		{"wine tasting trip", "wine"},
		{"hiking the trails", "hiking"},
		{"up in the mountains", "hiking"},
		{"downtown nightlife", "city"},
		{"great restaurants", "city"},
		{"just want to relax at a spa", "relaxing"},
		{"need a peaceful retreat", "relaxing"},
		{"book something", ""},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := ExtractActivity(tt.message); got != tt.want {
				t.Errorf("ExtractActivity(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractActivityBucketOrder(t *testing.T) {
	// "beach" is checked before "city", so a message with both lands on beach.
	got := ExtractActivity("beach bars and downtown nightlife")
	if got != "beach" {
		t.Errorf("ExtractActivity = %q, want beach (first bucket wins)", got)
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		message string
		want    float64
		found   bool
	}{
		{"under $200", 200, true},
		{"under 200", 200, true},
		{"something under $ is fine", 0, false},
		{"budget $300", 300, true},
		{"budget 1500 for the weekend", 1500, true},
		{"my budget $300 but ideally under $250", 300, true}, // budget phrasing wins
		{"no price talk", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, found := ExtractBudget(tt.message)
			if found != tt.found || got != tt.want {
				t.Errorf("ExtractBudget(%q) = (%v, %v), want (%v, %v)", tt.message, got, found, tt.want, tt.found)
			}
		})
	}
}
