// File: services/intent/parser.go
package intent

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Known destination phrases. Matching is word-boundary aware and prefers the
// longest phrase, so "south lake tahoe" beats "lake tahoe" beats "tahoe",
// and "la" can never fire inside "relax".
var destinationPhrases = []string{
	"tahoe", "lake tahoe", "south lake tahoe", "north lake tahoe", "tahoe city",
	"san diego", "la jolla", "coronado", "laguna beach",
	"napa", "napa valley", "sonoma", "healdsburg", "paso robles",
	"big sur", "carmel", "monterey", "mendocino", "ojai",
	"santa barbara", "santa cruz", "half moon bay",
	"joshua tree", "palm springs",
	"yosemite", "sequoia", "mammoth", "mammoth lakes", "big bear",
	"san francisco", "sf", "oakland", "berkeley",
	"los angeles", "la", "malibu", "venice",
	"cancun",
}

// Aliases that don't title-case into their canonical destination.
var destinationCanonical = map[string]string{
	"tahoe": "Lake Tahoe",
	"sf":    "San Francisco",
	"la":    "Los Angeles",
}

type destinationPattern struct {
	phrase string
	re     *regexp.Regexp
}

var destinationPatterns = buildDestinationPatterns()

func buildDestinationPatterns() []destinationPattern {
	patterns := make([]destinationPattern, 0, len(destinationPhrases))
	for _, phrase := range destinationPhrases {
		patterns = append(patterns, destinationPattern{
			phrase: phrase,
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`),
		})
	}
	// Longest phrase first; ties keep declaration order.
	sort.SliceStable(patterns, func(i, j int) bool {
		return len(patterns[i].phrase) > len(patterns[j].phrase)
	})
	return patterns
}

// ExtractDestination returns the canonical destination named in the message,
// or "" when none is found.
func ExtractDestination(message string) string {
	msg := strings.ToLower(message)
	for _, p := range destinationPatterns {
		if p.re.MatchString(msg) {
			if canonical, ok := destinationCanonical[p.phrase]; ok {
				return canonical
			}
			return titleCase(p.phrase)
		}
	}
	return ""
}

type activityBucket struct {
	name     string
	keywords []string
}

// Activity buckets are checked in order; the first keyword hit wins.
// Keywords match at a leading word boundary so "ski" covers "skiing".
var activityBuckets = []activityBucket{
	{"beach", []string{"beach", "ocean", "surf", "coastal", "sand", "seaside"}},
	{"ski", []string{"ski", "skiing", "snowboard", "snow", "winter sports"}},
	{"wine", []string{"wine", "vineyard", "winery", "tasting", "wine country"}},
	{"hiking", []string{"hike", "hiking", "trail", "nature", "outdoors", "mountains"}},
	{"city", []string{"city", "urban", "downtown", "nightlife", "restaurants"}},
	{"relaxing", []string{"relax", "peaceful", "quiet", "spa", "retreat"}},
}

var activityPatterns = buildActivityPatterns()

func buildActivityPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(activityBuckets))
	for _, bucket := range activityBuckets {
		res := make([]*regexp.Regexp, 0, len(bucket.keywords))
		for _, kw := range bucket.keywords {
			res = append(res, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)))
		}
		patterns[bucket.name] = res
	}
	return patterns
}

// ExtractActivity returns the activity bucket the message falls into, or ""
// when no keyword matches.
func ExtractActivity(message string) string {
	msg := strings.ToLower(message)
	for _, bucket := range activityBuckets {
		for _, re := range activityPatterns[bucket.name] {
			if re.MatchString(msg) {
				return bucket.name
			}
		}
	}
	return ""
}

var (
	underBudgetRe = regexp.MustCompile(`under\s*\$?(\d+)`)
	budgetRe      = regexp.MustCompile(`budget\s*\$?(\d+)`)
)

// ExtractBudget pulls an upper spending bound out of the message. When both
// "under $N" and "budget $N" appear, the budget phrasing wins.
func ExtractBudget(message string) (float64, bool) {
	msg := strings.ToLower(message)
	var budget float64
	found := false
	if m := underBudgetRe.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			budget, found = v, true
		}
	}
	if m := budgetRe.FindStringSubmatch(msg); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			budget, found = v, true
		}
	}
	return budget, found
}

func titleCase(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
