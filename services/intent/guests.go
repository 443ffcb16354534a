package intent

import (
	"regexp"
	"strconv"
	"strings"
)

type guestBucket struct {
	count    int
	patterns []*regexp.Regexp
}

// Bucket phrases checked in order, mirroring the quick-reply chips. A bare
// number falls through to the standalone-integer scan below.
var guestBuckets = buildGuestBuckets()

func buildGuestBuckets() []guestBucket {
	specs := []struct {
		count int
		terms []string
	}{
		{1, []string{"just me", "solo"}},
		{2, []string{"two", "couple"}},
		{3, []string{"three"}},
		{4, []string{"four"}},
		{5, []string{"five"}},
		{6, []string{"six"}},
		{8, []string{"large", `7\+`}},
	}
	buckets := make([]guestBucket, 0, len(specs))
	for _, spec := range specs {
		res := make([]*regexp.Regexp, 0, len(spec.terms))
		for _, term := range spec.terms {
			res = append(res, regexp.MustCompile(`\b`+term))
		}
		buckets = append(buckets, guestBucket{count: spec.count, patterns: res})
	}
	return buckets
}

var (
	standaloneNumberRe = regexp.MustCompile(`\b(\d+)\b`)
	guestNounNumberRe  = regexp.MustCompile(`\b(\d+)\s*(?:people|guests|adults|persons?)\b`)
)

// Phrases that signal the message is talking about party size at all.
var guestTriggers = []*regexp.Regexp{
	regexp.MustCompile(`\bpeople`),
	regexp.MustCompile(`\bguests?`),
	regexp.MustCompile(`\bperson`),
	regexp.MustCompile(`\bjust me`),
	regexp.MustCompile(`\bsolo`),
	regexp.MustCompile(`\bcouple`),
	regexp.MustCompile(`\bgroup`),
	regexp.MustCompile(`\bfamily`),
}

// MentionsGuests reports whether the message talks about party size.
func MentionsGuests(message string) bool {
	msg := strings.ToLower(message)
	for _, re := range guestTriggers {
		if re.MatchString(msg) {
			return true
		}
	}
	return false
}

// GuestCountNearNoun finds "<n> people"-shaped phrases, covering nouns like
// "adults" that the trigger list above deliberately leaves out.
func GuestCountNearNoun(message string) (int, bool) {
	msg := strings.ToLower(message)
	if m := guestNounNumberRe.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

// ParseGuestCount turns a party-size phrase into a headcount. Named buckets
// win over digits, then the first standalone integer, then a default of 2.
func ParseGuestCount(message string) int {
	msg := strings.ToLower(message)

	for _, bucket := range guestBuckets {
		for _, re := range bucket.patterns {
			if re.MatchString(msg) {
				return bucket.count
			}
		}
	}

	if m := standaloneNumberRe.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	return 2
}
