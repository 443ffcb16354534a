// File: services/intent/dates.go
package intent

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Weekend trips check in on Fridays. From this hour on a Friday, "this
// weekend" means the following one.
const weekendCutoffHour = 12

const isoDate = "2006-01-02"

var (
	pacificOnce sync.Once
	pacificLoc  *time.Location
)

// Pacific returns the America/Los_Angeles location, falling back to UTC when
// the zone database is unavailable.
func Pacific() *time.Location {
	pacificOnce.Do(func() {
		loc, err := time.LoadLocation("America/Los_Angeles")
		if err != nil {
			loc = time.UTC
		}
		pacificLoc = loc
	})
	return pacificLoc
}

var (
	monthRangeRe   = regexp.MustCompile(`([a-z]+)\s+(\d+)\s*[-–]\s*(\d+)`)
	numericRangeRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})\s*[-–]\s*(\d{1,2})/(\d{1,2})`)
	digitRe        = regexp.MustCompile(`\d`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var monthPrefixes = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// HasDigit reports whether the message contains any digit.
func HasDigit(message string) bool {
	return digitRe.MatchString(message)
}

// LooksLikeDate reports whether the message plausibly contains a date: a
// month-name prefix, a slash, or a dash.
func LooksLikeDate(message string) bool {
	msg := strings.ToLower(message)
	for _, prefix := range monthPrefixes {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return strings.Contains(msg, "/") || strings.Contains(msg, "-")
}

// ResolveWeekend returns the upcoming Friday-Sunday window as ISO dates.
// On a Friday before the cutoff hour, check-in is today, so re-resolving on
// the check-in date gives the same window. From the cutoff on, it rolls
// forward a week.
func ResolveWeekend(now time.Time) (string, string) {
	today := truncateToDay(now)
	days := (int(time.Friday) - int(now.Weekday()) + 7) % 7
	if days == 0 && now.Hour() >= weekendCutoffHour {
		days = 7
	}
	checkIn := today.AddDate(0, 0, days)
	return checkIn.Format(isoDate), checkIn.AddDate(0, 0, 2).Format(isoDate)
}

// ResolveNextWeekend returns the Friday-Sunday window one week beyond the
// upcoming Friday.
func ResolveNextWeekend(now time.Time) (string, string) {
	today := truncateToDay(now)
	days := (int(time.Friday)-int(now.Weekday())+7)%7 + 7
	checkIn := today.AddDate(0, 0, days)
	return checkIn.Format(isoDate), checkIn.AddDate(0, 0, 2).Format(isoDate)
}

// ResolveDateInput turns free text into a check-in/check-out pair. It
// understands the weekend presets, "Nov 15-17" style ranges with fuzzy
// month prefixes, and "11/15-11/17" numeric ranges (month/day). Whatever
// cannot be parsed falls back to the upcoming weekend.
func ResolveDateInput(text string, now time.Time) (string, string) {
	msg := strings.ToLower(strings.TrimSpace(text))
	today := truncateToDay(now)

	if strings.Contains(msg, "this weekend") {
		return ResolveWeekend(now)
	}
	if strings.Contains(msg, "next weekend") {
		return ResolveNextWeekend(now)
	}

	if m := monthRangeRe.FindStringSubmatch(msg); m != nil {
		if month, ok := monthFromWord(m[1]); ok {
			startDay, _ := strconv.Atoi(m[2])
			endDay, _ := strconv.Atoi(m[3])
			checkIn, okIn := makeDate(now.Year(), month, startDay, now.Location())
			checkOut, okOut := makeDate(now.Year(), month, endDay, now.Location())
			if okIn && okOut {
				if checkIn.Before(today) {
					checkIn, okIn = makeDate(now.Year()+1, month, startDay, now.Location())
					checkOut, okOut = makeDate(now.Year()+1, month, endDay, now.Location())
				}
				if okIn && okOut {
					return checkIn.Format(isoDate), checkOut.Format(isoDate)
				}
			}
		}
	}

	if m := numericRangeRe.FindStringSubmatch(msg); m != nil {
		startMonth, _ := strconv.Atoi(m[1])
		startDay, _ := strconv.Atoi(m[2])
		endMonth, _ := strconv.Atoi(m[3])
		endDay, _ := strconv.Atoi(m[4])
		if validMonth(startMonth) && validMonth(endMonth) {
			checkIn, okIn := makeDate(now.Year(), time.Month(startMonth), startDay, now.Location())
			checkOut, okOut := makeDate(now.Year(), time.Month(endMonth), endDay, now.Location())
			if okIn && okOut {
				if checkIn.Before(today) {
					checkIn, okIn = makeDate(now.Year()+1, time.Month(startMonth), startDay, now.Location())
					checkOut, okOut = makeDate(now.Year()+1, time.Month(endMonth), endDay, now.Location())
				}
				if okIn && okOut {
					return checkIn.Format(isoDate), checkOut.Format(isoDate)
				}
			}
		}
	}

	return ResolveWeekend(now)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func monthFromWord(word string) (time.Month, bool) {
	if len(word) < 3 {
		return 0, false
	}
	month, ok := monthsByPrefix[word[:3]]
	return month, ok
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}

// makeDate builds a date and rejects inputs that time.Date would silently
// normalize, like day 32.
func makeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
