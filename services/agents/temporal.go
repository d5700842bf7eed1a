package agents

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"concierge/models"
)

// TemporalAgent resolves relative date and time references ("mañana", "10am")
// to absolute, timezone-aware values.
type TemporalAgent struct {
	cfg Config

	isoDateRe    *regexp.Regexp
	localeDateRe *regexp.Regexp
	clockRe      *regexp.Regexp
	dayNumberRe  *regexp.Regexp
}

func NewTemporalAgent(cfg Config) *TemporalAgent {
	return &TemporalAgent{
		cfg:          cfg,
		isoDateRe:    regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`),
		localeDateRe: regexp.MustCompile(`^(\d{2})[-/](\d{2})[-/](\d{4})`),
		clockRe:      regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`),
		dayNumberRe:  regexp.MustCompile(`(\d{1,2})`),
	}
}

// Run resolves rawDate and rawTime against the caller's timezone. now is the
// reference instant; pass the zero time to use the wall clock.
func (a *TemporalAgent) Run(rawDate, rawTime, timezone string, now time.Time) models.AgentResult {
	started := time.Now()

	if rawDate == "" {
		return errorResult("Missing date reference", []string{ReasonUnresolvableDate}, started)
	}
	if rawTime == "" {
		return errorResult("Missing time reference", []string{ReasonUnresolvableTime}, started)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc, _ = time.LoadLocation(a.cfg.DefaultTimezone)
		if loc == nil {
			loc = time.UTC
		}
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	date, ok := a.resolveDate(rawDate, now)
	if !ok {
		return errorResult(fmt.Sprintf("Could not resolve date: %s", rawDate),
			[]string{ReasonUnresolvableDate}, started)
	}

	startMinute, ok := a.resolveTime(rawTime)
	if !ok {
		return errorResult(fmt.Sprintf("Could not resolve time: %s", rawTime),
			[]string{ReasonUnresolvableTime}, started)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		return errorResult(
			fmt.Sprintf("Requested date %s is in the past", date.Format("2006-01-02")),
			[]string{ReasonPastDate}, started)
	}

	endMinute := startMinute + a.cfg.DefaultDurationMin
	if endMinute > 24*60-1 {
		endMinute = 24*60 - 1
	}

	resolved := &models.ResolvedTime{
		Date:      date.Format("2006-01-02"),
		StartTime: formatMinute(startMinute),
		EndTime:   formatMinute(endMinute),
		Timezone:  loc.String(),
		Instant:   fmt.Sprintf("%sT%s:00", date.Format("2006-01-02"), formatMinute(startMinute)),
	}

	// Out-of-business-hours is a warning, never a hard failure.
	if startMinute < a.cfg.BusinessStartMinute || startMinute > a.cfg.BusinessEndMinute {
		res := warningResult("Resolved datetime but with warnings",
			[]string{fmt.Sprintf("Requested time %s is outside business hours (%s - %s)",
				resolved.StartTime,
				formatMinute(a.cfg.BusinessStartMinute),
				formatMinute(a.cfg.BusinessEndMinute))},
			0.85, started)
		res.Resolved = resolved
		return res
	}

	res := successResult("Successfully resolved temporal references", 0.95, started)
	res.Resolved = resolved
	return res
}

// resolveDate turns a raw date phrase into a calendar date in now's location.
// Resolution order: explicit formats, relative keywords, next week, weekday
// names, bare day-of-month.
func (a *TemporalAgent) resolveDate(raw string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if m := a.isoDateRe.FindStringSubmatch(lower); m != nil {
		return parseDateParts(m[3], m[2], m[1], now.Location())
	}
	if m := a.localeDateRe.FindStringSubmatch(lower); m != nil {
		// DD/MM/YYYY or DD-MM-YYYY.
		return parseDateParts(m[1], m[2], m[3], now.Location())
	}

	locTab := a.cfg.Locale
	if matchAny(lower, locTab.DayAfterTomorrow) {
		return today.AddDate(0, 0, 2), true
	}
	if matchAny(lower, locTab.Today) {
		return today, true
	}
	if matchAny(lower, locTab.Tomorrow) {
		return today.AddDate(0, 0, 1), true
	}
	if matchAny(lower, locTab.NextWeek) {
		// First day (Monday) of next week.
		daysAhead := 7 - mondayIndex(today.Weekday())
		return today.AddDate(0, 0, daysAhead), true
	}

	for name, weekday := range locTab.Weekdays {
		if strings.Contains(lower, name) {
			// Next occurrence strictly after today; wraps a full week when
			// today is that weekday.
			daysAhead := mondayIndex(weekday) - mondayIndex(today.Weekday())
			if daysAhead <= 0 {
				daysAhead += 7
			}
			return today.AddDate(0, 0, daysAhead), true
		}
	}

	if m := a.dayNumberRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		candidate, ok := safeDate(today.Year(), today.Month(), day, now.Location())
		if !ok {
			return time.Time{}, false
		}
		if candidate.Before(today) {
			year, month := today.Year(), today.Month()+1
			if today.Month() == time.December {
				year, month = today.Year()+1, time.January
			}
			return safeDate(year, month, day, now.Location())
		}
		return candidate, true
	}

	return time.Time{}, false
}

// resolveTime turns a raw time phrase into a minute-of-day. Resolution order:
// explicit clock forms (with 12-hour am/pm conversion), then qualitative
// buckets from the locale.
func (a *TemporalAgent) resolveTime(raw string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))

	if m := a.clockRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		if hour > 23 || minute > 59 {
			return 0, false
		}
		return hour*60 + minute, true
	}

	for _, bucket := range a.cfg.Locale.TimeBuckets {
		for _, kw := range bucket.Keywords {
			if strings.Contains(lower, kw) {
				return bucket.StartMinute, true
			}
		}
	}
	return 0, false
}

func matchAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// mondayIndex maps a weekday to 0..6 with Monday first.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func parseDateParts(day, month, year string, loc *time.Location) (time.Time, bool) {
	d, _ := strconv.Atoi(day)
	m, _ := strconv.Atoi(month)
	y, _ := strconv.Atoi(year)
	if m < 1 || m > 12 {
		return time.Time{}, false
	}
	return safeDate(y, time.Month(m), d, loc)
}

// safeDate rejects day numbers that roll over into the following month.
func safeDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
