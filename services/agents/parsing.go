package agents

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"concierge/models"
)

// ParsingAgent extracts appointment entities from natural language prompts:
// contact names, date and time references, locations, and service types, plus
// a list of detected ambiguities.
type ParsingAgent struct {
	cfg Config

	contactRe         *regexp.Regexp
	contactFallbackRe *regexp.Regexp
	explicitDateRe    *regexp.Regexp
	dayOfMonthRe      *regexp.Regexp
	timeRe            *regexp.Regexp
	locationRe        *regexp.Regexp
	serviceRe         *regexp.Regexp
}

// NewParsingAgent compiles the extraction patterns from the locale tables.
func NewParsingAgent(cfg Config) *ParsingAgent {
	loc := cfg.Locale
	connectors := alternation(loc.ContactConnectors)
	titles := alternation(loc.TitleMarkers)
	locPreps := alternation(loc.LocationPrepositions)
	svcPreps := alternation(loc.ServicePrepositions)
	articles := alternation(loc.TrailingArticles)

	return &ParsingAgent{
		cfg: cfg,
		contactRe: regexp.MustCompile(
			`(?i)\b(?:` + connectors + `)\s+(?:` + titles + `)\.?\s+([\p{L}][\p{L} .]*?)(?:\s+(?:` + locPreps + `|` + svcPreps + `)\b|[,.]|$)`),
		contactFallbackRe: regexp.MustCompile(
			`\b(?:con|with)\s+(\p{Lu}[\p{Ll}]+(?:\s+\p{Lu}[\p{Ll}]+)?)`),
		explicitDateRe: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2}|\d{2}[/-]\d{2}[/-]\d{4})\b`),
		dayOfMonthRe:   regexp.MustCompile(`\bel\s+(\d{1,2})\b(?:\s+de\s+\p{L}+)?`),
		timeRe:         regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b|\b(\d{1,2})\s*(am|pm)\b`),
		locationRe: regexp.MustCompile(
			`(?i)\b(?:` + locPreps + `)\s+(?:(?:` + articles + `)\s+)?([\p{L}\d][\p{L}\d ]*?)(?:\s+(?:` + articles + `)\b|[,.(]|$)`),
		serviceRe: regexp.MustCompile(
			`(?i)\b(?:` + svcPreps + `)\s+(?:una\s+|un\s+|a\s+)?([\p{L} ]+?)(?:\s+(?:` + connectors + `|` + locPreps + `)\b|[,.]|$)`),
	}
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(strings.TrimSpace(w))
	}
	return strings.Join(quoted, "|")
}

// Run extracts entities from the prompt. It fails only on an empty prompt;
// missing fields are reported as ambiguities on a warning result.
func (a *ParsingAgent) Run(prompt string) models.AgentResult {
	started := time.Now()

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return errorResult("Prompt is empty", []string{ReasonEmptyInput}, started)
	}
	lower := strings.ToLower(prompt)

	parsed := &models.ParsedRequest{
		ContactName: a.extractContact(prompt),
		RawDate:     a.extractDate(lower),
		RawTime:     a.extractTime(lower),
		RawLocation: a.extractLocation(prompt),
		RawService:  a.extractService(prompt),
		RawPrompt:   prompt,
	}
	parsed.Ambiguities = a.detectAmbiguities(parsed)

	// Confidence reflects how many of the two required entities were found.
	required := 0
	if parsed.ContactName != "" {
		required++
	}
	if parsed.RawDate != "" {
		required++
	}
	confidence := float64(required) / 2.0

	if len(parsed.Ambiguities) > 0 {
		warnings := make([]string, 0, len(parsed.Ambiguities))
		for _, amb := range parsed.Ambiguities {
			warnings = append(warnings, fmt.Sprintf("%s: %s", amb.Field, amb.Message))
		}
		res := warningResult(
			fmt.Sprintf("Extracted entities but found %d ambiguities", len(parsed.Ambiguities)),
			warnings, confidence, started)
		res.Parsed = parsed
		return res
	}

	res := successResult("Successfully extracted entities from prompt", confidence, started)
	res.Parsed = parsed
	return res
}

func (a *ParsingAgent) extractContact(prompt string) string {
	if m := a.contactRe.FindStringSubmatch(prompt); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Fallback: capitalized words right after the connector.
	if m := a.contactFallbackRe.FindStringSubmatch(prompt); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func (a *ParsingAgent) extractDate(lower string) string {
	loc := a.cfg.Locale

	// Compound keywords first so "pasado mañana" is not read as "mañana".
	for _, kw := range loc.DayAfterTomorrow {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	for _, group := range [][]string{loc.Today, loc.Tomorrow, loc.NextWeek} {
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				return kw
			}
		}
	}
	for name := range loc.Weekdays {
		if containsWord(lower, name) {
			return name
		}
	}
	if m := a.explicitDateRe.FindStringSubmatch(lower); m != nil {
		return m[1]
	}
	if m := a.dayOfMonthRe.FindString(lower); m != "" {
		return m
	}
	return ""
}

func (a *ParsingAgent) extractTime(lower string) string {
	if m := a.timeRe.FindString(lower); m != "" {
		return strings.TrimSpace(m)
	}
	for _, bucket := range a.cfg.Locale.TimeBuckets {
		for _, kw := range bucket.Keywords {
			if containsWord(lower, kw) {
				return kw
			}
		}
	}
	return ""
}

func (a *ParsingAgent) extractLocation(prompt string) string {
	m := a.locationRe.FindStringSubmatch(prompt)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func (a *ParsingAgent) extractService(prompt string) string {
	if m := a.serviceRe.FindStringSubmatch(prompt); m != nil {
		if svc := strings.TrimSpace(m[1]); svc != "" {
			return svc
		}
	}
	lower := strings.ToLower(prompt)
	for _, svc := range a.cfg.Locale.ServiceVocabulary {
		if strings.Contains(lower, svc) {
			return svc
		}
	}
	return ""
}

func (a *ParsingAgent) detectAmbiguities(parsed *models.ParsedRequest) []models.Ambiguity {
	var ambiguities []models.Ambiguity

	if parsed.ContactName == "" {
		ambiguities = append(ambiguities, models.Ambiguity{
			Field:    "contact",
			Message:  "No contact or provider was specified",
			Severity: models.SeverityError,
		})
	}
	if parsed.RawDate == "" {
		ambiguities = append(ambiguities, models.Ambiguity{
			Field:    "date",
			Message:  "No date was specified",
			Severity: models.SeverityError,
		})
	}
	if parsed.RawTime == "" {
		ambiguities = append(ambiguities, models.Ambiguity{
			Field:    "time",
			Message:  "No time was specified",
			Severity: models.SeverityWarning,
		})
	}
	if parsed.RawLocation == "" {
		ambiguities = append(ambiguities, models.Ambiguity{
			Field:    "location",
			Message:  "No location was specified",
			Severity: models.SeverityInfo,
		})
	}
	return ambiguities
}

// containsWord reports whether lower contains kw bounded by non-letters.
func containsWord(lower, kw string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !isLetter(rune(lower[start-1]))
		afterOK := end >= len(lower) || !isLetter(rune(lower[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
