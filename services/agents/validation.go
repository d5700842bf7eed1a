package agents

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"concierge/models"
)

// ValidationAgent checks field formats, cross-field logic and referential
// integrity against the read-only lookups.
type ValidationAgent struct {
	cfg Config

	dateRe *regexp.Regexp
	timeRe *regexp.Regexp
	idRe   *regexp.Regexp
}

func NewValidationAgent(cfg Config) *ValidationAgent {
	return &ValidationAgent{
		cfg:    cfg,
		dateRe: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		timeRe: regexp.MustCompile(`^\d{2}:\d{2}$`),
		idRe:   regexp.MustCompile(`^[a-z]+_[a-zA-Z0-9_]+$`),
	}
}

// ValidationInput are the fields accumulated by earlier agents.
type ValidationInput struct {
	ContactID   string
	ContactName string
	Date        string
	StartTime   string
	EndTime     string
	LocationID  string
	ServiceID   string
}

// Run validates the accumulated fields. Each check is independent; the draft
// is built additively from whatever validates. Lookups may be nil, in which
// case referential checks are skipped.
func (a *ValidationAgent) Run(ctx context.Context, in ValidationInput, contacts ContactDirectory, services ServiceCatalog) models.AgentResult {
	started := time.Now()

	var errs, warnings []string
	draft := &models.ValidatedDraft{}

	// Required fields: date, start and end time.
	switch {
	case in.Date == "":
		errs = append(errs, "Missing required field: date")
	case !a.dateRe.MatchString(in.Date) || !wellFormedDate(in.Date):
		errs = append(errs, fmt.Sprintf("Invalid date format: %s (expected YYYY-MM-DD)", in.Date))
	default:
		draft.Date = in.Date
	}

	startOK := a.checkTime(in.StartTime, "start_time", &errs)
	if startOK {
		draft.StartTime = in.StartTime
	}
	endOK := a.checkTime(in.EndTime, "end_time", &errs)
	if endOK {
		draft.EndTime = in.EndTime
	}
	if startOK && endOK && minuteOfDay(in.StartTime) >= minuteOfDay(in.EndTime) {
		errs = append(errs, fmt.Sprintf("Invalid time range: %s must be before %s", in.StartTime, in.EndTime))
	}

	// Identifier shapes are advisory only.
	if in.ContactID != "" {
		if !a.idRe.MatchString(in.ContactID) {
			warnings = append(warnings, fmt.Sprintf("Contact ID format looks unusual: %s", in.ContactID))
		}
		draft.ContactID = in.ContactID
	}
	if in.ContactName != "" {
		draft.ContactName = in.ContactName
	}
	if in.LocationID != "" {
		if !a.idRe.MatchString(in.LocationID) {
			warnings = append(warnings, fmt.Sprintf("Location ID format looks unusual: %s", in.LocationID))
		}
		draft.LocationID = in.LocationID
	}
	if in.ServiceID != "" {
		if !a.idRe.MatchString(in.ServiceID) {
			warnings = append(warnings, fmt.Sprintf("Service ID format looks unusual: %s", in.ServiceID))
		}
		draft.ServiceID = in.ServiceID
	}

	a.checkReferences(ctx, in, contacts, services, &errs)

	if len(errs) > 0 {
		return errorResult(fmt.Sprintf("Validation failed with %d error(s)", len(errs)), errs, started)
	}
	if len(warnings) > 0 {
		res := warningResult(fmt.Sprintf("Validation succeeded with %d warning(s)", len(warnings)),
			warnings, 0.85, started)
		res.Draft = draft
		return res
	}
	res := successResult("All validations passed", 0.95, started)
	res.Draft = draft
	return res
}

func (a *ValidationAgent) checkTime(value, field string, errs *[]string) bool {
	if value == "" {
		*errs = append(*errs, fmt.Sprintf("Missing required field: %s", field))
		return false
	}
	if !a.timeRe.MatchString(value) || minuteOfDay(value) < 0 {
		*errs = append(*errs, fmt.Sprintf("Invalid time format: %s (expected HH:MM)", value))
		return false
	}
	return true
}

// checkReferences verifies that referenced entities exist, are active, and
// that the chosen location belongs to the chosen contact.
func (a *ValidationAgent) checkReferences(ctx context.Context, in ValidationInput, contacts ContactDirectory, services ServiceCatalog, errs *[]string) {
	if contacts != nil && in.ContactID != "" {
		contact, err := contacts.GetByID(ctx, in.ContactID)
		switch {
		case err != nil:
			*errs = append(*errs, fmt.Sprintf("Contact lookup failed: %v", err))
		case contact == nil:
			*errs = append(*errs, fmt.Sprintf("Contact not found: %s", in.ContactID))
		case !contact.Active:
			*errs = append(*errs, fmt.Sprintf("Contact is inactive: %s", in.ContactID))
		case in.LocationID != "":
			found := false
			for _, loc := range contact.Locations {
				if loc.ID == in.LocationID {
					found = true
					break
				}
			}
			if !found {
				*errs = append(*errs, fmt.Sprintf("Location %s not found for contact %s", in.LocationID, in.ContactID))
			}
		}
	}

	if services != nil && in.ServiceID != "" {
		service, err := services.GetByID(ctx, in.ServiceID)
		switch {
		case err != nil:
			*errs = append(*errs, fmt.Sprintf("Service lookup failed: %v", err))
		case service == nil:
			*errs = append(*errs, fmt.Sprintf("Service not found: %s", in.ServiceID))
		case !service.Active:
			*errs = append(*errs, fmt.Sprintf("Service is inactive: %s", in.ServiceID))
		}
	}
}

// minuteOfDay parses "HH:MM" as minutes from midnight, -1 when malformed.
// Deliberately not wraparound-aware: intervals never span midnight.
func minuteOfDay(value string) int {
	if len(value) != 5 || value[2] != ':' {
		return -1
	}
	h := int(value[0]-'0')*10 + int(value[1]-'0')
	m := int(value[3]-'0')*10 + int(value[4]-'0')
	if value[0] < '0' || value[0] > '9' || value[1] < '0' || value[1] > '9' ||
		value[3] < '0' || value[3] > '9' || value[4] < '0' || value[4] > '9' {
		return -1
	}
	if h > 23 || m > 59 {
		return -1
	}
	return h*60 + m
}

// wellFormedDate rejects calendar-impossible dates that match the pattern.
func wellFormedDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
