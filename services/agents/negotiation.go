package agents

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"concierge/models"
)

// NegotiationAgent searches for alternative slots after an availability
// conflict and ranks them by proximity-weighted confidence.
type NegotiationAgent struct {
	cfg Config
}

func NewNegotiationAgent(cfg Config) *NegotiationAgent {
	return &NegotiationAgent{cfg: cfg}
}

// Preferences control which alternative searches run. Both default to true.
type Preferences struct {
	SameDayFlexible bool
	DateFlexible    bool
}

// DefaultPreferences enables same-day and nearby-day search.
func DefaultPreferences() Preferences {
	return Preferences{SameDayFlexible: true, DateFlexible: true}
}

// Run generates ranked alternative slots for the rejected candidate. A fruitless
// search yields a warning, not an error: the conflict was already reported.
func (a *NegotiationAgent) Run(ctx context.Context, in AvailabilityInput, prefs Preferences, stores Stores) models.AgentResult {
	started := time.Now()

	if in.ContactID == "" || in.Date == "" || in.StartTime == "" {
		return errorResult("Missing required fields for negotiation",
			[]string{ReasonMissingRequiredField}, started)
	}
	if stores.Contacts == nil || stores.Ledger == nil {
		return errorResult("Missing required stores", nil, started)
	}

	requestedMinute := minuteOfDay(in.StartTime)
	var suggestions []models.Suggestion
	evaluated := 0

	if prefs.SameDayFlexible {
		sameDay, n := a.sameDaySuggestions(ctx, in, requestedMinute, stores)
		suggestions = append(suggestions, sameDay...)
		evaluated += n
	}

	if len(suggestions) == 0 && prefs.DateFlexible {
		nextDays, n := a.nextDaysSuggestions(ctx, in, requestedMinute, stores)
		suggestions = append(suggestions, nextDays...)
		evaluated += n
	}

	sortSuggestions(suggestions, in.Date, requestedMinute)
	if len(suggestions) > a.cfg.MaxSuggestions {
		suggestions = suggestions[:a.cfg.MaxSuggestions]
	}

	outcome := &models.NegotiationOutcome{
		HasAlternatives: len(suggestions) > 0,
		Suggestions:     suggestions,
		TotalEvaluated:  evaluated,
	}

	if len(suggestions) == 0 {
		res := warningResult("No alternative slots found",
			[]string{"Could not find alternative appointment times"}, 0.3, started)
		res.Negotiation = outcome
		return res
	}

	res := successResult(
		fmt.Sprintf("Generated %d alternative time slot suggestions", len(suggestions)),
		0.9, started)
	res.Negotiation = outcome
	return res
}

// sameDaySuggestions walks the business window on the requested date in
// slot-step increments, skipping the originally requested start time.
func (a *NegotiationAgent) sameDaySuggestions(ctx context.Context, in AvailabilityInput, requestedMinute int, stores Stores) ([]models.Suggestion, int) {
	var suggestions []models.Suggestion
	evaluated := 0

	for minute := a.cfg.BusinessStartMinute; minute < a.cfg.BusinessEndMinute; minute += a.cfg.SlotStepMinutes {
		if minute == requestedMinute {
			continue
		}
		evaluated++
		endMinute := minute + a.cfg.DefaultDurationMin
		if !a.slotFree(ctx, in, in.Date, minute, endMinute, stores) {
			continue
		}

		hourDiff := math.Abs(float64(minute-requestedMinute)) / 60.0
		confidence := math.Max(0.9-0.05*hourDiff, 0.5)
		suggestions = append(suggestions, models.Suggestion{
			Date:       in.Date,
			StartTime:  formatMinute(minute),
			EndTime:    formatMinute(endMinute),
			Confidence: confidence,
			Reason:     fmt.Sprintf("Available slot %.1f hours from requested time", hourDiff),
		})
	}
	return suggestions, evaluated
}

// nextDaysSuggestions tries the requested time on the following days,
// skipping weekends.
func (a *NegotiationAgent) nextDaysSuggestions(ctx context.Context, in AvailabilityInput, requestedMinute int, stores Stores) ([]models.Suggestion, int) {
	base, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, 0
	}

	var suggestions []models.Suggestion
	evaluated := 0
	endMinute := requestedMinute + a.cfg.DefaultDurationMin

	for daysAhead := 1; daysAhead <= a.cfg.FlexibleDateDays; daysAhead++ {
		future := base.AddDate(0, 0, daysAhead)
		if future.Weekday() == time.Saturday || future.Weekday() == time.Sunday {
			continue
		}
		evaluated++
		futureDate := future.Format("2006-01-02")
		if !a.slotFree(ctx, in, futureDate, requestedMinute, endMinute, stores) {
			continue
		}

		confidence := math.Max(0.85-0.1*float64(daysAhead), 0.5)
		suggestions = append(suggestions, models.Suggestion{
			Date:       futureDate,
			StartTime:  formatMinute(requestedMinute),
			EndTime:    formatMinute(endMinute),
			Confidence: confidence,
			Reason:     fmt.Sprintf("Available in %d day(s) at same time", daysAhead),
		})
	}
	return suggestions, evaluated
}

// slotFree re-runs the availability predicate and conflict check for one slot.
func (a *NegotiationAgent) slotFree(ctx context.Context, in AvailabilityInput, date string, startMinute, endMinute int, stores Stores) bool {
	if endMinute > 24*60-1 {
		return false
	}
	start, end := formatMinute(startMinute), formatMinute(endMinute)

	available, _, err := stores.Contacts.CheckAvailability(ctx, in.ContactID, date, start, end, in.LocationID)
	if err != nil || !available {
		return false
	}

	candidate := models.Appointment{
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		LocationID:   in.LocationID,
		Participants: []models.Participant{{ID: in.ContactID}},
	}
	conflicts, err := stores.Ledger.CheckConflicts(ctx, candidate, "")
	return err == nil && len(conflicts) == 0
}

// sortSuggestions orders by confidence descending; ties broken by temporal
// proximity to the requested slot, then by date/time ascending.
func sortSuggestions(suggestions []models.Suggestion, requestedDate string, requestedMinute int) {
	base, _ := time.Parse("2006-01-02", requestedDate)

	distance := func(s models.Suggestion) int {
		d, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return math.MaxInt32
		}
		dayDiff := int(d.Sub(base).Hours() / 24)
		diff := dayDiff*24*60 + minuteOfDay(s.StartTime) - requestedMinute
		if diff < 0 {
			diff = -diff
		}
		return diff
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Confidence != suggestions[j].Confidence {
			return suggestions[i].Confidence > suggestions[j].Confidence
		}
		di, dj := distance(suggestions[i]), distance(suggestions[j])
		if di != dj {
			return di < dj
		}
		if suggestions[i].Date != suggestions[j].Date {
			return suggestions[i].Date < suggestions[j].Date
		}
		return suggestions[i].StartTime < suggestions[j].StartTime
	})
}
