package agents

import (
	"context"
	"fmt"
	"time"

	"concierge/models"
)

// AvailabilityAgent verifies a candidate slot against the contact's general
// availability and existing appointments.
type AvailabilityAgent struct {
	cfg Config
}

func NewAvailabilityAgent(cfg Config) *AvailabilityAgent {
	return &AvailabilityAgent{cfg: cfg}
}

// AvailabilityInput describes the candidate slot to check.
type AvailabilityInput struct {
	ContactID  string
	Date       string
	StartTime  string
	EndTime    string
	LocationID string
	ServiceID  string
}

// Run checks, in order: contact exists and is active, the contact-level
// availability predicate, appointment conflicts, and service duration bounds.
// Each step short-circuits.
func (a *AvailabilityAgent) Run(ctx context.Context, in AvailabilityInput, stores Stores) models.AgentResult {
	started := time.Now()

	if in.ContactID == "" || in.Date == "" || in.StartTime == "" {
		return errorResult("Missing required fields for availability check",
			[]string{ReasonMissingRequiredField}, started)
	}
	if stores.Contacts == nil || stores.Ledger == nil {
		return errorResult("Missing required stores", nil, started)
	}

	endTime := in.EndTime
	if endTime == "" {
		endTime = formatMinute(minuteOfDay(in.StartTime) + a.cfg.DefaultDurationMin)
	}

	contact, err := stores.Contacts.GetByID(ctx, in.ContactID)
	if err != nil {
		return errorResult(fmt.Sprintf("Contact lookup failed: %v", err), nil, started)
	}
	if contact == nil {
		return errorResult(fmt.Sprintf("Contact not found: %s", in.ContactID),
			[]string{ReasonContactNotFound}, started)
	}
	if !contact.Active {
		return errorResult(fmt.Sprintf("Contact is inactive: %s", in.ContactID),
			[]string{ReasonContactInactive}, started)
	}

	available, reason, err := stores.Contacts.CheckAvailability(ctx, in.ContactID, in.Date, in.StartTime, endTime, in.LocationID)
	if err != nil {
		return errorResult(fmt.Sprintf("Availability lookup failed: %v", err), nil, started)
	}
	if !available {
		return errorResult(fmt.Sprintf("Contact not available: %s", reason),
			[]string{fmt.Sprintf("Reason: %s", reason)}, started)
	}

	candidate := models.Appointment{
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   endTime,
		Participants: []models.Participant{
			{ID: in.ContactID},
		},
		LocationID: in.LocationID,
	}
	conflicts, err := stores.Ledger.CheckConflicts(ctx, candidate, "")
	if err != nil {
		return errorResult(fmt.Sprintf("Conflict lookup failed: %v", err), nil, started)
	}
	if len(conflicts) > 0 {
		descriptions := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			descriptions = append(descriptions, fmt.Sprintf("%s: %s", c.Type, c.Message))
		}
		return errorResult("Appointment conflicts detected", descriptions, started)
	}

	if in.ServiceID != "" && stores.Services != nil {
		if res, failed := a.checkServiceDuration(ctx, in, endTime, stores.Services, started); failed {
			return res
		}
	}

	res := successResult("Appointment time is available", 0.95, started)
	res.Availability = &models.AvailabilityOutcome{Available: true, Reason: "Available"}
	return res
}

// checkServiceDuration enforces the service's configured min/max span.
func (a *AvailabilityAgent) checkServiceDuration(ctx context.Context, in AvailabilityInput, endTime string, services ServiceCatalog, started time.Time) (models.AgentResult, bool) {
	service, err := services.GetByID(ctx, in.ServiceID)
	if err != nil || service == nil {
		// Service existence is validated upstream; a missing record here is
		// not an availability failure.
		return models.AgentResult{}, false
	}

	duration := minuteOfDay(endTime) - minuteOfDay(in.StartTime)
	if service.MinDurationMinutes > 0 && duration < service.MinDurationMinutes {
		return errorResult(
			fmt.Sprintf("Appointment duration %dmin is less than minimum %dmin", duration, service.MinDurationMinutes),
			[]string{ReasonDurationOutOfRange}, started), true
	}
	if service.MaxDurationMinutes > 0 && duration > service.MaxDurationMinutes {
		return errorResult(
			fmt.Sprintf("Appointment duration %dmin exceeds maximum %dmin", duration, service.MaxDurationMinutes),
			[]string{ReasonDurationOutOfRange}, started), true
	}
	return models.AgentResult{}, false
}
