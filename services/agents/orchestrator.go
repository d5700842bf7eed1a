package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"concierge/models"
	"concierge/utils"
)

// Orchestrator runs the agent pipeline over a free-text prompt and records
// every stage in a decision trace. Now is overridable for deterministic runs.
type Orchestrator struct {
	cfg    Config
	logger *zap.Logger

	parsing      *ParsingAgent
	temporal     *TemporalAgent
	geo          *GeoAgent
	validation   *ValidationAgent
	availability *AvailabilityAgent
	negotiation  *NegotiationAgent

	stores Stores
	Now    func() time.Time
}

// Outcome is the end-to-end result of a pipeline run.
type Outcome struct {
	Status      string                 `json:"status"`
	Message     string                 `json:"message"`
	Draft       *models.ValidatedDraft `json:"draft,omitempty"`
	Suggestions []models.Suggestion    `json:"suggestions,omitempty"`
	Ambiguities []models.Ambiguity     `json:"ambiguities,omitempty"`
	Errors      []string               `json:"errors,omitempty"`
	Trace       *models.DecisionTrace  `json:"trace"`
}

func NewOrchestrator(cfg Config, stores Stores) *Orchestrator {
	return &Orchestrator{
		cfg:          cfg,
		logger:       utils.GetLogger().Named("orchestrator"),
		parsing:      NewParsingAgent(cfg),
		temporal:     NewTemporalAgent(cfg),
		geo:          NewGeoAgent(cfg),
		validation:   NewValidationAgent(cfg),
		availability: NewAvailabilityAgent(cfg),
		negotiation:  NewNegotiationAgent(cfg),
		stores:       stores,
		Now:          time.Now,
	}
}

// ProcessPrompt runs the full pipeline. Parsing, temporal resolution and
// validation failures abort the run; a location that cannot be resolved does
// not. An availability conflict triggers negotiation and a "conflict" outcome.
func (o *Orchestrator) ProcessPrompt(ctx context.Context, prompt, timezone, userID string) Outcome {
	started := o.Now()
	trace := &models.DecisionTrace{
		TraceID:      newTraceID(started),
		Timestamp:    started,
		InputPrompt:  prompt,
		UserTimezone: timezone,
		UserID:       userID,
		FinalStatus:  models.PipelinePending,
	}
	defer func() {
		trace.TotalDurationMS = time.Since(started).Milliseconds()
	}()

	// Stage 1: extraction.
	parseRes := o.parsing.Run(prompt)
	o.record(trace, AgentParsing, parseRes)
	if parseRes.IsError() {
		return o.fail(trace, "Could not understand the request", parseRes, nil)
	}
	parsed := parseRes.Parsed

	// Stage 2: temporal resolution.
	timeRes := o.temporal.Run(parsed.RawDate, parsed.RawTime, timezone, started)
	o.record(trace, AgentTemporal, timeRes)
	if timeRes.IsError() {
		return o.fail(trace, "Could not resolve the requested date and time", timeRes, parsed.Ambiguities)
	}
	resolved := timeRes.Resolved

	// Contact lookup feeds geo resolution and validation.
	contact, err := o.stores.Contacts.FindByName(ctx, parsed.ContactName)
	if err != nil {
		o.logger.Error("contact lookup failed", zap.String("trace_id", trace.TraceID), zap.Error(err))
		res := errorResult("Contact lookup failed", []string{err.Error()}, started)
		o.record(trace, AgentValidation, res)
		return o.fail(trace, "Contact lookup failed", res, parsed.Ambiguities)
	}
	if contact == nil {
		res := errorResult(
			fmt.Sprintf("No contact matching %q was found", parsed.ContactName),
			[]string{ReasonContactNotFound}, started)
		o.record(trace, AgentValidation, res)
		return o.fail(trace, "Requested contact was not found", res, parsed.Ambiguities)
	}

	// Stage 3: location resolution against the contact's locations. A miss is
	// recorded but does not abort the run.
	locationID := ""
	geoRes := o.geo.Run(parsed.RawLocation, contact.Locations)
	o.record(trace, AgentGeo, geoRes)
	if !geoRes.IsError() && geoRes.Location != nil {
		locationID = geoRes.Location.LocationID
	}

	serviceID := o.resolveService(ctx, parsed.RawService)

	// Stage 4: validation.
	valIn := ValidationInput{
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Date:        resolved.Date,
		StartTime:   resolved.StartTime,
		EndTime:     resolved.EndTime,
		LocationID:  locationID,
		ServiceID:   serviceID,
	}
	valRes := o.validation.Run(ctx, valIn, o.stores.Contacts, o.stores.Services)
	o.record(trace, AgentValidation, valRes)
	if valRes.IsError() {
		return o.fail(trace, "The appointment request failed validation", valRes, parsed.Ambiguities)
	}
	draft := valRes.Draft

	// Stage 5: availability.
	availIn := AvailabilityInput{
		ContactID:  draft.ContactID,
		Date:       draft.Date,
		StartTime:  draft.StartTime,
		EndTime:    draft.EndTime,
		LocationID: draft.LocationID,
		ServiceID:  draft.ServiceID,
	}
	availRes := o.availability.Run(ctx, availIn, o.stores)
	o.record(trace, AgentAvailability, availRes)

	if availRes.IsError() {
		// Stage 6: negotiation on conflict.
		negRes := o.negotiation.Run(ctx, availIn, DefaultPreferences(), o.stores)
		o.record(trace, AgentNegotiation, negRes)

		trace.FinalStatus = models.PipelineConflict
		trace.FinalDraft = draft
		var suggestions []models.Suggestion
		if negRes.Negotiation != nil {
			suggestions = negRes.Negotiation.Suggestions
		}
		o.logger.Info("pipeline finished with conflict",
			zap.String("trace_id", trace.TraceID),
			zap.Int("suggestions", len(suggestions)))
		return Outcome{
			Status:      models.PipelineConflict,
			Message:     availRes.Message,
			Draft:       draft,
			Suggestions: suggestions,
			Ambiguities: parsed.Ambiguities,
			Errors:      availRes.Errors,
			Trace:       trace,
		}
	}

	trace.FinalStatus = models.PipelineSuccess
	trace.FinalDraft = draft
	o.logger.Info("pipeline finished",
		zap.String("trace_id", trace.TraceID),
		zap.String("contact_id", draft.ContactID),
		zap.String("date", draft.Date))
	return Outcome{
		Status:      models.PipelineSuccess,
		Message:     "Appointment request resolved and slot is available",
		Draft:       draft,
		Ambiguities: parsed.Ambiguities,
		Trace:       trace,
	}
}

// resolveService maps a raw service phrase to a catalog entry by name. Service
// resolution is best-effort; an empty result leaves the draft without one.
func (o *Orchestrator) resolveService(ctx context.Context, raw string) string {
	if raw == "" || o.stores.Services == nil {
		return ""
	}
	all, err := o.stores.Services.ListAll(ctx)
	if err != nil {
		o.logger.Warn("service catalog lookup failed", zap.Error(err))
		return ""
	}
	phrase := o.cfg.Locale.foldAccents(strings.ToLower(strings.TrimSpace(raw)))
	for _, svc := range all {
		name := o.cfg.Locale.foldAccents(strings.ToLower(svc.Name))
		if name == phrase || strings.Contains(phrase, name) || strings.Contains(name, phrase) {
			return svc.ID
		}
	}
	return ""
}

func (o *Orchestrator) record(trace *models.DecisionTrace, agent string, res models.AgentResult) {
	trace.Agents = append(trace.Agents, models.AgentRecord{
		Agent:      agent,
		Status:     res.Status,
		Message:    res.Message,
		Result:     res,
		DurationMS: res.DurationMS,
		Confidence: res.Confidence,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
	})
}

func (o *Orchestrator) fail(trace *models.DecisionTrace, message string, res models.AgentResult, ambiguities []models.Ambiguity) Outcome {
	trace.FinalStatus = models.PipelineError
	o.logger.Info("pipeline aborted",
		zap.String("trace_id", trace.TraceID),
		zap.String("reason", message))
	return Outcome{
		Status:      models.PipelineError,
		Message:     message,
		Ambiguities: ambiguities,
		Errors:      res.Errors,
		Trace:       trace,
	}
}

func newTraceID(at time.Time) string {
	return fmt.Sprintf("trace_%s_%s", at.Format("20060102_150405"), uuid.NewString()[:8])
}
