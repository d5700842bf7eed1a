package agents

import (
	"time"

	"concierge/models"
)

// Agent names as recorded in decision traces.
const (
	AgentParsing      = "parsing"
	AgentTemporal     = "temporal_reasoning"
	AgentGeo          = "geo_reasoning"
	AgentValidation   = "validation"
	AgentAvailability = "availability"
	AgentNegotiation  = "negotiation"
)

func elapsedMS(started time.Time) int64 {
	return time.Since(started).Milliseconds()
}

func successResult(message string, confidence float64, started time.Time) models.AgentResult {
	return models.AgentResult{
		Status:     models.StatusSuccess,
		Message:    message,
		Confidence: confidence,
		DurationMS: elapsedMS(started),
	}
}

func warningResult(message string, warnings []string, confidence float64, started time.Time) models.AgentResult {
	return models.AgentResult{
		Status:     models.StatusWarning,
		Message:    message,
		Warnings:   warnings,
		Confidence: confidence,
		DurationMS: elapsedMS(started),
	}
}

// errorResult always carries zero confidence and no payload.
func errorResult(message string, errs []string, started time.Time) models.AgentResult {
	return models.AgentResult{
		Status:     models.StatusError,
		Message:    message,
		Errors:     errs,
		Confidence: 0,
		DurationMS: elapsedMS(started),
	}
}
