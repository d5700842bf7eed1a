package models

// Agent result statuses.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// AgentResult is the uniform contract every pipeline agent returns.
// Invariants: StatusError implies Confidence == 0 and an empty payload;
// StatusSuccess implies Errors is empty.
type AgentResult struct {
	Status     string   `bson:"status" json:"status"`
	Message    string   `bson:"message" json:"message"`
	Errors     []string `bson:"errors,omitempty" json:"errors,omitempty"`
	Warnings   []string `bson:"warnings,omitempty" json:"warnings,omitempty"`
	Confidence float64  `bson:"confidence" json:"confidence"`
	DurationMS int64    `bson:"duration_ms" json:"duration_ms"`

	// Stage-specific payload. Exactly one of these is set, matching the
	// agent that produced the result.
	Parsed       *ParsedRequest       `bson:"parsed,omitempty" json:"parsed,omitempty"`
	Resolved     *ResolvedTime        `bson:"resolved,omitempty" json:"resolved,omitempty"`
	Location     *LocationMatch       `bson:"location,omitempty" json:"location,omitempty"`
	Draft        *ValidatedDraft      `bson:"draft,omitempty" json:"draft,omitempty"`
	Availability *AvailabilityOutcome `bson:"availability,omitempty" json:"availability,omitempty"`
	Negotiation  *NegotiationOutcome  `bson:"negotiation,omitempty" json:"negotiation,omitempty"`
}

// IsSuccess reports whether the agent succeeded.
func (r AgentResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// IsError reports whether the agent failed.
func (r AgentResult) IsError() bool {
	return r.Status == StatusError
}
