package models

import "time"

// Final pipeline statuses.
const (
	PipelinePending  = "pending"
	PipelineSuccess  = "success"
	PipelineError    = "error"
	PipelineConflict = "conflict"
)

// AgentRecord is one agent's outcome as recorded in a trace.
type AgentRecord struct {
	Agent      string      `bson:"agent" json:"agent"`
	Status     string      `bson:"status" json:"status"`
	Message    string      `bson:"message" json:"message"`
	Result     AgentResult `bson:"result" json:"result"`
	DurationMS int64       `bson:"duration_ms" json:"duration_ms"`
	Confidence float64     `bson:"confidence" json:"confidence"`
	Errors     []string    `bson:"errors,omitempty" json:"errors,omitempty"`
	Warnings   []string    `bson:"warnings,omitempty" json:"warnings,omitempty"`
}

// DecisionTrace is the ordered, timestamped record of every agent's outcome
// for one resolution request. The orchestrator owns it for the duration of a
// run and hands it to the caller once the pipeline halts.
type DecisionTrace struct {
	TraceID         string          `bson:"trace_id" json:"trace_id"`
	Timestamp       time.Time       `bson:"timestamp" json:"timestamp"`
	InputPrompt     string          `bson:"input_prompt" json:"input_prompt"`
	UserTimezone    string          `bson:"user_timezone" json:"user_timezone"`
	UserID          string          `bson:"user_id" json:"user_id"`
	Agents          []AgentRecord   `bson:"agents" json:"agents"`
	FinalStatus     string          `bson:"final_status" json:"final_status"`
	FinalDraft      *ValidatedDraft `bson:"final_draft,omitempty" json:"final_draft,omitempty"`
	TotalDurationMS int64           `bson:"total_duration_ms" json:"total_duration_ms"`
}
