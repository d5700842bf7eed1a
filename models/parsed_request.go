package models

// Ambiguity severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Ambiguity flags a missing or unclear field in the original free-text request.
type Ambiguity struct {
	Field    string `bson:"field" json:"field"`
	Message  string `bson:"message" json:"message"`
	Severity string `bson:"severity" json:"severity"`
}

// ParsedRequest holds the loosely-typed candidate fields extracted from a
// prompt. Produced once by the parsing agent; immutable afterward.
type ParsedRequest struct {
	ContactName string      `bson:"contact_name" json:"contact_name"`
	RawDate     string      `bson:"raw_date" json:"raw_date"`
	RawTime     string      `bson:"raw_time" json:"raw_time"`
	RawLocation string      `bson:"raw_location" json:"raw_location"`
	RawService  string      `bson:"raw_service" json:"raw_service"`
	Ambiguities []Ambiguity `bson:"ambiguities,omitempty" json:"ambiguities,omitempty"`
	RawPrompt   string      `bson:"raw_prompt" json:"raw_prompt"`
}
