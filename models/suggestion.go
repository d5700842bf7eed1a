package models

// Suggestion is a ranked alternative slot proposed after a conflict. Lists of
// suggestions are sorted by confidence descending; ties broken by temporal
// proximity to the originally requested slot, then by date/time ascending.
type Suggestion struct {
	Date       string  `bson:"date" json:"date"`
	StartTime  string  `bson:"start_time" json:"start_time"`
	EndTime    string  `bson:"end_time" json:"end_time"`
	Confidence float64 `bson:"confidence" json:"confidence"`
	Reason     string  `bson:"reason" json:"reason"`
}

// NegotiationOutcome bundles the negotiation agent's ranked suggestions.
type NegotiationOutcome struct {
	HasAlternatives bool         `bson:"has_alternatives" json:"has_alternatives"`
	Suggestions     []Suggestion `bson:"suggestions" json:"suggestions"`
	TotalEvaluated  int          `bson:"total_evaluated" json:"total_evaluated"`
}
