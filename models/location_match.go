package models

// Location match methods.
const (
	MatchExact      = "exact"
	MatchNormalized = "normalized"
	MatchFuzzy      = "fuzzy"
	MatchDefault    = "default"
)

// LocationMatch is the geo agent's resolution of a raw location phrase to one
// of a contact's known locations.
type LocationMatch struct {
	LocationID   string               `bson:"location_id" json:"location_id"`
	LocationName string               `bson:"location_name" json:"location_name"`
	MatchedBy    string               `bson:"matched_by" json:"matched_by"`
	Confidence   float64              `bson:"confidence" json:"confidence"`
	Alternatives []LocationCandidate  `bson:"alternatives,omitempty" json:"alternatives,omitempty"`
}

// LocationCandidate is a scored alternative offered when a match is uncertain.
type LocationCandidate struct {
	LocationID   string  `bson:"location_id" json:"location_id"`
	LocationName string  `bson:"location_name" json:"location_name"`
	Confidence   float64 `bson:"confidence" json:"confidence"`
}
