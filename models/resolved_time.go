package models

// ResolvedTime is the absolute calendar date and clock-time pair produced by
// the temporal agent. End is always after Start within the same day; intervals
// never span midnight.
type ResolvedTime struct {
	Date      string `bson:"date" json:"date"`             // "YYYY-MM-DD"
	StartTime string `bson:"start_time" json:"start_time"` // "HH:MM"
	EndTime   string `bson:"end_time" json:"end_time"`     // "HH:MM"
	Timezone  string `bson:"timezone" json:"timezone"`     // IANA identifier
	Instant   string `bson:"instant" json:"instant"`       // combined ISO-8601 local instant
}
