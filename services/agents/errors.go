package agents

// Reason codes carried in agent errors and final pipeline outcomes.
const (
	ReasonEmptyInput           = "empty_input"
	ReasonUnresolvableDate     = "unresolvable_date"
	ReasonUnresolvableTime     = "unresolvable_time"
	ReasonPastDate             = "past_date"
	ReasonNoLocationAvailable  = "no_location_available"
	ReasonContactNotFound      = "contact_not_found"
	ReasonContactInactive      = "contact_inactive"
	ReasonServiceNotFound      = "service_not_found"
	ReasonServiceInactive      = "service_inactive"
	ReasonInvalidFormat        = "invalid_format"
	ReasonInvalidTimeRange     = "invalid_time_range"
	ReasonMissingRequiredField = "missing_required_field"
	ReasonSchedulingConflict   = "scheduling_conflict"
	ReasonDurationOutOfRange   = "duration_out_of_range"
)
