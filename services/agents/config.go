package agents

import "concierge/config"

// Config carries the tunables shared by the pipeline agents. It is threaded
// through the orchestrator constructor; agents hold no process-wide state.
type Config struct {
	BusinessStartMinute int
	BusinessEndMinute   int
	DefaultDurationMin  int
	SlotStepMinutes     int
	FuzzyThreshold      float64
	MaxSuggestions      int
	FlexibleDateDays    int
	DefaultTimezone     string
	Locale              Locale
}

// DefaultConfig returns the stock configuration: 08:00-18:00 business window,
// one-hour appointments, half-hour slot grid, Spanish locale.
func DefaultConfig() Config {
	return Config{
		BusinessStartMinute: 8 * 60,
		BusinessEndMinute:   18 * 60,
		DefaultDurationMin:  60,
		SlotStepMinutes:     30,
		FuzzyThreshold:      0.7,
		MaxSuggestions:      5,
		FlexibleDateDays:    3,
		DefaultTimezone:     "America/Mexico_City",
		Locale:              SpanishLocale(),
	}
}

// FromAppConfig builds a pipeline Config from the loaded application config.
func FromAppConfig(app config.Config) Config {
	cfg := DefaultConfig()
	if app.BusinessStartMinute > 0 {
		cfg.BusinessStartMinute = app.BusinessStartMinute
	}
	if app.BusinessEndMinute > 0 {
		cfg.BusinessEndMinute = app.BusinessEndMinute
	}
	if app.DefaultDurationMin > 0 {
		cfg.DefaultDurationMin = app.DefaultDurationMin
	}
	if app.SlotStepMinutes > 0 {
		cfg.SlotStepMinutes = app.SlotStepMinutes
	}
	if app.FuzzyMatchThreshold > 0 {
		cfg.FuzzyThreshold = app.FuzzyMatchThreshold
	}
	if app.MaxSuggestions > 0 {
		cfg.MaxSuggestions = app.MaxSuggestions
	}
	if app.FlexibleDateDays > 0 {
		cfg.FlexibleDateDays = app.FlexibleDateDays
	}
	if app.DefaultTimezone != "" {
		cfg.DefaultTimezone = app.DefaultTimezone
	}
	return cfg
}
