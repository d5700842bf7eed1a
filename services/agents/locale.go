package agents

import "time"

// TimeBucket maps qualitative time-of-day keywords to a fixed clock anchor.
type TimeBucket struct {
	Keywords    []string
	StartMinute int
}

// Locale groups the keyword tables the parsing and temporal agents scan.
// Keeping them here, rather than hard-coded in the agents, allows swapping
// languages without touching stage logic.
type Locale struct {
	Today            []string
	Tomorrow         []string
	DayAfterTomorrow []string
	NextWeek         []string
	Weekdays         map[string]time.Weekday

	TimeBuckets []TimeBucket

	// Markers used by entity extraction.
	ContactConnectors    []string
	TitleMarkers         []string
	LocationPrepositions []string
	ServicePrepositions  []string
	ServiceVocabulary    []string
	TrailingArticles     []string
	VenuePrefixes        []string

	AccentFolding map[rune]rune
}

// SpanishLocale is the stock locale, with English connectors accepted where
// mixed-language prompts are common.
func SpanishLocale() Locale {
	return Locale{
		Today:            []string{"hoy"},
		Tomorrow:         []string{"mañana", "manana"},
		DayAfterTomorrow: []string{"pasado mañana", "pasadomañana", "pasado manana"},
		NextWeek:         []string{"próxima semana", "proxima semana"},
		Weekdays: map[string]time.Weekday{
			"lunes":     time.Monday,
			"martes":    time.Tuesday,
			"miércoles": time.Wednesday,
			"miercoles": time.Wednesday,
			"jueves":    time.Thursday,
			"viernes":   time.Friday,
			"sábado":    time.Saturday,
			"sabado":    time.Saturday,
			"domingo":   time.Sunday,
		},
		TimeBuckets: []TimeBucket{
			{Keywords: []string{"temprano", "madrugada", "early"}, StartMinute: 8 * 60},
			{Keywords: []string{"morning"}, StartMinute: 9 * 60},
			{Keywords: []string{"mediodía", "mediodia", "noon"}, StartMinute: 12 * 60},
			{Keywords: []string{"tarde", "afternoon"}, StartMinute: 14 * 60},
			{Keywords: []string{"noche", "evening"}, StartMinute: 17 * 60},
		},
		ContactConnectors:    []string{"con", "with"},
		TitleMarkers:         []string{"dr", "dra", "doctor", "doctora", "médico", "médica", "staff", "recurso"},
		LocationPrepositions: []string{"en", "at"},
		ServicePrepositions:  []string{"para", "for"},
		ServiceVocabulary:    []string{"consulta", "chequeo", "laboratorio", "radiografía", "ecografía", "revisión"},
		TrailingArticles:     []string{"el", "la", "los", "las"},
		VenuePrefixes:        []string{"clínica ", "clinica ", "consultorio ", "oficina ", "hospital ", "centro "},
		AccentFolding: map[rune]rune{
			'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ü': 'u', 'ñ': 'n',
		},
	}
}

// foldAccents replaces accented runes per the locale table. Callers are
// expected to lowercase first.
func (l Locale) foldAccents(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if folded, ok := l.AccentFolding[r]; ok {
			out = append(out, folded)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
