package agents

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"concierge/models"
)

// GeoAgent matches a raw location phrase against a contact's known locations
// using exact, normalized and fuzzy comparison.
type GeoAgent struct {
	cfg Config
}

func NewGeoAgent(cfg Config) *GeoAgent {
	return &GeoAgent{cfg: cfg}
}

// Run resolves rawLocation against the contact's locations. With no phrase it
// falls back to the first (primary) location.
func (a *GeoAgent) Run(rawLocation string, locations []models.Location) models.AgentResult {
	started := time.Now()

	if rawLocation == "" {
		if len(locations) == 0 {
			return errorResult("No locations available for this contact",
				[]string{ReasonNoLocationAvailable}, started)
		}
		primary := locations[0]
		res := successResult("Using primary location (no location specified)", 0.8, started)
		res.Location = &models.LocationMatch{
			LocationID:   primary.ID,
			LocationName: primary.Name,
			MatchedBy:    models.MatchDefault,
			Confidence:   0.8,
		}
		return res
	}

	if len(locations) == 0 {
		return errorResult(
			fmt.Sprintf("Could not find location matching %q: contact has no locations", rawLocation),
			[]string{ReasonNoLocationAvailable}, started)
	}

	if match := a.findDirectMatch(rawLocation, locations); match != nil {
		res := successResult(fmt.Sprintf("Found %s location match", match.MatchedBy),
			match.Confidence, started)
		res.Location = match
		return res
	}

	best, candidates := a.rankCandidates(rawLocation, locations)
	if best.Confidence > a.cfg.FuzzyThreshold {
		res := successResult(
			fmt.Sprintf("Found location with fuzzy matching (confidence: %.0f%%)", best.Confidence*100),
			best.Confidence, started)
		res.Location = best
		return res
	}

	// Low-confidence match: surface the best guess plus ranked alternatives.
	best.Alternatives = candidates
	res := warningResult(
		fmt.Sprintf("Found potential match but with low confidence (%.0f%%)", best.Confidence*100),
		[]string{fmt.Sprintf("Location %q may not match %q", rawLocation, best.LocationName)},
		best.Confidence, started)
	res.Location = best
	return res
}

// findDirectMatch tries exact (case/whitespace-insensitive) then normalized
// comparison, which strips venue-type prefixes and folds accents.
func (a *GeoAgent) findDirectMatch(raw string, locations []models.Location) *models.LocationMatch {
	rawLower := strings.ToLower(strings.TrimSpace(raw))
	rawNorm := a.normalizeName(raw)

	for _, loc := range locations {
		if strings.ToLower(strings.TrimSpace(loc.Name)) == rawLower {
			return &models.LocationMatch{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				MatchedBy:    models.MatchExact,
				Confidence:   1.0,
			}
		}
	}
	for _, loc := range locations {
		if a.normalizeName(loc.Name) == rawNorm {
			return &models.LocationMatch{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				MatchedBy:    models.MatchNormalized,
				Confidence:   0.95,
			}
		}
	}
	return nil
}

// rankCandidates scores every location by string similarity and returns the
// best match plus the full ranked list.
func (a *GeoAgent) rankCandidates(raw string, locations []models.Location) (*models.LocationMatch, []models.LocationCandidate) {
	rawLower := strings.ToLower(strings.TrimSpace(raw))

	candidates := make([]models.LocationCandidate, 0, len(locations))
	for _, loc := range locations {
		candidates = append(candidates, models.LocationCandidate{
			LocationID:   loc.ID,
			LocationName: loc.Name,
			Confidence:   similarity(rawLower, strings.ToLower(strings.TrimSpace(loc.Name))),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	best := candidates[0]
	return &models.LocationMatch{
		LocationID:   best.LocationID,
		LocationName: best.LocationName,
		MatchedBy:    models.MatchFuzzy,
		Confidence:   best.Confidence,
	}, candidates
}

func (a *GeoAgent) normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, prefix := range a.cfg.Locale.VenuePrefixes {
		if strings.HasPrefix(n, prefix) {
			n = strings.TrimSpace(strings.TrimPrefix(n, prefix))
			break
		}
	}
	return a.cfg.Locale.foldAccents(n)
}
