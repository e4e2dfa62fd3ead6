// cmd/factweave/crisis.go
package main

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// crisisKeywords is the built-in crisis-indicator list. Matching is
// case-insensitive substring membership; matched subsets preserve this order.
var crisisKeywords = []string{
	"earthquake", "pandemic", "violence", "tsunami", "terror", "flood", "war", "attack", "assassinated",
	"airstrike", "conflict", "dead", "killed", "crisis", "warning", "strike", "military", "navy",
	"russia", "israel", "lebanon", "gaza", "ukraine", "iran", "missile", "bomb", "blast", "explosion",
	"fire", "wildfire", "storm", "hurricane", "tornado", "typhoon", "cyclone", "weather", "heat",
	"emergency", "rescue", "police", "arrest", "shoot", "gun", "crime", "murder", "crash", "accident",
	"disaster", "danger", "threat", "alert", "breaking",
}

// recommendedActions is emitted whenever at least one alert exists.
var recommendedActions = []string{"Monitor situation", "Verify sources"}

// CrisisAgent scans claim text for crisis-indicator keywords.
type CrisisAgent struct {
	keywords []string
}

// NewCrisisAgent creates a crisis agent. Extra keywords from sources.yml are
// appended after the built-in list.
func NewCrisisAgent(extraKeywords []string) *CrisisAgent {
	keywords := make([]string, 0, len(crisisKeywords)+len(extraKeywords))
	keywords = append(keywords, crisisKeywords...)
	for _, k := range extraKeywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return &CrisisAgent{keywords: keywords}
}

// DetectCrisis runs one batch pass over the claims and emits an alert per
// matching claim. Severity is fixed HIGH and region Unknown (no NER).
func (a *CrisisAgent) DetectCrisis(claims []Claim) CrisisResponse {
	var alerts []CrisisAlert

	for _, claim := range claims {
		text := strings.ToLower(claim.Text)
		var matched []string
		for _, keyword := range a.keywords {
			if strings.Contains(text, keyword) {
				matched = append(matched, keyword)
			}
		}
		if len(matched) == 0 {
			continue
		}

		alerts = append(alerts, CrisisAlert{
			ID:          alertID(claim.Text),
			Title:       "Potential Crisis Detected",
			Severity:    "HIGH",
			Region:      "Unknown",
			Verified:    claim.Status == StatusVerified,
			Keywords:    matched,
			Description: claim.Text,
		})
	}

	resp := CrisisResponse{
		CrisisDetected: len(alerts) > 0,
		Alerts:         alerts,
	}
	if len(alerts) > 0 {
		resp.RecommendedActions = recommendedActions
	}
	return resp
}

// alertID derives a display key from the claim text. FNV is not collision
// resistant; these ids must not be used as stable external identifiers.
func alertID(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return fmt.Sprintf("%x", h.Sum64())
}
