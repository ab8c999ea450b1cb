// Package verification decides whether a collector's photo corroborates the
// reported waste, based on an external image classifier's ranked labels.
package verification

import (
	"math"
	"strings"
)

// Policy holds the decision knobs: the confidence threshold and the scale that
// turns the top score into a quantity estimate.
type Policy struct {
	Threshold     float64
	QuantityScale int
}

// Outcome is the adapter's decision, persisted on the report as an opaque
// payload and returned to the caller.
type Outcome struct {
	WasteTypeMatch    bool    `json:"wasteTypeMatch"`
	QuantityMatch     bool    `json:"quantityMatch"`
	EstimatedQuantity int     `json:"estimatedQuantity"`
	Confidence        float64 `json:"confidence"`
	Verified          bool    `json:"verified"`
}

// Evaluate applies the decision rule: the declared waste type must appear
// among the returned labels, the quantity estimated from the top score must
// equal the declared amount, and the confidence must reach the threshold.
// Empty and malformed classifications always fail.
func (p Policy) Evaluate(classification Classification, wasteType, amount string) Outcome {

	if classification.Kind != KindRanked || len(classification.Candidates) == 0 {
		return Outcome{}
	}

	outcome := Outcome{
		WasteTypeMatch: labelsContain(classification.Candidates, wasteType),
	}

	top := classification.Candidates[0].Score
	outcome.EstimatedQuantity = int(math.Ceil(top * float64(p.QuantityScale)))

	if declared, ok := leadingInt(amount); ok {
		outcome.QuantityMatch = outcome.EstimatedQuantity == declared
	}

	outcome.Confidence = math.Max(0, math.Min(top, 1))
	outcome.Verified = outcome.WasteTypeMatch && outcome.QuantityMatch && outcome.Confidence >= p.Threshold

	return outcome
}

// labelsContain matches case-insensitively; classifier labels are often
// multi-word ("plastic bag, plastic wrap"), so a declared type also matches
// as a substring of a label.
func labelsContain(candidates []Candidate, wasteType string) bool {
	needle := strings.ToLower(strings.TrimSpace(wasteType))
	if needle == "" {
		return false
	}

	for _, candidate := range candidates {
		label := strings.ToLower(candidate.Label)
		if label == needle || strings.Contains(label, needle) {
			return true
		}
	}
	return false
}

// leadingInt parses the integer prefix of a declared amount, so "5" and
// "5 kg" both compare as 5.
func leadingInt(amount string) (int, bool) {
	s := strings.TrimSpace(amount)

	var n, digits int
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}

	return n, digits > 0
}
