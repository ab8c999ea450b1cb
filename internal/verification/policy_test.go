package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	policy := Policy{Threshold: 0.6, QuantityScale: 5}

	tests := []struct {
		name           string
		classification Classification
		wasteType      string
		amount         string
		verified       bool
		typeMatch      bool
		quantityMatch  bool
	}{
		{
			name: "matching type and quantity verifies",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "5",
			verified:      true,
			typeMatch:     true,
			quantityMatch: true,
		},
		{
			name: "wrong label fails",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "metal", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "5",
			verified:      false,
			typeMatch:     false,
			quantityMatch: true,
		},
		{
			name: "quantity mismatch fails",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "12",
			verified:      false,
			typeMatch:     true,
			quantityMatch: false,
		},
		{
			name: "low confidence fails despite matches",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic", Score: 0.2}},
			},
			wasteType:     "plastic",
			amount:        "1",
			verified:      false,
			typeMatch:     true,
			quantityMatch: true,
		},
		{
			name: "substring label match",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic bag, plastic wrap", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "5",
			verified:      true,
			typeMatch:     true,
			quantityMatch: true,
		},
		{
			name: "amount with unit suffix",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "5 kg",
			verified:      true,
			typeMatch:     true,
			quantityMatch: true,
		},
		{
			name: "match below top candidate still counts for type",
			classification: Classification{
				Kind: KindRanked,
				Candidates: []Candidate{
					{Label: "garbage truck", Score: 0.9},
					{Label: "plastic bottle", Score: 0.05},
				},
			},
			wasteType:     "plastic",
			amount:        "5",
			verified:      true,
			typeMatch:     true,
			quantityMatch: true,
		},
		{
			name:           "empty classification fails",
			classification: Classification{Kind: KindEmpty},
			wasteType:      "plastic",
			amount:         "5",
		},
		{
			name:           "malformed classification fails",
			classification: Classification{Kind: KindMalformed},
			wasteType:      "plastic",
			amount:         "5",
		},
		{
			name: "non-numeric amount never matches quantity",
			classification: Classification{
				Kind:       KindRanked,
				Candidates: []Candidate{{Label: "plastic", Score: 0.9}},
			},
			wasteType:     "plastic",
			amount:        "some",
			verified:      false,
			typeMatch:     true,
			quantityMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := policy.Evaluate(tt.classification, tt.wasteType, tt.amount)
			assert.Equal(t, tt.verified, outcome.Verified)
			assert.Equal(t, tt.typeMatch, outcome.WasteTypeMatch)
			assert.Equal(t, tt.quantityMatch, outcome.QuantityMatch)
		})
	}
}

func TestEvaluateThresholdInclusive(t *testing.T) {
	policy := Policy{Threshold: 0.6, QuantityScale: 5}

	classification := Classification{
		Kind:       KindRanked,
		Candidates: []Candidate{{Label: "plastic", Score: 0.6}},
	}

	outcome := policy.Evaluate(classification, "plastic", "3")
	assert.True(t, outcome.QuantityMatch)
	assert.True(t, outcome.Verified)
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"5", 5, true},
		{"5 kg", 5, true},
		{" 12 bags", 12, true},
		{"kg 5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := leadingInt(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}
