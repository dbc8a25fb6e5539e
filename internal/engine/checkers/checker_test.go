// internal/engine/checkers/checker_test.go
package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coi-compliance-engine/internal/engine/patterns"
	"coi-compliance-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func limit(v int64) *int64 { return &v }

func testContext(trade string, req models.RequirementSet) Context {
	return Context{
		Trade:        trade,
		Requirements: req,
		Patterns:     patterns.NewDefaultLibrary(),
	}
}

// sufficientCOI evidences more than enough of everything the default
// universal baseline asks for.
func sufficientCOI() *models.COIRecord {
	return &models.COIRecord{
		Limits: map[models.CoverageType]*int64{
			models.CoverageGLPerOccurrence:      limit(5_000_000),
			models.CoverageGLAggregate:          limit(10_000_000),
			models.CoverageUmbrella:             limit(10_000_000),
			models.CoverageAutoLiability:        limit(2_000_000),
			models.CoverageWCEmployersLiability: limit(1_000_000),
		},
		PolicyBasis: models.PolicyBasisOccurrence,
		WCStatutory: true,
		Endorsements: []models.Endorsement{
			models.EndorsementAdditionalInsured,
			models.EndorsementNoticeOfCancellation,
			models.EndorsementWaiverOfSubrogation,
			models.EndorsementPrimaryNoncontributory,
			models.EndorsementPerProjectAggregate,
		},
	}
}

func TestSeverityForShortfall(t *testing.T) {
	tests := []struct {
		name     string
		required int64
		actual   int64
		expected models.Severity
	}{
		{"half missing is critical", 1_000_000, 500_000, models.SeverityCritical},
		{"more than half missing is critical", 1_000_000, 100_000, models.SeverityCritical},
		{"quarter missing is high", 1_000_000, 750_000, models.SeverityHigh},
		{"third missing is high", 1_000_000, 660_000, models.SeverityHigh},
		{"fifth missing is medium", 1_000_000, 800_000, models.SeverityMedium},
		{"just below minimum is medium", 1_000_000, 999_999, models.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SeverityForShortfall(tt.required, tt.actual))
		})
	}
}

// Severity never decreases as the actual value moves toward zero.
func TestSeverityForShortfall_MonotonicInShortfall(t *testing.T) {
	const required = int64(1_000_000)

	prev := SeverityForShortfall(required, required-1)
	for actual := required - 1; actual >= 0; actual -= 50_000 {
		current := SeverityForShortfall(required, actual)
		assert.LessOrEqual(t, current.Rank(), prev.Rank(),
			"severity regressed at actual=%d", actual)
		prev = current
	}
}
