// internal/engine/checkers/exclusions_test.go
package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coi-compliance-engine/internal/models"
)

func TestExclusionChecker_MatchIsCritical(t *testing.T) {
	coi := &models.COIRecord{
		PolicyNotes: map[models.CoverageType]string{
			models.CoverageGLPerOccurrence: "General Liability - no roofing work covered",
		},
	}

	issues := ExclusionChecker{}.Check(coi, testContext("roofing", models.RequirementSet{}))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.CategoryTradeExclusion, issue.Category)
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, "roofing", issue.Trade)
	assert.NotEmpty(t, issue.MatchedPhrases)
	assert.Contains(t, issue.Description, issue.MatchedPhrases[0])
}

// Numeric sufficiency never suppresses a text exclusion: the policy may
// state any limit and still disclaim the trade.
func TestExclusionChecker_IndependentOfLimits(t *testing.T) {
	coi := sufficientCOI()
	coi.PolicyNotes = map[models.CoverageType]string{
		models.CoverageGLPerOccurrence: "Roofing excluded per endorsement.",
	}

	req := models.RequirementSet{
		MinimumLimits: map[models.CoverageType]int64{
			models.CoverageGLPerOccurrence: 1_000_000,
		},
	}

	assert.Empty(t, LimitsChecker{}.Check(coi, testContext("roofing", req)))
	issues := ExclusionChecker{}.Check(coi, testContext("roofing", req))
	require.Len(t, issues, 1)
	assert.Equal(t, models.SeverityCritical, issues[0].Severity)
}

func TestExclusionChecker_ScansAllCoverageNotes(t *testing.T) {
	coi := &models.COIRecord{
		PolicyNotes: map[models.CoverageType]string{
			models.CoverageUmbrella: "umbrella follows form; excludes roofing operations",
		},
	}

	issues := ExclusionChecker{}.Check(coi, testContext("roofing", models.RequirementSet{}))
	require.Len(t, issues, 1)
}

func TestExclusionChecker_NoMatchNoIssue(t *testing.T) {
	coi := &models.COIRecord{
		PolicyNotes: map[models.CoverageType]string{
			models.CoverageGLPerOccurrence: "All operations of the insured are covered.",
		},
	}

	assert.Empty(t, ExclusionChecker{}.Check(coi, testContext("roofing", models.RequirementSet{})))
}

func TestExclusionChecker_OtherTradeExclusionIgnored(t *testing.T) {
	coi := &models.COIRecord{
		PolicyNotes: map[models.CoverageType]string{
			models.CoverageGLPerOccurrence: "no roofing work covered",
		},
	}

	assert.Empty(t, ExclusionChecker{}.Check(coi, testContext("electrical", models.RequirementSet{})))
}
