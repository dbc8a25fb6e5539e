// internal/engine/validator/validator_test.go
package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coi-compliance-engine/internal/common/logger"
	"coi-compliance-engine/internal/engine/catalog"
	"coi-compliance-engine/internal/engine/patterns"
	"coi-compliance-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return New(catalog.NewDefault(), patterns.NewDefaultLibrary(), logger.NewTestLogger(t))
}

func limit(v int64) *int64 { return &v }

// compliantRoofingCOI satisfies every default requirement for the
// roofing trade with room to spare.
func compliantRoofingCOI() *models.COIRecord {
	return &models.COIRecord{
		Limits: map[models.CoverageType]*int64{
			models.CoverageGLPerOccurrence:      limit(5_000_000),
			models.CoverageGLAggregate:          limit(10_000_000),
			models.CoverageUmbrella:             limit(10_000_000),
			models.CoverageAutoLiability:        limit(2_000_000),
			models.CoverageWCEmployersLiability: limit(1_000_000),
		},
		PolicyBasis:  models.PolicyBasisOccurrence,
		WCStatutory:  true,
		WCClassCodes: []int{5551},
		Endorsements: []models.Endorsement{
			models.EndorsementAdditionalInsured,
			models.EndorsementNoticeOfCancellation,
			models.EndorsementWaiverOfSubrogation,
			models.EndorsementPrimaryNoncontributory,
		},
	}
}

func TestValidate_CompliantCertificate(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(compliantRoofingCOI(), models.ProjectContext{}, []string{"roofing"})

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.ExcludedTrades)
	assert.Empty(t, result.LimitedTrades)
	assert.Equal(t, []string{"roofing"}, result.TradesEvaluated)
}

func TestValidate_LimitShortfallBlocks(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	// 500k against the 2M roofing minimum is a 75% shortfall.
	coi.Limits[models.CoverageGLPerOccurrence] = limit(500_000)

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, models.CategoryLimits, issue.Category)
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, models.CoverageGLPerOccurrence, issue.CoverageType)
	require.NotNil(t, issue.RequiredLimit)
	assert.Equal(t, int64(2_000_000), *issue.RequiredLimit)
	require.NotNil(t, issue.ActualLimit)
	assert.Equal(t, int64(500_000), *issue.ActualLimit)
	assert.NotEmpty(t, issue.ID)
}

func TestValidate_TradeExclusionBlocks(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.PolicyNotes = map[models.CoverageType]string{
		models.CoverageGLPerOccurrence: "General Liability - no roofing work covered",
	}

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.False(t, result.Compliant)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, models.CategoryTradeExclusion, result.Issues[0].Category)
	assert.Equal(t, []string{"roofing"}, result.ExcludedTrades)
}

// Two trades sharing the same effective minimum produce one finding for
// the shared shortfall, not one per trade.
func TestValidate_SharedShortfallDeduplicated(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.WCClassCodes = []int{5551, 6217}
	coi.Limits[models.CoverageGLPerOccurrence] = limit(1_000_000)

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing", "excavation"})

	require.Len(t, result.Issues, 1)
	assert.Equal(t, models.CategoryLimits, result.Issues[0].Category)
	assert.Equal(t, models.CoverageGLPerOccurrence, result.Issues[0].CoverageType)
}

// Trade-scoped findings stay distinct even when their shapes repeat.
func TestValidate_TradeScopedFindingsNotMerged(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.WCClassCodes = []int{5551, 6217}
	coi.PolicyNotes = map[models.CoverageType]string{
		models.CoverageGLPerOccurrence: "excludes roofing; excludes excavation",
	}

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing", "excavation"})

	assert.Len(t, result.Issues, 2)
	assert.ElementsMatch(t, []string{"excavation", "roofing"}, result.ExcludedTrades)
}

func TestValidate_MediumFindingsAreWarningsOnly(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.WCClassCodes = []int{5403} // carpentry, not roofing

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, models.CategoryClassificationMismatch, result.Warnings[0].Category)
}

func TestValidate_LimitedTrades(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	// Meets the 2M roofing minimum but sits below the 3M recommendation.
	coi.Limits[models.CoverageGLPerOccurrence] = limit(2_000_000)

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.True(t, result.Compliant)
	assert.Equal(t, []string{"roofing"}, result.LimitedTrades)
}

func TestValidate_ProjectContextTightensRequirements(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.Limits[models.CoverageUmbrella] = limit(5_000_000)

	// 5M umbrella satisfies roofing alone but not a high-rise project.
	baseline := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})
	assert.True(t, baseline.Compliant)

	highRise := v.Validate(coi, models.ProjectContext{Type: "high_rise"}, []string{"roofing"})
	assert.False(t, highRise.Compliant)
	require.Len(t, highRise.Issues, 1)
	assert.Equal(t, models.CoverageUmbrella, highRise.Issues[0].CoverageType)
	require.NotNil(t, highRise.Issues[0].RequiredLimit)
	assert.Equal(t, int64(10_000_000), *highRise.Issues[0].RequiredLimit)
}

func TestValidate_NormalizesTradeInput(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(compliantRoofingCOI(), models.ProjectContext{}, []string{"  Roofing ", "ROOFING", "roofing"})

	assert.Equal(t, []string{"roofing"}, result.TradesEvaluated)
}

func TestValidate_DoesNotMutateRecord(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.Limits[models.CoverageGLPerOccurrence] = limit(500_000)
	coi.PolicyNotes = map[models.CoverageType]string{
		models.CoverageGLPerOccurrence: "excludes roofing",
	}
	snapshot := *coi
	snapshotLimit := *coi.Limits[models.CoverageGLPerOccurrence]

	v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.Equal(t, snapshot.PolicyBasis, coi.PolicyBasis)
	assert.Equal(t, snapshot.WCClassCodes, coi.WCClassCodes)
	assert.Equal(t, snapshotLimit, *coi.Limits[models.CoverageGLPerOccurrence])
	assert.Equal(t, snapshot.PolicyNotes, coi.PolicyNotes)
}

// Repeated validation of the same inputs yields deep-equal results,
// issue IDs included: IDs derive from the finding itself, never from
// run state.
func TestValidate_Deterministic(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.Limits[models.CoverageGLPerOccurrence] = limit(500_000)
	delete(coi.Limits, models.CoverageAutoLiability)
	coi.WCClassCodes = nil
	coi.Endorsements = nil

	first := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})
	second := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	assert.Equal(t, first, second)
	for _, issue := range first.Issues {
		assert.NotEmpty(t, issue.ID)
	}
}

// The same gap found by an independently constructed validator carries
// the same ID, so callers can key waiver records on it.
func TestValidate_IssueIDsStableAcrossValidators(t *testing.T) {
	coi := compliantRoofingCOI()
	coi.Limits[models.CoverageGLPerOccurrence] = limit(500_000)

	first := newTestValidator(t).Validate(coi, models.ProjectContext{}, []string{"roofing"})
	second := newTestValidator(t).Validate(coi, models.ProjectContext{}, []string{"roofing"})

	require.Len(t, first.Issues, 1)
	require.Len(t, second.Issues, 1)
	assert.Equal(t, first.Issues[0].ID, second.Issues[0].ID)
}

func TestValidate_NilRecordReportsAbsences(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(nil, models.ProjectContext{}, []string{"roofing"})

	assert.False(t, result.Compliant)
	assert.NotEmpty(t, result.Issues)
	for _, issue := range result.Issues {
		if issue.Category == models.CategoryLimits && issue.CoverageType != "" {
			assert.Nil(t, issue.ActualLimit)
		}
	}
}

func TestValidate_IssuesSortedBySeverity(t *testing.T) {
	v := newTestValidator(t)

	coi := compliantRoofingCOI()
	coi.Limits[models.CoverageGLPerOccurrence] = limit(500_000) // critical
	coi.Endorsements = []models.Endorsement{                    // waiver missing: high
		models.EndorsementAdditionalInsured,
		models.EndorsementNoticeOfCancellation,
		models.EndorsementPrimaryNoncontributory,
	}

	result := v.Validate(coi, models.ProjectContext{}, []string{"roofing"})

	require.GreaterOrEqual(t, len(result.Issues), 2)
	for i := 1; i < len(result.Issues); i++ {
		assert.LessOrEqual(t, result.Issues[i-1].Severity.Rank(), result.Issues[i].Severity.Rank())
	}
}

func TestValidate_NoTrades(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(compliantRoofingCOI(), models.ProjectContext{}, nil)

	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.TradesEvaluated)
}
