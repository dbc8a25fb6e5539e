// internal/engine/checkers/insureds_test.go
package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coi-compliance-engine/internal/models"
)

func TestAdditionalInsuredChecker_MissingEntity(t *testing.T) {
	req := models.RequirementSet{
		AdditionalInsureds: []string{"Project Owner", "Summit Construction"},
	}
	coi := &models.COIRecord{
		AdditionalInsureds: []string{"Summit Construction Group Inc."},
	}

	issues := AdditionalInsuredChecker{}.Check(coi, testContext("roofing", req))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.CategoryAdditionalInsured, issue.Category)
	assert.Equal(t, models.SeverityMedium, issue.Severity)
	assert.Equal(t, []string{"Project Owner"}, issue.MissingInsureds)
}

func TestAdditionalInsuredChecker_SubstringTolerantMatch(t *testing.T) {
	req := models.RequirementSet{
		AdditionalInsureds: []string{"Acme Builders"},
	}
	coi := &models.COIRecord{
		AdditionalInsureds: []string{"ACME BUILDERS LLC"},
	}

	assert.Empty(t, AdditionalInsuredChecker{}.Check(coi, testContext("roofing", req)))
}

func TestAdditionalInsuredChecker_NoRequirement(t *testing.T) {
	coi := &models.COIRecord{}
	assert.Empty(t, AdditionalInsuredChecker{}.Check(coi, testContext("roofing", models.RequirementSet{})))
}
