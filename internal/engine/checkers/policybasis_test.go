// internal/engine/checkers/policybasis_test.go
package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coi-compliance-engine/internal/models"
)

func TestPolicyBasisChecker(t *testing.T) {
	tests := []struct {
		name      string
		required  models.PolicyBasis
		declared  models.PolicyBasis
		wantIssue bool
	}{
		{
			name:      "claims-made where occurrence required",
			required:  models.PolicyBasisOccurrence,
			declared:  models.PolicyBasisClaimsMade,
			wantIssue: true,
		},
		{
			name:      "occurrence where occurrence required",
			required:  models.PolicyBasisOccurrence,
			declared:  models.PolicyBasisOccurrence,
			wantIssue: false,
		},
		{
			name:      "unspecified basis is not a mismatch",
			required:  models.PolicyBasisOccurrence,
			declared:  models.PolicyBasisUnspecified,
			wantIssue: false,
		},
		{
			name:      "occurrence where claims-made required is not flagged",
			required:  models.PolicyBasisClaimsMade,
			declared:  models.PolicyBasisOccurrence,
			wantIssue: false,
		},
		{
			name:      "no basis requirement",
			required:  models.PolicyBasisUnspecified,
			declared:  models.PolicyBasisClaimsMade,
			wantIssue: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := models.RequirementSet{PolicyBasis: tt.required}
			coi := &models.COIRecord{PolicyBasis: tt.declared}

			issues := PolicyBasisChecker{}.Check(coi, testContext("roofing", req))
			if tt.wantIssue {
				require.Len(t, issues, 1)
				assert.Equal(t, models.CategoryPolicyBasis, issues[0].Category)
				assert.Equal(t, models.SeverityHigh, issues[0].Severity)
			} else {
				assert.Empty(t, issues)
			}
		})
	}
}
