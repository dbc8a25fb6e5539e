// internal/engine/checkers/policybasis.go
package checkers

import (
	"coi-compliance-engine/internal/models"
)

// PolicyBasisChecker flags a claims-made policy offered where occurrence
// basis is required. That is the unacceptable direction; an occurrence
// policy offered where claims-made is required is not flagged, and an
// unspecified basis on the certificate is treated as not provided rather
// than as a mismatch.
type PolicyBasisChecker struct{}

func (PolicyBasisChecker) Name() string { return "policy_basis" }

func (PolicyBasisChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	if ctx.Requirements.PolicyBasis != models.PolicyBasisOccurrence {
		return nil
	}
	if coi.PolicyBasis != models.PolicyBasisClaimsMade {
		return nil
	}

	return []models.ComplianceIssue{{
		Category:    models.CategoryPolicyBasis,
		Severity:    models.SeverityHigh,
		Title:       "Claims-made policy where occurrence basis is required",
		Description: "The requirements mandate occurrence-basis coverage, but the certificate declares a claims-made policy.",
	}}
}
