// internal/engine/checkers/endorsements.go
package checkers

import (
	"fmt"

	"coi-compliance-engine/internal/models"
)

// EndorsementChecker verifies that every required endorsement appears on
// the certificate. Each missing endorsement is its own high-severity
// issue.
type EndorsementChecker struct{}

func (EndorsementChecker) Name() string { return "endorsements" }

func (EndorsementChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for _, required := range ctx.Requirements.Endorsements {
		if coi.HasEndorsement(required) {
			continue
		}
		issues = append(issues, models.ComplianceIssue{
			Category:           models.CategoryEndorsement,
			Severity:           models.SeverityHigh,
			Title:              fmt.Sprintf("Missing %s endorsement", required.DisplayName()),
			Description:        fmt.Sprintf("The %s endorsement is required but does not appear on the certificate.", required.DisplayName()),
			MissingEndorsement: required,
		})
	}

	return issues
}
