// internal/engine/checkers/limits.go
package checkers

import (
	"fmt"

	"coi-compliance-engine/internal/models"
)

// LimitsChecker compares the certificate's actual numeric limits to the
// resolved minimums, coverage type by coverage type. A required coverage
// the certificate does not evidence at all is critical; an insufficient
// limit is graded by its shortfall ratio. Exactly meeting the minimum is
// compliant.
type LimitsChecker struct{}

func (LimitsChecker) Name() string { return "limits" }

func (LimitsChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	var issues []models.ComplianceIssue

	for _, ct := range models.AllCoverageTypes() {
		required, ok := ctx.Requirements.MinimumLimits[ct]
		if !ok {
			continue
		}

		actual, present := coi.Limit(ct)
		if !present {
			req := required
			issues = append(issues, models.ComplianceIssue{
				Category:      models.CategoryLimits,
				Severity:      models.SeverityCritical,
				Title:         fmt.Sprintf("%s coverage not evidenced", ct.DisplayName()),
				Description:   fmt.Sprintf("%s requires a minimum limit of %s, but the certificate does not evidence this coverage.", ct.DisplayName(), models.FormatAmount(required)),
				CoverageType:  ct,
				RequiredLimit: &req,
			})
			continue
		}

		if actual < required {
			req, act := required, actual
			issues = append(issues, models.ComplianceIssue{
				Category:      models.CategoryLimits,
				Severity:      SeverityForShortfall(required, actual),
				Title:         fmt.Sprintf("%s limit below minimum", ct.DisplayName()),
				Description:   fmt.Sprintf("%s requires a minimum limit of %s; the certificate shows %s.", ct.DisplayName(), models.FormatAmount(required), models.FormatAmount(actual)),
				CoverageType:  ct,
				RequiredLimit: &req,
				ActualLimit:   &act,
			})
		}
	}

	if ctx.Requirements.WCStatutoryRequired && !coi.WCStatutory {
		issues = append(issues, models.ComplianceIssue{
			Category:    models.CategoryLimits,
			Severity:    models.SeverityCritical,
			Title:       "Statutory workers' compensation not evidenced",
			Description: "Statutory workers' compensation coverage is required but the certificate does not evidence it.",
		})
	}

	return issues
}
