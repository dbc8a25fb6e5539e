// internal/engine/checkers/insureds.go
package checkers

import (
	"fmt"
	"sort"
	"strings"

	"coi-compliance-engine/internal/models"
)

// AdditionalInsuredChecker verifies that every entity the requirements
// name as an additional insured actually appears on the certificate.
// Entity matching is case-insensitive and substring-tolerant, so minor
// suffix differences ("LLC", "Inc.") do not produce false findings.
type AdditionalInsuredChecker struct{}

func (AdditionalInsuredChecker) Name() string { return "additional_insureds" }

func (AdditionalInsuredChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	var missing []string
	for _, entity := range ctx.Requirements.AdditionalInsureds {
		if !coi.NamesAdditionalInsured(entity) {
			missing = append(missing, entity)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)

	return []models.ComplianceIssue{{
		Category:        models.CategoryAdditionalInsured,
		Severity:        models.SeverityMedium,
		Title:           "Required additional insureds not named",
		Description:     fmt.Sprintf("The following parties must be named as additional insureds but do not appear on the certificate: %s.", strings.Join(missing, "; ")),
		MissingInsureds: missing,
	}}
}
