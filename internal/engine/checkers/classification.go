// internal/engine/checkers/classification.go
package checkers

import (
	"fmt"
	"strings"

	"coi-compliance-engine/internal/models"
)

// ClassificationChecker cross-references the workers' compensation
// classification codes declared on the certificate against the code set
// expected for the trade. No intersection means the stated
// classification does not evidence coverage for the work — the policy
// may still cover it, so the finding is medium, not blocking.
type ClassificationChecker struct{}

func (ClassificationChecker) Name() string { return "classification" }

func (ClassificationChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	if ctx.Patterns == nil {
		return nil
	}
	expected := ctx.Patterns.CodesForTrade(ctx.Trade)
	if len(expected) == 0 {
		return nil
	}

	for _, declared := range coi.WCClassCodes {
		if ctx.Patterns.CodeCoversTrade(declared, ctx.Trade) {
			return nil
		}
	}

	return []models.ComplianceIssue{{
		Category:    models.CategoryClassificationMismatch,
		Severity:    models.SeverityMedium,
		Title:       fmt.Sprintf("Classification codes do not evidence %s work", ctx.Trade),
		Description: fmt.Sprintf("Work classified as %s is expected under code(s) %s, but the certificate declares %s.", ctx.Trade, formatCodes(expected), formatDeclared(coi.WCClassCodes)),
		Trade:       ctx.Trade,
	}}
}

func formatCodes(codes []int) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return strings.Join(parts, ", ")
}

func formatDeclared(codes []int) string {
	if len(codes) == 0 {
		return "no classification codes"
	}
	return "code(s) " + formatCodes(codes)
}
