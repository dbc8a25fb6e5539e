// internal/engine/message/message.go

// Package message renders validation results into plain structured text
// for broker and GC communication, and computes requirement diffs when a
// subcontractor's trade scope changes. Rendering is deterministic
// template assembly over the structured issue data — nothing is
// re-parsed from free text, and no markup is emitted.
package message

import (
	"fmt"
	"strings"

	"coi-compliance-engine/internal/engine/resolver"
	"coi-compliance-engine/internal/models"
)

type Generator struct {
	resolver *resolver.Resolver
}

func NewGenerator(r *resolver.Resolver) *Generator {
	return &Generator{resolver: r}
}

var severityOrder = []models.Severity{
	models.SeverityCritical,
	models.SeverityHigh,
	models.SeverityMedium,
	models.SeverityLow,
}

var categoryHeadings = map[models.IssueCategory]string{
	models.CategoryLimits:                 "Coverage Limits",
	models.CategoryEndorsement:            "Endorsements",
	models.CategoryPolicyBasis:            "Policy Basis",
	models.CategoryTradeExclusion:         "Trade Exclusions",
	models.CategoryClassificationMismatch: "Classification Codes",
	models.CategoryAdditionalInsured:      "Additional Insureds",
}

// categoryOrder fixes the heading order within one severity band.
var categoryOrder = []models.IssueCategory{
	models.CategoryTradeExclusion,
	models.CategoryLimits,
	models.CategoryPolicyBasis,
	models.CategoryEndorsement,
	models.CategoryClassificationMismatch,
	models.CategoryAdditionalInsured,
}

// BrokerMessage renders one validation result as plain text: a status
// line, then one paragraph per issue grouped by category and ordered
// critical → high → medium → low, then advisory notes. Each paragraph
// states what is required, what is present and the specific gap, using
// the structured data on the issue.
func (g *Generator) BrokerMessage(result *models.ValidationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Insurance compliance review for: %s.\n", strings.Join(result.TradesEvaluated, ", "))
	if result.Compliant {
		b.WriteString("Status: COMPLIANT. The certificate meets all blocking requirements.\n")
	} else {
		fmt.Fprintf(&b, "Status: NOT COMPLIANT. %d deficiency(ies) must be corrected before approval.\n", len(result.Issues))
	}

	all := make([]models.ComplianceIssue, 0, len(result.Issues)+len(result.Warnings))
	all = append(all, result.Issues...)
	all = append(all, result.Warnings...)

	for _, severity := range severityOrder {
		for _, category := range categoryOrder {
			var section []models.ComplianceIssue
			for _, issue := range all {
				if issue.Severity == severity && issue.Category == category {
					section = append(section, issue)
				}
			}
			if len(section) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\n%s - %s\n", strings.ToUpper(string(severity)), categoryHeadings[category])
			for _, issue := range section {
				b.WriteString(renderIssue(issue))
			}
		}
	}

	if len(result.ExcludedTrades) > 0 {
		fmt.Fprintf(&b, "\nExcluded trades: coverage is explicitly disclaimed for %s. These exclusions must be removed or separately insured.\n",
			strings.Join(result.ExcludedTrades, ", "))
	}
	if len(result.LimitedTrades) > 0 {
		fmt.Fprintf(&b, "\nAdvisory: limits for %s meet the minimum but fall below the recommended level for the project. Consider increasing coverage.\n",
			strings.Join(result.LimitedTrades, ", "))
	}

	return b.String()
}

func renderIssue(issue models.ComplianceIssue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s: %s", issue.Title, issue.Description)
	if issue.RequiredLimit != nil && issue.ActualLimit != nil {
		shortfall := *issue.RequiredLimit - *issue.ActualLimit
		fmt.Fprintf(&b, " The gap is %s.", models.FormatAmount(shortfall))
	}
	b.WriteString("\n")
	return b.String()
}

// CompareTradesCoverage diffs two trade lists and resolves requirements
// only for the trades that were added, so an unchanged scope costs no
// recomputation.
func (g *Generator) CompareTradesCoverage(oldTrades, newTrades []string, project models.ProjectContext) models.TradeComparison {
	oldSet := toSet(models.NormalizeTrades(oldTrades))
	newNorm := models.NormalizeTrades(newTrades)
	newSet := toSet(newNorm)

	comparison := models.TradeComparison{
		AddedTrades:   []string{},
		RemovedTrades: []string{},
	}

	for _, trade := range newNorm {
		if _, existed := oldSet[trade]; !existed {
			comparison.AddedTrades = append(comparison.AddedTrades, trade)
		}
	}
	for _, trade := range models.NormalizeTrades(oldTrades) {
		if _, kept := newSet[trade]; !kept {
			comparison.RemovedTrades = append(comparison.RemovedTrades, trade)
		}
	}

	if len(comparison.AddedTrades) > 0 {
		comparison.AddedRequirements = make(map[string]models.RequirementSet, len(comparison.AddedTrades))
		for _, trade := range comparison.AddedTrades {
			comparison.AddedRequirements[trade] = g.resolver.Resolve(trade, project)
		}
	}

	return comparison
}

func toSet(trades []string) map[string]struct{} {
	set := make(map[string]struct{}, len(trades))
	for _, t := range trades {
		set[t] = struct{}{}
	}
	return set
}
