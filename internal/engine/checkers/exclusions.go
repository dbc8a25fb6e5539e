// internal/engine/checkers/exclusions.go
package checkers

import (
	"fmt"
	"sort"
	"strings"

	"coi-compliance-engine/internal/models"
)

// ExclusionChecker scans the free-text policy notes of every coverage
// type for language disclaiming the trade under evaluation. Text is
// evaluated independently of the numeric fields: an exclusion disclaims
// coverage regardless of the stated limit, so a match is always
// critical.
type ExclusionChecker struct{}

func (ExclusionChecker) Name() string { return "exclusions" }

func (ExclusionChecker) Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue {
	if ctx.Patterns == nil {
		return nil
	}
	matcher := ctx.Patterns.ExclusionMatcher(ctx.Trade)
	if matcher == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var matched []string
	for _, ct := range models.AllCoverageTypes() {
		notes := coi.PolicyNotes[ct]
		if notes == "" {
			continue
		}
		result := matcher.Match(notes)
		for _, phrase := range result.Phrases {
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			matched = append(matched, phrase)
		}
	}

	if len(matched) == 0 {
		return nil
	}
	sort.Strings(matched)

	return []models.ComplianceIssue{{
		Category:       models.CategoryTradeExclusion,
		Severity:       models.SeverityCritical,
		Title:          fmt.Sprintf("Policy excludes %s work", ctx.Trade),
		Description:    fmt.Sprintf("The policy notes disclaim %s coverage: matched %s.", ctx.Trade, quotePhrases(matched)),
		Trade:          ctx.Trade,
		MatchedPhrases: matched,
	}}
}

func quotePhrases(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, ", ")
}
