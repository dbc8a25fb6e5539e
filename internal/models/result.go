// internal/models/result.go
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IssueCategory classifies how a certificate fails a requirement.
type IssueCategory string

const (
	CategoryPolicyBasis            IssueCategory = "policy_basis"
	CategoryLimits                 IssueCategory = "limits"
	CategoryEndorsement            IssueCategory = "endorsement"
	CategoryTradeExclusion         IssueCategory = "trade_exclusion"
	CategoryClassificationMismatch IssueCategory = "classification_mismatch"
	CategoryAdditionalInsured      IssueCategory = "additional_insured"
)

// Severity ranks how strongly an issue should gate approval.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank orders severities for sorting: lower rank is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// Blocks reports whether this severity prevents a compliant result.
func (s Severity) Blocks() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// ComplianceIssue is one structured deficiency finding. It carries
// enough data (required vs. actual numbers, matched phrases, missing
// names) that a message generator can rebuild the description without
// re-parsing anything.
type ComplianceIssue struct {
	ID          string        `json:"id"`
	Category    IssueCategory `json:"category"`
	Severity    Severity      `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`

	CoverageType CoverageType `json:"coverageType,omitempty"`
	Trade        string       `json:"trade,omitempty"`

	// RequiredLimit/ActualLimit are set for limits issues. ActualLimit
	// is nil when the certificate evidences no coverage at all.
	RequiredLimit *int64 `json:"required,omitempty"`
	ActualLimit   *int64 `json:"actual,omitempty"`

	MissingEndorsement Endorsement `json:"missingEndorsement,omitempty"`
	MissingInsureds    []string    `json:"missingInsureds,omitempty"`
	MatchedPhrases     []string    `json:"matchedPhrases,omitempty"`
}

// issueIDNamespace seeds name-based issue IDs. Changing it invalidates
// every previously issued ID.
var issueIDNamespace = uuid.MustParse("8a3c9f04-51d2-4e6b-b7a1-c0d94f2e6a17")

// NewIssueID derives a stable identifier from an issue's dedup key.
// Identical findings get identical IDs across validation runs, so
// downstream waiver bookkeeping can reference a finding without storing
// the whole issue.
func NewIssueID(dedupKey string) string {
	return uuid.NewSHA1(issueIDNamespace, []byte(dedupKey)).String()
}

// DedupKey identifies issues that describe the same underlying gap, so
// a single project-wide shortfall does not repeat per trade. Categories
// that are inherently trade-scoped keep the trade in the key.
func (i ComplianceIssue) DedupKey() string {
	req, act := "-", "-"
	if i.RequiredLimit != nil {
		req = fmt.Sprintf("%d", *i.RequiredLimit)
	}
	if i.ActualLimit != nil {
		act = fmt.Sprintf("%d", *i.ActualLimit)
	}
	key := fmt.Sprintf("%s|%s|%s|%s", i.Category, i.CoverageType, req, act)
	switch i.Category {
	case CategoryTradeExclusion, CategoryClassificationMismatch:
		key += "|" + i.Trade
	case CategoryEndorsement:
		key += "|" + string(i.MissingEndorsement)
	case CategoryAdditionalInsured:
		key += "|" + strings.Join(i.MissingInsureds, ",")
	}
	return key
}

// FormatAmount renders a dollar amount with thousands separators, e.g.
// $1,000,000.
func FormatAmount(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := false
	if v < 0 {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}

// ValidationResult is the aggregated outcome of validating one COI
// against the effective requirements of one or more trades.
type ValidationResult struct {
	// Compliant is true only when no critical or high severity issue
	// was found. Warnings never affect it.
	Compliant bool `json:"compliant"`

	// Issues holds critical and high severity findings.
	Issues []ComplianceIssue `json:"issues"`

	// Warnings holds medium and low severity findings. They surface
	// for advisory guidance and never block approval.
	Warnings []ComplianceIssue `json:"warnings,omitempty"`

	// ExcludedTrades are trades explicitly disclaimed by exclusion
	// language in the policy notes.
	ExcludedTrades []string `json:"excludedTrades,omitempty"`

	// LimitedTrades are trades whose limits meet the minimum but fall
	// below the recommended advisory threshold.
	LimitedTrades []string `json:"limitedTrades,omitempty"`

	// TradesEvaluated records the normalized trades this result covers.
	TradesEvaluated []string `json:"tradesEvaluated"`
}

// ProjectContext is the project-side input to requirement resolution.
type ProjectContext struct {
	Type string `json:"type,omitempty"`
	Tier string `json:"tier,omitempty"`
}

// TradeComparison describes how requirements change when a
// subcontractor's trade scope changes mid-project.
type TradeComparison struct {
	AddedTrades   []string `json:"addedTrades"`
	RemovedTrades []string `json:"removedTrades"`

	// AddedRequirements holds the fully resolved requirement set for
	// each added trade. Unchanged trades are not recomputed.
	AddedRequirements map[string]RequirementSet `json:"addedRequirements,omitempty"`
}
