// internal/engine/validator/validator.go

// Package validator orchestrates a full compliance validation: it
// resolves the effective requirements for every required trade, runs the
// checker chain, deduplicates findings that repeat across trades and
// assembles the final result. It has no I/O and no failure mode —
// malformed or missing certificate fields flow through the checkers as
// shortfalls, never as errors.
package validator

import (
	"sort"
	"time"

	"coi-compliance-engine/internal/common/logger"
	"coi-compliance-engine/internal/common/metrics"
	"coi-compliance-engine/internal/engine/catalog"
	"coi-compliance-engine/internal/engine/checkers"
	"coi-compliance-engine/internal/engine/patterns"
	"coi-compliance-engine/internal/engine/resolver"
	"coi-compliance-engine/internal/models"
)

type Validator struct {
	resolver *resolver.Resolver
	patterns *patterns.Library
	checkers []checkers.Checker
	logger   logger.Logger
}

// New wires a Validator from its process-lifetime collaborators. The
// catalog and pattern library are read-only after construction, so one
// Validator is safe for unsynchronized concurrent use.
func New(cat *catalog.Catalog, lib *patterns.Library, log logger.Logger) *Validator {
	return &Validator{
		resolver: resolver.New(cat),
		patterns: lib,
		checkers: checkers.All(),
		logger:   log.WithFields(map[string]interface{}{"component": "validator"}),
	}
}

// Resolver exposes the validator's resolver for collaborators that need
// requirement resolution without a full validation (message diffing).
func (v *Validator) Resolver() *resolver.Resolver { return v.resolver }

// Validate evaluates one certificate against the effective requirements
// of every required trade and returns the aggregated result. The input
// record is never mutated.
func (v *Validator) Validate(coi *models.COIRecord, project models.ProjectContext, requiredTrades []string) *models.ValidationResult {
	start := time.Now()

	// A nil record is a certificate evidencing nothing; checkers then
	// report the absences instead of anyone touching a nil pointer.
	if coi == nil {
		coi = &models.COIRecord{}
	}

	trades := models.NormalizeTrades(requiredTrades)
	result := &models.ValidationResult{
		Issues:          []models.ComplianceIssue{},
		TradesEvaluated: trades,
	}

	seen := make(map[string]struct{})
	excluded := make(map[string]struct{})
	limited := make(map[string]struct{})

	for _, trade := range trades {
		requirements := v.resolver.Resolve(trade, project)
		ctx := checkers.Context{
			Trade:        trade,
			Requirements: requirements,
			Patterns:     v.patterns,
		}

		for _, checker := range v.checkers {
			for _, issue := range checker.Check(coi, ctx) {
				key := issue.DedupKey()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				issue.ID = models.NewIssueID(key)

				if issue.Category == models.CategoryTradeExclusion {
					excluded[issue.Trade] = struct{}{}
				}
				if issue.Severity.Blocks() {
					result.Issues = append(result.Issues, issue)
				} else {
					result.Warnings = append(result.Warnings, issue)
				}
				metrics.ComplianceIssuesTotal.WithLabelValues(string(issue.Category), string(issue.Severity)).Inc()
			}
		}

		if belowRecommended(coi, requirements) {
			limited[trade] = struct{}{}
		}
	}

	result.Compliant = len(result.Issues) == 0
	result.ExcludedTrades = sortedKeys(excluded)
	result.LimitedTrades = sortedKeys(limited)
	sortIssues(result.Issues)
	sortIssues(result.Warnings)

	metrics.ValidationsTotal.WithLabelValues(boolLabel(result.Compliant)).Inc()
	metrics.ExcludedTradesTotal.Add(float64(len(result.ExcludedTrades)))
	metrics.ValidationDuration.Observe(time.Since(start).Seconds())

	v.logger.Info("validation completed", map[string]interface{}{
		"trades":         trades,
		"compliant":      result.Compliant,
		"issues":         len(result.Issues),
		"warnings":       len(result.Warnings),
		"excludedTrades": result.ExcludedTrades,
	})

	return result
}

// belowRecommended reports whether any coverage limit meets its minimum
// but falls short of the advisory recommended threshold.
func belowRecommended(coi *models.COIRecord, req models.RequirementSet) bool {
	for ct, recommended := range req.RecommendedLimits {
		actual, present := coi.Limit(ct)
		if !present {
			continue
		}
		if min, hasMin := req.MinimumLimits[ct]; hasMin && actual < min {
			continue
		}
		if actual < recommended {
			return true
		}
	}
	return false
}

// sortIssues orders findings by severity, then category, then coverage
// type and trade, so results are deterministic for identical inputs.
func sortIssues(issues []models.ComplianceIssue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.CoverageType != b.CoverageType {
			return a.CoverageType < b.CoverageType
		}
		return a.Trade < b.Trade
	})
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func boolLabel(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
