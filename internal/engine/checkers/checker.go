// internal/engine/checkers/checker.go

// Package checkers contains the independent, composable coverage checks
// run against a certificate: limits, endorsements, policy basis,
// classification codes, free-text exclusions and additional insureds.
// Checkers are pure: they read the certificate and the resolved
// requirements and return issues, never errors.
package checkers

import (
	"coi-compliance-engine/internal/engine/patterns"
	"coi-compliance-engine/internal/models"
)

// Context carries everything a checker may need beyond the certificate
// itself: the trade under evaluation, its resolved requirements and the
// shared pattern library.
type Context struct {
	Trade        string
	Requirements models.RequirementSet
	Patterns     *patterns.Library
}

// Checker is one composable compliance check.
type Checker interface {
	Name() string
	Check(coi *models.COIRecord, ctx Context) []models.ComplianceIssue
}

// All returns the full checker chain in its evaluation order.
func All() []Checker {
	return []Checker{
		LimitsChecker{},
		EndorsementChecker{},
		PolicyBasisChecker{},
		ClassificationChecker{},
		ExclusionChecker{},
		AdditionalInsuredChecker{},
	}
}

// SeverityForShortfall grades a present-but-insufficient limit by its
// shortfall ratio: at least half missing is critical, a quarter to a
// half is high, anything less is medium. Severity is monotonic in the
// shortfall.
func SeverityForShortfall(required, actual int64) models.Severity {
	if required <= 0 {
		return models.SeverityMedium
	}
	shortfall := float64(required-actual) / float64(required)
	switch {
	case shortfall >= 0.5:
		return models.SeverityCritical
	case shortfall >= 0.25:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}
