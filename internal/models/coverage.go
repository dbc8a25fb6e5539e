// internal/models/coverage.go
package models

import "strings"

// CoverageType is the closed set of coverage limit fields the engine
// understands. Checkers iterate AllCoverageTypes instead of building
// field names dynamically.
type CoverageType string

const (
	CoverageGLPerOccurrence      CoverageType = "gl_per_occurrence"
	CoverageGLAggregate          CoverageType = "gl_aggregate"
	CoverageUmbrella             CoverageType = "umbrella"
	CoverageAutoLiability        CoverageType = "auto_liability"
	CoverageWCEmployersLiability CoverageType = "wc_employers_liability"
)

// AllCoverageTypes returns every coverage type in a fixed order so that
// checker output is deterministic across runs.
func AllCoverageTypes() []CoverageType {
	return []CoverageType{
		CoverageGLPerOccurrence,
		CoverageGLAggregate,
		CoverageUmbrella,
		CoverageAutoLiability,
		CoverageWCEmployersLiability,
	}
}

// IsValid reports whether ct is one of the known coverage types.
func (ct CoverageType) IsValid() bool {
	switch ct {
	case CoverageGLPerOccurrence, CoverageGLAggregate, CoverageUmbrella,
		CoverageAutoLiability, CoverageWCEmployersLiability:
		return true
	}
	return false
}

// DisplayName returns the broker-facing name of the coverage type.
func (ct CoverageType) DisplayName() string {
	switch ct {
	case CoverageGLPerOccurrence:
		return "General Liability (per occurrence)"
	case CoverageGLAggregate:
		return "General Liability (aggregate)"
	case CoverageUmbrella:
		return "Umbrella/Excess Liability"
	case CoverageAutoLiability:
		return "Automobile Liability"
	case CoverageWCEmployersLiability:
		return "Workers' Compensation (employer's liability)"
	}
	return string(ct)
}

// PolicyBasis distinguishes occurrence policies from claims-made policies.
type PolicyBasis string

const (
	PolicyBasisUnspecified PolicyBasis = ""
	PolicyBasisOccurrence  PolicyBasis = "occurrence"
	PolicyBasisClaimsMade  PolicyBasis = "claims_made"
)

// IsValid reports whether b is a known basis (unspecified counts).
func (b PolicyBasis) IsValid() bool {
	return b == PolicyBasisUnspecified || b == PolicyBasisOccurrence || b == PolicyBasisClaimsMade
}

// Endorsement is a named policy rider that must be explicitly present.
type Endorsement string

const (
	EndorsementAdditionalInsured      Endorsement = "additional_insured"
	EndorsementWaiverOfSubrogation    Endorsement = "waiver_of_subrogation"
	EndorsementPrimaryNoncontributory Endorsement = "primary_noncontributory"
	EndorsementNoticeOfCancellation   Endorsement = "notice_of_cancellation"
	EndorsementPerProjectAggregate    Endorsement = "per_project_aggregate"
)

// DisplayName returns the broker-facing name of the endorsement.
func (e Endorsement) DisplayName() string {
	switch e {
	case EndorsementAdditionalInsured:
		return "Additional Insured"
	case EndorsementWaiverOfSubrogation:
		return "Waiver of Subrogation"
	case EndorsementPrimaryNoncontributory:
		return "Primary and Non-Contributory"
	case EndorsementNoticeOfCancellation:
		return "Notice of Cancellation"
	case EndorsementPerProjectAggregate:
		return "Per-Project Aggregate"
	}
	return string(e)
}

// NormalizeTrade lower-cases and trims a trade key. Every lookup and
// comparison on trades goes through this first.
func NormalizeTrade(trade string) string {
	return strings.ToLower(strings.TrimSpace(trade))
}

// NormalizeTrades normalizes a trade list, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeTrades(trades []string) []string {
	seen := make(map[string]struct{}, len(trades))
	out := make([]string, 0, len(trades))
	for _, t := range trades {
		n := NormalizeTrade(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
