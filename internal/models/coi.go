// internal/models/coi.go
package models

import "strings"

// COIRecord is the structured view of a certificate of insurance as the
// engine receives it. The engine treats it as read-only evidence: no
// checker or orchestrator code mutates it. Field names follow the
// certificate vocabulary used elsewhere in the platform
// (gl_per_occurrence, policy notes per coverage, NCCI class codes).
type COIRecord struct {
	// Limits holds the insured's actual numeric limit per coverage
	// type. A nil entry or a missing key means the certificate does
	// not evidence that coverage.
	Limits map[CoverageType]*int64 `json:"limits"`

	// PolicyNotes is free text transcribed from the certificate,
	// per coverage type. Exclusion language lives here.
	PolicyNotes map[CoverageType]string `json:"policyNotes,omitempty"`

	PolicyBasis PolicyBasis `json:"policyBasis,omitempty"`

	// WCStatutory reports whether statutory workers' compensation
	// coverage is evidenced.
	WCStatutory bool `json:"wcStatutory,omitempty"`

	// WCClassCodes are the NCCI-style classification codes declared
	// on the workers' compensation policy.
	WCClassCodes []int `json:"wcClassCodes,omitempty"`

	Endorsements []Endorsement `json:"endorsements,omitempty"`

	// AdditionalInsureds are the entity names actually listed as
	// additional insureds on the certificate.
	AdditionalInsureds []string `json:"additionalInsureds,omitempty"`
}

// Limit returns the actual limit for a coverage type and whether the
// certificate provides one at all.
func (c *COIRecord) Limit(ct CoverageType) (int64, bool) {
	if c == nil || c.Limits == nil {
		return 0, false
	}
	v, ok := c.Limits[ct]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// HasEndorsement reports whether the named endorsement appears on the
// certificate.
func (c *COIRecord) HasEndorsement(e Endorsement) bool {
	if c == nil {
		return false
	}
	for _, have := range c.Endorsements {
		if have == e {
			return true
		}
	}
	return false
}

// NamesAdditionalInsured reports whether entity appears in the
// certificate's additional-insured list. Matching is case-insensitive
// and substring-tolerant in both directions, so "Acme Builders LLC"
// satisfies a requirement for "Acme Builders".
func (c *COIRecord) NamesAdditionalInsured(entity string) bool {
	if c == nil {
		return false
	}
	want := strings.ToLower(strings.TrimSpace(entity))
	if want == "" {
		return false
	}
	for _, have := range c.AdditionalInsureds {
		got := strings.ToLower(strings.TrimSpace(have))
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return true
		}
	}
	return false
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
