// internal/models/requirements.go
package models

import "sort"

// RequirementSet is the fully resolved, effective coverage requirement
// for one (project, trade) pairing. A coverage type absent from
// MinimumLimits is not required at all.
type RequirementSet struct {
	MinimumLimits       map[CoverageType]int64 `json:"minimumLimits"`
	RecommendedLimits   map[CoverageType]int64 `json:"recommendedLimits,omitempty"`
	Endorsements        []Endorsement          `json:"endorsements,omitempty"`
	PolicyBasis         PolicyBasis            `json:"policyBasis,omitempty"`
	AdditionalInsureds  []string               `json:"additionalInsureds,omitempty"`
	WCStatutoryRequired bool                   `json:"wcStatutoryRequired,omitempty"`
}

// Clone returns a deep copy so callers can never alias catalog state.
func (r RequirementSet) Clone() RequirementSet {
	out := RequirementSet{
		PolicyBasis:         r.PolicyBasis,
		WCStatutoryRequired: r.WCStatutoryRequired,
	}
	if r.MinimumLimits != nil {
		out.MinimumLimits = make(map[CoverageType]int64, len(r.MinimumLimits))
		for ct, v := range r.MinimumLimits {
			out.MinimumLimits[ct] = v
		}
	}
	if r.RecommendedLimits != nil {
		out.RecommendedLimits = make(map[CoverageType]int64, len(r.RecommendedLimits))
		for ct, v := range r.RecommendedLimits {
			out.RecommendedLimits[ct] = v
		}
	}
	out.Endorsements = append([]Endorsement(nil), r.Endorsements...)
	out.AdditionalInsureds = append([]string(nil), r.AdditionalInsureds...)
	return out
}

// RequiresEndorsement reports whether e is in the required endorsement set.
func (r RequirementSet) RequiresEndorsement(e Endorsement) bool {
	for _, have := range r.Endorsements {
		if have == e {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set carries no requirements at all.
func (r RequirementSet) IsEmpty() bool {
	return len(r.MinimumLimits) == 0 &&
		len(r.Endorsements) == 0 &&
		len(r.AdditionalInsureds) == 0 &&
		r.PolicyBasis == PolicyBasisUnspecified &&
		!r.WCStatutoryRequired
}

// AddEndorsements unions additional endorsements into the set, keeping
// the list sorted and duplicate-free.
func (r *RequirementSet) AddEndorsements(es ...Endorsement) {
	for _, e := range es {
		if !r.RequiresEndorsement(e) {
			r.Endorsements = append(r.Endorsements, e)
		}
	}
	sort.Slice(r.Endorsements, func(i, j int) bool { return r.Endorsements[i] < r.Endorsements[j] })
}

// AddAdditionalInsureds unions entity names into the additional-insured
// requirement, case-insensitively deduplicated, sorted.
func (r *RequirementSet) AddAdditionalInsureds(names ...string) {
	for _, name := range names {
		dup := false
		for _, have := range r.AdditionalInsureds {
			if equalFoldTrim(have, name) {
				dup = true
				break
			}
		}
		if !dup && name != "" {
			r.AdditionalInsureds = append(r.AdditionalInsureds, name)
		}
	}
	sort.Strings(r.AdditionalInsureds)
}

// RequirementOverlay is one catalog layer: only the fields it sets
// participate in the merge. Limits override field-by-field; endorsements
// and additional insureds union; pointer fields inherit when nil.
type RequirementOverlay struct {
	MinimumLimits       map[CoverageType]int64
	RecommendedLimits   map[CoverageType]int64
	Endorsements        []Endorsement
	PolicyBasis         *PolicyBasis
	AdditionalInsureds  []string
	WCStatutoryRequired *bool
}

// Clone returns a deep copy of the overlay.
func (o RequirementOverlay) Clone() RequirementOverlay {
	out := RequirementOverlay{}
	if o.MinimumLimits != nil {
		out.MinimumLimits = make(map[CoverageType]int64, len(o.MinimumLimits))
		for ct, v := range o.MinimumLimits {
			out.MinimumLimits[ct] = v
		}
	}
	if o.RecommendedLimits != nil {
		out.RecommendedLimits = make(map[CoverageType]int64, len(o.RecommendedLimits))
		for ct, v := range o.RecommendedLimits {
			out.RecommendedLimits[ct] = v
		}
	}
	out.Endorsements = append([]Endorsement(nil), o.Endorsements...)
	out.AdditionalInsureds = append([]string(nil), o.AdditionalInsureds...)
	if o.PolicyBasis != nil {
		b := *o.PolicyBasis
		out.PolicyBasis = &b
	}
	if o.WCStatutoryRequired != nil {
		w := *o.WCStatutoryRequired
		out.WCStatutoryRequired = &w
	}
	return out
}
