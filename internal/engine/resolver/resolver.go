// internal/engine/resolver/resolver.go

// Package resolver merges the catalog layers into one effective
// requirement set for a (project, trade) pair. Merge order is
// Universal → Tier → Trade → Project modifier; later layers win
// field-by-field.
package resolver

import (
	"coi-compliance-engine/internal/engine/catalog"
	"coi-compliance-engine/internal/models"
)

type Resolver struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve computes the effective requirement set for one trade in one
// project context. It is pure and never fails: an unrecognized trade,
// tier or project type simply contributes no layer.
//
// Numeric minimums follow strict precedence: a later layer overrides an
// earlier one even when its number is lower. More specific context wins
// by policy, not strictness. Endorsements and additional-insured
// entities merge by set union only — layers can add those requirements
// but never remove them.
func (r *Resolver) Resolve(trade string, project models.ProjectContext) models.RequirementSet {
	effective := r.catalog.UniversalRequirements()

	applyOverlay(&effective, r.catalog.TierRequirements(project.Tier))
	applyOverlay(&effective, r.catalog.TradeRequirements(trade))
	applyOverlay(&effective, r.catalog.ProjectModifiers(project.Type))

	// Catalog validation is layer-local, so a later layer may raise a
	// minimum past an earlier layer's recommendation. A recommendation at
	// or below the effective minimum can never fire; drop it so the
	// advisory threshold stays meaningful.
	for ct, rec := range effective.RecommendedLimits {
		if min, ok := effective.MinimumLimits[ct]; ok && rec <= min {
			delete(effective.RecommendedLimits, ct)
		}
	}

	return effective
}

func applyOverlay(base *models.RequirementSet, o *models.RequirementOverlay) {
	if o == nil {
		return
	}
	if len(o.MinimumLimits) > 0 {
		if base.MinimumLimits == nil {
			base.MinimumLimits = make(map[models.CoverageType]int64, len(o.MinimumLimits))
		}
		for ct, v := range o.MinimumLimits {
			base.MinimumLimits[ct] = v
		}
	}
	if len(o.RecommendedLimits) > 0 {
		if base.RecommendedLimits == nil {
			base.RecommendedLimits = make(map[models.CoverageType]int64, len(o.RecommendedLimits))
		}
		for ct, v := range o.RecommendedLimits {
			base.RecommendedLimits[ct] = v
		}
	}
	base.AddEndorsements(o.Endorsements...)
	base.AddAdditionalInsureds(o.AdditionalInsureds...)
	if o.PolicyBasis != nil {
		base.PolicyBasis = *o.PolicyBasis
	}
	if o.WCStatutoryRequired != nil {
		base.WCStatutoryRequired = *o.WCStatutoryRequired
	}
}
