// internal/engine/catalog/catalog.go

// Package catalog holds the requirement data the resolver merges:
// universal minimums, per-trade overrides, project-type modifiers and
// program tier definitions. A Catalog is read-only after construction;
// all lookups are case-insensitive and absence of an override is data,
// not an error.
package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	commonerrors "coi-compliance-engine/internal/common/errors"
	"coi-compliance-engine/internal/models"
)

type Catalog struct {
	universal    models.RequirementSet
	trades       map[string]models.RequirementOverlay
	projectTypes map[string]models.RequirementOverlay
	tiers        map[string]models.RequirementOverlay
}

// NewDefault returns the compiled-in catalog. The defaults are validated
// data, so failure here is a programming error and panics at startup.
func NewDefault() *Catalog {
	c := defaultCatalog()
	if err := c.validate(); err != nil {
		panic(err)
	}
	return c
}

// UniversalRequirements returns the baseline requirement set that
// applies to every subcontractor regardless of trade.
func (c *Catalog) UniversalRequirements() models.RequirementSet {
	return c.universal.Clone()
}

// TradeRequirements returns the override layer for a trade, or nil when
// none exists — nil means the universal baseline applies unchanged.
func (c *Catalog) TradeRequirements(trade string) *models.RequirementOverlay {
	return lookupOverlay(c.trades, trade)
}

// ProjectModifiers returns the override layer for a project type, or nil.
func (c *Catalog) ProjectModifiers(projectType string) *models.RequirementOverlay {
	return lookupOverlay(c.projectTypes, projectType)
}

// TierRequirements returns the override layer for a program tier, or nil.
func (c *Catalog) TierRequirements(tier string) *models.RequirementOverlay {
	return lookupOverlay(c.tiers, tier)
}

// Trades returns the trade keys that carry overrides, for diagnostics.
func (c *Catalog) Trades() []string {
	out := make([]string, 0, len(c.trades))
	for t := range c.trades {
		out = append(out, t)
	}
	return out
}

func lookupOverlay(m map[string]models.RequirementOverlay, key string) *models.RequirementOverlay {
	o, ok := m[models.NormalizeTrade(key)]
	if !ok {
		return nil
	}
	clone := o.Clone()
	return &clone
}

// validate enforces the invariants a catalog must satisfy before any
// validation call may run: non-negative minimums, recommended limits at
// or above the minimum within the same layer, known policy bases.
func (c *Catalog) validate() error {
	uni := models.RequirementOverlay{
		MinimumLimits:     c.universal.MinimumLimits,
		RecommendedLimits: c.universal.RecommendedLimits,
	}
	if !c.universal.PolicyBasis.IsValid() {
		return commonerrors.NewUnknownPolicyBasisError("universal", string(c.universal.PolicyBasis))
	}
	if err := validateOverlay("universal", uni); err != nil {
		return err
	}

	groups := map[string]map[string]models.RequirementOverlay{
		"trade":        c.trades,
		"project_type": c.projectTypes,
		"tier":         c.tiers,
	}
	for group, overlays := range groups {
		for key, o := range overlays {
			layer := group + ":" + key
			if o.PolicyBasis != nil && !o.PolicyBasis.IsValid() {
				return commonerrors.NewUnknownPolicyBasisError(layer, string(*o.PolicyBasis))
			}
			if err := validateOverlay(layer, o); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOverlay(layer string, o models.RequirementOverlay) error {
	for ct, limit := range o.MinimumLimits {
		if !ct.IsValid() {
			return commonerrors.NewUnknownCoverageTypeError(layer, string(ct))
		}
		if err := validation.Validate(limit, validation.Min(int64(0))); err != nil {
			return commonerrors.NewNegativeLimitError(layer, string(ct), limit)
		}
	}
	for ct, rec := range o.RecommendedLimits {
		if !ct.IsValid() {
			return commonerrors.NewUnknownCoverageTypeError(layer, string(ct))
		}
		if err := validation.Validate(rec, validation.Min(int64(0))); err != nil {
			return commonerrors.NewCatalogInvalidError("negative recommended limit for " + string(ct))
		}
		if min, ok := o.MinimumLimits[ct]; ok && rec < min {
			return commonerrors.NewRecommendedBelowMinimumError(layer, string(ct), rec, min)
		}
	}
	return nil
}
