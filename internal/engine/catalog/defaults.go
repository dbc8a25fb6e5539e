// internal/engine/catalog/defaults.go
package catalog

import "coi-compliance-engine/internal/models"

func limitsMap(pairs map[models.CoverageType]int64) map[models.CoverageType]int64 {
	out := make(map[models.CoverageType]int64, len(pairs))
	for ct, v := range pairs {
		out[ct] = v
	}
	return out
}

// defaultCatalog is the compiled-in requirement data. File overrides
// (see Load) replace entries key-by-key on top of this.
func defaultCatalog() *Catalog {
	return &Catalog{
		universal: models.RequirementSet{
			MinimumLimits: limitsMap(map[models.CoverageType]int64{
				models.CoverageGLPerOccurrence:      1_000_000,
				models.CoverageGLAggregate:          2_000_000,
				models.CoverageAutoLiability:        1_000_000,
				models.CoverageWCEmployersLiability: 500_000,
			}),
			RecommendedLimits: limitsMap(map[models.CoverageType]int64{
				models.CoverageGLPerOccurrence: 2_000_000,
				models.CoverageGLAggregate:     4_000_000,
			}),
			Endorsements: []models.Endorsement{
				models.EndorsementAdditionalInsured,
				models.EndorsementNoticeOfCancellation,
			},
			PolicyBasis:         models.PolicyBasisOccurrence,
			WCStatutoryRequired: true,
		},

		trades: map[string]models.RequirementOverlay{
			"roofing": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 2_000_000,
					models.CoverageUmbrella:        5_000_000,
				}),
				RecommendedLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 3_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementWaiverOfSubrogation,
					models.EndorsementPrimaryNoncontributory,
				},
			},
			"excavation": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 2_000_000,
					models.CoverageUmbrella:        2_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementWaiverOfSubrogation,
				},
			},
			"demolition": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 3_000_000,
					models.CoverageUmbrella:        10_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementWaiverOfSubrogation,
					models.EndorsementPrimaryNoncontributory,
				},
			},
			"scaffolding": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageUmbrella: 5_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementWaiverOfSubrogation,
				},
			},
			"steel erection": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 2_000_000,
					models.CoverageUmbrella:        5_000_000,
				}),
			},
			// Electrical deliberately matches the universal GL minimum;
			// the override exists for the umbrella requirement only.
			"electrical": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageUmbrella: 1_000_000,
				}),
			},
			"plumbing": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageUmbrella: 1_000_000,
				}),
			},
		},

		projectTypes: map[string]models.RequirementOverlay{
			"high_rise": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageUmbrella: 10_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementPrimaryNoncontributory,
				},
			},
			"new_construction": {
				Endorsements: []models.Endorsement{
					models.EndorsementPerProjectAggregate,
				},
			},
			"renovation": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 1_000_000,
				}),
			},
			"public_works": {
				AdditionalInsureds: []string{"Project Owner"},
				Endorsements: []models.Endorsement{
					models.EndorsementAdditionalInsured,
					models.EndorsementWaiverOfSubrogation,
				},
			},
		},

		tiers: map[string]models.RequirementOverlay{
			"tier_1": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 2_000_000,
					models.CoverageGLAggregate:     4_000_000,
					models.CoverageUmbrella:        5_000_000,
				}),
				Endorsements: []models.Endorsement{
					models.EndorsementPerProjectAggregate,
				},
			},
			"tier_2": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 1_000_000,
					models.CoverageUmbrella:        2_000_000,
				}),
			},
			// Tier 3 intentionally sits below the universal baseline:
			// the precedence order is authoritative even when a more
			// specific layer loosens a limit.
			"tier_3": {
				MinimumLimits: limitsMap(map[models.CoverageType]int64{
					models.CoverageGLPerOccurrence: 500_000,
				}),
			},
		},
	}
}
