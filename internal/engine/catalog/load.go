// internal/engine/catalog/load.go
package catalog

import (
	"github.com/spf13/viper"

	commonerrors "coi-compliance-engine/internal/common/errors"
	"coi-compliance-engine/internal/models"
)

// layerSpec is the YAML shape of one catalog layer.
type layerSpec struct {
	Limits             map[string]int64 `mapstructure:"limits"`
	RecommendedLimits  map[string]int64 `mapstructure:"recommended_limits"`
	Endorsements       []string         `mapstructure:"endorsements"`
	PolicyBasis        string           `mapstructure:"policy_basis"`
	AdditionalInsureds []string         `mapstructure:"additional_insureds"`
	WCStatutory        *bool            `mapstructure:"wc_statutory"`
}

type fileSpec struct {
	Universal    *layerSpec           `mapstructure:"universal"`
	Trades       map[string]layerSpec `mapstructure:"trades"`
	ProjectTypes map[string]layerSpec `mapstructure:"project_types"`
	Tiers        map[string]layerSpec `mapstructure:"tiers"`
}

// Load reads a catalog YAML file and layers it over the compiled-in
// defaults: the universal section overrides field-by-field, and each
// named trade/tier/project-type entry replaces the default entry of the
// same key. The merged catalog is validated before use.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, commonerrors.NewConfigLoadError(path, err)
	}

	var spec fileSpec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, commonerrors.NewConfigLoadError(path, err)
	}

	c := defaultCatalog()

	if spec.Universal != nil {
		overlay, err := overlayFromSpec("universal", *spec.Universal)
		if err != nil {
			return nil, err
		}
		applyToUniversal(&c.universal, overlay)
	}
	if err := mergeLayerSpecs(c.trades, "trade", spec.Trades); err != nil {
		return nil, err
	}
	if err := mergeLayerSpecs(c.projectTypes, "project_type", spec.ProjectTypes); err != nil {
		return nil, err
	}
	if err := mergeLayerSpecs(c.tiers, "tier", spec.Tiers); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func mergeLayerSpecs(dst map[string]models.RequirementOverlay, group string, specs map[string]layerSpec) error {
	for key, spec := range specs {
		overlay, err := overlayFromSpec(group+":"+key, spec)
		if err != nil {
			return err
		}
		dst[models.NormalizeTrade(key)] = overlay
	}
	return nil
}

func overlayFromSpec(layer string, spec layerSpec) (models.RequirementOverlay, error) {
	var o models.RequirementOverlay

	if len(spec.Limits) > 0 {
		o.MinimumLimits = make(map[models.CoverageType]int64, len(spec.Limits))
		for key, v := range spec.Limits {
			ct := models.CoverageType(key)
			if !ct.IsValid() {
				return o, commonerrors.NewUnknownCoverageTypeError(layer, key)
			}
			o.MinimumLimits[ct] = v
		}
	}
	if len(spec.RecommendedLimits) > 0 {
		o.RecommendedLimits = make(map[models.CoverageType]int64, len(spec.RecommendedLimits))
		for key, v := range spec.RecommendedLimits {
			ct := models.CoverageType(key)
			if !ct.IsValid() {
				return o, commonerrors.NewUnknownCoverageTypeError(layer, key)
			}
			o.RecommendedLimits[ct] = v
		}
	}
	for _, e := range spec.Endorsements {
		endorsement := models.Endorsement(e)
		switch endorsement {
		case models.EndorsementAdditionalInsured, models.EndorsementWaiverOfSubrogation,
			models.EndorsementPrimaryNoncontributory, models.EndorsementNoticeOfCancellation,
			models.EndorsementPerProjectAggregate:
			o.Endorsements = append(o.Endorsements, endorsement)
		default:
			return o, commonerrors.NewUnknownEndorsementError(layer, e)
		}
	}
	if spec.PolicyBasis != "" {
		b := models.PolicyBasis(spec.PolicyBasis)
		if !b.IsValid() {
			return o, commonerrors.NewUnknownPolicyBasisError(layer, spec.PolicyBasis)
		}
		o.PolicyBasis = &b
	}
	o.AdditionalInsureds = append(o.AdditionalInsureds, spec.AdditionalInsureds...)
	o.WCStatutoryRequired = spec.WCStatutory
	return o, nil
}

// applyToUniversal overrides universal fields from a file overlay.
// Unlike resolver merging, endorsements and additional insureds replace
// here: the file's universal section is a full restatement, not a layer.
func applyToUniversal(u *models.RequirementSet, o models.RequirementOverlay) {
	for ct, v := range o.MinimumLimits {
		u.MinimumLimits[ct] = v
	}
	for ct, v := range o.RecommendedLimits {
		u.RecommendedLimits[ct] = v
	}
	if len(o.Endorsements) > 0 {
		u.Endorsements = append([]models.Endorsement(nil), o.Endorsements...)
	}
	if len(o.AdditionalInsureds) > 0 {
		u.AdditionalInsureds = append([]string(nil), o.AdditionalInsureds...)
	}
	if o.PolicyBasis != nil {
		u.PolicyBasis = *o.PolicyBasis
	}
	if o.WCStatutoryRequired != nil {
		u.WCStatutoryRequired = *o.WCStatutoryRequired
	}
}
