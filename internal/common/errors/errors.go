// Package errors provides standardized error handling for catalog and
// pattern-library configuration faults. Deficient certificates are never
// errors: every per-call business outcome is returned as data, so only
// unrecoverable configuration inconsistencies, detected at construction,
// surface through this package.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeCatalogInvalid      ErrorCode = "CATALOG_INVALID"
	ErrCodeNegativeLimit       ErrorCode = "NEGATIVE_MINIMUM_LIMIT"
	ErrCodeRecommendedBelowMin ErrorCode = "RECOMMENDED_BELOW_MINIMUM"
	ErrCodeUnknownCoverageType ErrorCode = "UNKNOWN_COVERAGE_TYPE"
	ErrCodeUnknownPolicyBasis  ErrorCode = "UNKNOWN_POLICY_BASIS"
	ErrCodeUnknownEndorsement  ErrorCode = "UNKNOWN_ENDORSEMENT"

	ErrCodePhraseLibraryInvalid ErrorCode = "PHRASE_LIBRARY_INVALID"
	ErrCodeEmptyPhrase          ErrorCode = "EMPTY_EXCLUSION_PHRASE"
	ErrCodeInvalidClassCode     ErrorCode = "INVALID_CLASSIFICATION_CODE"
	ErrCodePatternCompileFailed ErrorCode = "PATTERN_COMPILE_FAILED"

	ErrCodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeInputInvalid     ErrorCode = "INPUT_INVALID"
)

// ConfigError represents a structured configuration error. It fails the
// process at startup rather than surfacing per validation call.
type ConfigError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("ConfigError[%s]: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("ConfigError[%s]: %s", e.Code, e.Message)
}

// NewCatalogInvalidError wraps a catalog consistency failure.
func NewCatalogInvalidError(details string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Requirement catalog failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewNegativeLimitError reports a negative minimum limit in a catalog layer.
func NewNegativeLimitError(layer, coverageType string, limit int64) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeNegativeLimit,
		Message:   "Minimum limit must be non-negative",
		Details:   fmt.Sprintf("layer: %s, coverageType: %s, limit: %d", layer, coverageType, limit),
		Timestamp: time.Now().UTC(),
	}
}

// NewRecommendedBelowMinimumError reports an advisory threshold below the
// hard minimum for the same coverage type in the same layer.
func NewRecommendedBelowMinimumError(layer, coverageType string, recommended, minimum int64) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeRecommendedBelowMin,
		Message:   "Recommended limit is below the minimum limit",
		Details:   fmt.Sprintf("layer: %s, coverageType: %s, recommended: %d, minimum: %d", layer, coverageType, recommended, minimum),
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownCoverageTypeError reports a coverage key outside the closed enum.
func NewUnknownCoverageTypeError(layer, coverageType string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeUnknownCoverageType,
		Message:   "Unknown coverage type in catalog",
		Details:   fmt.Sprintf("layer: %s, coverageType: %s", layer, coverageType),
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownPolicyBasisError reports an unrecognized policy basis value.
func NewUnknownPolicyBasisError(layer, basis string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeUnknownPolicyBasis,
		Message:   "Unknown policy basis in catalog",
		Details:   fmt.Sprintf("layer: %s, basis: %s", layer, basis),
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownEndorsementError reports an unrecognized endorsement key.
func NewUnknownEndorsementError(layer, endorsement string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeUnknownEndorsement,
		Message:   "Unknown endorsement in catalog",
		Details:   fmt.Sprintf("layer: %s, endorsement: %s", layer, endorsement),
		Timestamp: time.Now().UTC(),
	}
}

// NewPhraseLibraryInvalidError wraps a phrase-library consistency failure.
func NewPhraseLibraryInvalidError(details string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodePhraseLibraryInvalid,
		Message:   "Exclusion phrase library failed validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyPhraseError reports a blank exclusion phrase for a trade.
func NewEmptyPhraseError(trade string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeEmptyPhrase,
		Message:   "Exclusion phrase must not be empty",
		Details:   fmt.Sprintf("trade: %s", trade),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidClassCodeError reports a non-positive classification code.
func NewInvalidClassCodeError(trade string, code int) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeInvalidClassCode,
		Message:   "Classification code must be positive",
		Details:   fmt.Sprintf("trade: %s, code: %d", trade, code),
		Timestamp: time.Now().UTC(),
	}
}

// NewPatternCompileError reports a phrase set that failed to compile
// into its combined matcher.
func NewPatternCompileError(trade string, err error) *ConfigError {
	return &ConfigError{
		Code:      ErrCodePatternCompileFailed,
		Message:   "Exclusion matcher compilation failed",
		Details:   fmt.Sprintf("trade: %s, error: %s", trade, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigLoadError reports a failure reading or parsing configuration.
func NewConfigLoadError(source string, err error) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeConfigLoadFailed,
		Message:   "Configuration load failed",
		Details:   fmt.Sprintf("source: %s, error: %s", source, err.Error()),
		Timestamp: time.Now().UTC(),
	}
}

// NewInputInvalidError reports a COI document that failed schema
// validation before reaching the engine.
func NewInputInvalidError(details string) *ConfigError {
	return &ConfigError{
		Code:      ErrCodeInputInvalid,
		Message:   "COI document failed schema validation",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}
