// pkg/phrasebook/schema.go
package phrasebook

// Book is the versioned exclusion-phrase and classification-code data
// set. It is plain data so new exclusion phrasings can be added without
// touching checker code.
type Book struct {
	Version     string       `json:"version"`
	LastUpdated string       `json:"lastUpdated"`
	Trades      []TradeEntry `json:"trades"`
}

// TradeEntry holds the text-matching resources for one trade.
type TradeEntry struct {
	Trade string `json:"trade"`

	// ExclusionPhrases are literal phrases whose presence in policy
	// notes disclaims the trade. Matching is case-insensitive and
	// whitespace-tolerant; these are phrases, not regular expressions.
	ExclusionPhrases []string `json:"exclusionPhrases"`

	// ClassificationCodes are the NCCI-style workers' compensation
	// codes that evidence coverage for this trade.
	ClassificationCodes []int `json:"classificationCodes"`
}
