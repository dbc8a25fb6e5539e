// pkg/phrasebook/phrasebook.go
package phrasebook

import (
	"encoding/json"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	commonerrors "coi-compliance-engine/internal/common/errors"
)

// Load reads a phrase book from a JSON file and validates it.
func Load(path string) (*Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, commonerrors.NewConfigLoadError(path, err)
	}
	var book Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, commonerrors.NewConfigLoadError(path, err)
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}
	return &book, nil
}

// Validate checks the book for inconsistencies that must fail at
// startup: missing version, unnamed trades, blank phrases, non-positive
// classification codes.
func (b *Book) Validate() error {
	if err := validation.ValidateStruct(b,
		validation.Field(&b.Version, validation.Required),
		validation.Field(&b.Trades, validation.Required),
	); err != nil {
		return commonerrors.NewPhraseLibraryInvalidError(err.Error())
	}
	for _, entry := range b.Trades {
		entry := entry
		if err := validation.ValidateStruct(&entry,
			validation.Field(&entry.Trade, validation.Required),
		); err != nil {
			return commonerrors.NewPhraseLibraryInvalidError(err.Error())
		}
		for _, phrase := range entry.ExclusionPhrases {
			if strings.TrimSpace(phrase) == "" {
				return commonerrors.NewEmptyPhraseError(entry.Trade)
			}
		}
		for _, code := range entry.ClassificationCodes {
			if code <= 0 {
				return commonerrors.NewInvalidClassCodeError(entry.Trade, code)
			}
		}
	}
	return nil
}

// Default returns the compiled-in phrase book used when no file is
// configured. Phrases follow the wording actually seen on certificates:
// "no <trade>", "excludes <trade> work", "<trade> excluded" and close
// variants.
func Default() *Book {
	return &Book{
		Version:     "2024.2",
		LastUpdated: "2024-11-18",
		Trades: []TradeEntry{
			{
				Trade:               "roofing",
				ExclusionPhrases:    tradePhrases("roofing", "roofing work", "roofing operations"),
				ClassificationCodes: []int{5551},
			},
			{
				Trade:               "excavation",
				ExclusionPhrases:    tradePhrases("excavation", "excavation work", "digging", "grading"),
				ClassificationCodes: []int{6217, 6229},
			},
			{
				Trade:               "electrical",
				ExclusionPhrases:    tradePhrases("electrical", "electrical work", "electrical wiring"),
				ClassificationCodes: []int{5190},
			},
			{
				Trade:               "plumbing",
				ExclusionPhrases:    tradePhrases("plumbing", "plumbing work"),
				ClassificationCodes: []int{5183},
			},
			{
				Trade:               "hvac",
				ExclusionPhrases:    tradePhrases("hvac", "hvac work", "heating and cooling"),
				ClassificationCodes: []int{5537},
			},
			{
				Trade:               "demolition",
				ExclusionPhrases:    tradePhrases("demolition", "demolition work", "wrecking"),
				ClassificationCodes: []int{5701},
			},
			{
				Trade:               "scaffolding",
				ExclusionPhrases:    tradePhrases("scaffolding", "scaffold work", "work above two stories"),
				ClassificationCodes: []int{5057},
			},
			{
				Trade:               "carpentry",
				ExclusionPhrases:    tradePhrases("carpentry", "carpentry work", "framing"),
				ClassificationCodes: []int{5403, 5645},
			},
			{
				Trade:               "masonry",
				ExclusionPhrases:    tradePhrases("masonry", "masonry work", "bricklaying"),
				ClassificationCodes: []int{5022},
			},
			{
				Trade:               "painting",
				ExclusionPhrases:    tradePhrases("painting", "painting work"),
				ClassificationCodes: []int{5474},
			},
			{
				Trade:               "steel erection",
				ExclusionPhrases:    tradePhrases("steel erection", "structural steel work", "iron work"),
				ClassificationCodes: []int{5040},
			},
			{
				Trade:               "concrete",
				ExclusionPhrases:    tradePhrases("concrete", "concrete work", "concrete construction"),
				ClassificationCodes: []int{5213},
			},
		},
	}
}

// tradePhrases expands the standard disclaimer templates over the given
// subject wordings.
func tradePhrases(subjects ...string) []string {
	out := make([]string, 0, len(subjects)*4)
	for _, s := range subjects {
		out = append(out,
			"no "+s,
			"excludes "+s,
			s+" excluded",
			"excluding "+s,
		)
	}
	return out
}
