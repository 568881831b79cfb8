package validator

import (
	"fmt"

	"github.com/arcanaland/mushikago/internal/card"
	"github.com/arcanaland/mushikago/internal/catalog"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults
}

var knownColors = map[string]bool{
	card.ColorRed:       true,
	card.ColorBlue:      true,
	card.ColorGreen:     true,
	card.ColorColorless: true,
}

func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

// Validate reads the catalog and reports what the normalizer would drop or
// rank last. Only an unreadable catalog is returned as an error.
func (v *Validator) Validate() (ValidationResults, error) {
	records, err := catalog.ReadRecords(v.CatalogPath)
	if err != nil {
		return v.Results, err
	}

	v.ValidateRecords(records)

	return v.Results, nil
}

// ValidateRecords checks already decoded records
func (v *Validator) ValidateRecords(records []card.LegacyCardMeta) {
	if len(records) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "catalog has no cards")
		return
	}

	seen := make(map[string]int)
	for i, r := range records {
		label := fmt.Sprintf("card #%d", i+1)
		if r.ID == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: id is required", label))
		} else {
			label = fmt.Sprintf("card %q", r.ID)
			if first, dup := seen[r.ID]; dup {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("%s: duplicate id (first seen at #%d, the last one wins)", label, first))
			} else {
				seen[r.ID] = i + 1
			}
		}

		if r.Cost < 0 {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: negative cost %d", label, r.Cost))
		}

		if r.Name == "" {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: name is empty", label))
		}

		v.validateTypes(label, r)
		v.validateColor(label, r.Color)
		v.validateRarelity(label, r.Rarelity)
	}
}

func (v *Validator) validateTypes(label string, r card.LegacyCardMeta) {
	if len(r.Types) > 0 {
		for _, raw := range r.Types {
			if _, ok := card.ParseType(raw); !ok {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("%s: unrecognized type %q will be dropped", label, raw))
			}
		}
	} else if r.Type != "" && r.Type != card.CompoundSpellBoost {
		if _, ok := card.ParseType(r.Type); !ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s: unrecognized legacy type %q", label, r.Type))
		}
	}

	if len(card.NormalizeTypes(r)) == 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: no type, sorts after every typed card", label))
	}
}

func (v *Validator) validateColor(label, color string) {
	if !knownColors[card.NormalizeColor(color)] {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: unrecognized color %q", label, color))
	}
}

func (v *Validator) validateRarelity(label, rarelity string) {
	if card.RarelityPriority(rarelity) == card.Unranked {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: unrecognized rarelity %q", label, rarelity))
	}
}
