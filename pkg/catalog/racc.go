package catalog

// RACCUnit is the measurement unit of a reference amount.
type RACCUnit string

const (
	// UnitGrams is a reference amount in grams.
	UnitGrams RACCUnit = "g"

	// UnitMilliliters is a reference amount in milliliters. The engine
	// treats milliliters 1:1 with grams when comparing against gram
	// serving sizes.
	UnitMilliliters RACCUnit = "mL"
)

// Valid reports whether u is a known unit.
func (u RACCUnit) Valid() bool {
	return u == UnitGrams || u == UnitMilliliters
}

// RACCCategory is one entry of the Reference Amounts Customarily
// Consumed table (21 CFR 101.12). Immutable reference data looked up by
// id.
type RACCCategory struct {
	// ID uniquely identifies the category.
	ID string `json:"id" yaml:"id"`

	// RACCAmount is the reference amount in RACCUnit units.
	RACCAmount float64 `json:"racc_amount" yaml:"racc_amount"`

	// RACCUnit is the unit of RACCAmount (g or mL).
	RACCUnit RACCUnit `json:"racc_unit" yaml:"racc_unit"`

	// Category and Subcategory are the FDA table headings.
	Category    string `json:"category" yaml:"category"`
	Subcategory string `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`

	// HouseholdMeasure is the consumer-facing measure
	// (e.g. "1 cup (30 g)").
	HouseholdMeasure string `json:"household_measure,omitempty" yaml:"household_measure,omitempty"`

	// LabelStatement is the serving size statement for the panel.
	LabelStatement string `json:"label_statement,omitempty" yaml:"label_statement,omitempty"`

	// ProductExamples lists products the category covers.
	ProductExamples []string `json:"product_examples,omitempty" yaml:"product_examples,omitempty"`

	// Notes carries table footnotes.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Grams returns the reference amount expressed in grams. Milliliter
// reference amounts are treated 1:1 with grams for serving-size
// comparisons.
func (c *RACCCategory) Grams() float64 {
	return c.RACCAmount
}

// validate checks a RACC entry at catalog build time.
func (c *RACCCategory) validate() error {
	if c.ID == "" {
		return &RACCError{CategoryID: c.ID, Message: "missing id"}
	}
	if c.RACCAmount <= 0 {
		return &RACCError{CategoryID: c.ID, Message: "racc_amount must be positive"}
	}
	if !c.RACCUnit.Valid() {
		return &RACCError{CategoryID: c.ID, Message: "racc_unit must be g or mL"}
	}
	if c.Category == "" {
		return &RACCError{CategoryID: c.ID, Message: "missing category"}
	}
	return nil
}
