package label

// Format identifies a Nutrition Facts Panel layout.
type Format string

const (
	// FormatStandardVertical is the full vertical panel (21 CFR 101.9(d)).
	FormatStandardVertical Format = "standard_vertical"

	// FormatTabular is the horizontal tabular panel for mid-size packages.
	FormatTabular Format = "tabular"

	// FormatLinear is the single-line format for packages that cannot
	// accommodate a vertical or tabular panel.
	FormatLinear Format = "linear"

	// FormatSimplified is the reduced panel permitted on very small
	// packages, restricted to a short nutrient list.
	FormatSimplified Format = "simplified"
)

// KnownFormats lists every supported panel format.
var KnownFormats = []Format{
	FormatStandardVertical,
	FormatTabular,
	FormatLinear,
	FormatSimplified,
}

// Valid reports whether f is one of the supported panel formats.
func (f Format) Valid() bool {
	switch f {
	case FormatStandardVertical, FormatTabular, FormatLinear, FormatSimplified:
		return true
	}
	return false
}

// Canonical nutrient keys for LabelData.NutritionData. The surrounding
// application normalizes its column names to these keys before calling
// the engine.
const (
	NutrientCalories     = "calories"
	NutrientTotalFat     = "total_fat_g"
	NutrientSaturatedFat = "saturated_fat_g"
	NutrientTransFat     = "trans_fat_g"
	NutrientCholesterol  = "cholesterol_mg"
	NutrientSodium       = "sodium_mg"
	NutrientTotalCarbs   = "total_carbohydrate_g"
	NutrientDietaryFiber = "dietary_fiber_g"
	NutrientTotalSugars  = "total_sugars_g"
	NutrientAddedSugars  = "added_sugars_g"
	NutrientProtein      = "protein_g"
	NutrientVitaminD     = "vitamin_d_mcg"
	NutrientCalcium      = "calcium_mg"
	NutrientIron         = "iron_mg"
	NutrientPotassium    = "potassium_mg"
)

// LabelData is one packaged-food label as submitted for validation.
// All quantities in NutritionData are per declared serving. Optional
// fields use pointers so "not supplied" is distinguishable from zero.
type LabelData struct {
	// NutritionData maps canonical nutrient keys to per-serving values.
	NutritionData map[string]float64 `json:"nutrition_data" yaml:"nutrition_data"`

	// ServingSizeG is the declared serving size in grams.
	ServingSizeG *float64 `json:"serving_size_g,omitempty" yaml:"serving_size_g,omitempty"`

	// ServingSizeHousehold is the household-measure text
	// (e.g. "1 cup (30g)").
	ServingSizeHousehold string `json:"serving_size_household,omitempty" yaml:"serving_size_household,omitempty"`

	// ServingsPerContainer is the declared servings-per-container count.
	ServingsPerContainer *float64 `json:"servings_per_container,omitempty" yaml:"servings_per_container,omitempty"`

	// TotalProductWeightG is the net quantity of the container in grams,
	// used for single/dual-column classification.
	TotalProductWeightG *float64 `json:"total_product_weight_g,omitempty" yaml:"total_product_weight_g,omitempty"`

	// RACCCategoryID identifies the product's RACC category
	// (21 CFR 101.12). Serving-size reference checks are skipped with a
	// warning finding when it is absent.
	RACCCategoryID string `json:"racc_category_id,omitempty" yaml:"racc_category_id,omitempty"`

	// Format is the declared panel layout.
	Format Format `json:"format" yaml:"format"`

	// PackageSurfaceArea is the available label surface in square
	// inches. Nil means unspecified.
	PackageSurfaceArea *float64 `json:"package_surface_area,omitempty" yaml:"package_surface_area,omitempty"`

	// FormatException asserts that neither a vertical nor a tabular
	// panel can be accommodated on the package. The flag is supplied by
	// the caller, never computed from geometry; it gates the linear
	// format.
	FormatException bool `json:"format_exception,omitempty" yaml:"format_exception,omitempty"`

	// ClaimStatements lists nutrient content claims printed on the
	// package, in label order (e.g. "low sodium").
	ClaimStatements []string `json:"claim_statements,omitempty" yaml:"claim_statements,omitempty"`

	// DeclaredOrder lists the nutrient keys in the order they appear on
	// the rendered panel. Display-order checks are skipped when empty.
	DeclaredOrder []string `json:"declared_order,omitempty" yaml:"declared_order,omitempty"`

	// ReferenceNutritionData carries the reference food's per-serving
	// values for "reduced"/"light" claims. Such claims are reported as
	// unverifiable when the referenced nutrient is missing here.
	ReferenceNutritionData map[string]float64 `json:"reference_nutrition_data,omitempty" yaml:"reference_nutrition_data,omitempty"`
}

// Nutrient returns the per-serving value for the given canonical key.
func (l *LabelData) Nutrient(key string) (float64, bool) {
	if l.NutritionData == nil {
		return 0, false
	}
	v, ok := l.NutritionData[key]
	return v, ok
}

// ReferenceNutrient returns the reference food's value for the given key.
func (l *LabelData) ReferenceNutrient(key string) (float64, bool) {
	if l.ReferenceNutritionData == nil {
		return 0, false
	}
	v, ok := l.ReferenceNutritionData[key]
	return v, ok
}
