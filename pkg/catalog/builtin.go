package catalog

import (
	"ceres-hq/ceres/pkg/label"
)

// BuiltinVersion identifies the compiled-in regulation dataset.
const BuiltinVersion = "builtin-2026.1"

func f64(v float64) *float64 { return &v }

// simplifiedNutrients is the restricted declaration set the simplified
// format permits (21 CFR 101.9(f)).
var simplifiedNutrients = []string{
	label.NutrientCalories,
	label.NutrientTotalFat,
	label.NutrientTotalCarbs,
	label.NutrientProtein,
	label.NutrientSodium,
}

// fullNutrientList is the canonical mandatory nutrient order for the
// full vertical, tabular and linear panels (21 CFR 101.9(c)).
var fullNutrientList = []NutrientRequirement{
	{Key: label.NutrientCalories, DisplayName: "Calories", Unit: "kcal"},
	{Key: label.NutrientTotalFat, DisplayName: "Total Fat", Unit: "g", RequiresDV: true},
	{Key: label.NutrientSaturatedFat, DisplayName: "Saturated Fat", Unit: "g", RequiresDV: true, IndentLevel: 1},
	{Key: label.NutrientTransFat, DisplayName: "Trans Fat", Unit: "g", IndentLevel: 1},
	{Key: label.NutrientCholesterol, DisplayName: "Cholesterol", Unit: "mg", RequiresDV: true},
	{Key: label.NutrientSodium, DisplayName: "Sodium", Unit: "mg", RequiresDV: true},
	{Key: label.NutrientTotalCarbs, DisplayName: "Total Carbohydrate", Unit: "g", RequiresDV: true},
	{Key: label.NutrientDietaryFiber, DisplayName: "Dietary Fiber", Unit: "g", RequiresDV: true, IndentLevel: 1},
	{Key: label.NutrientTotalSugars, DisplayName: "Total Sugars", Unit: "g", IndentLevel: 1},
	{Key: label.NutrientAddedSugars, DisplayName: "Added Sugars", Unit: "g", RequiresDV: true, IndentLevel: 2},
	{Key: label.NutrientProtein, DisplayName: "Protein", Unit: "g"},
	{Key: label.NutrientVitaminD, DisplayName: "Vitamin D", Unit: "mcg", RequiresDV: true},
	{Key: label.NutrientCalcium, DisplayName: "Calcium", Unit: "mg", RequiresDV: true},
	{Key: label.NutrientIron, DisplayName: "Iron", Unit: "mg", RequiresDV: true},
	{Key: label.NutrientPotassium, DisplayName: "Potassium", Unit: "mg", RequiresDV: true},
}

var simplifiedNutrientList = []NutrientRequirement{
	{Key: label.NutrientCalories, DisplayName: "Calories", Unit: "kcal"},
	{Key: label.NutrientTotalFat, DisplayName: "Total Fat", Unit: "g", RequiresDV: true},
	{Key: label.NutrientSodium, DisplayName: "Sodium", Unit: "mg", RequiresDV: true},
	{Key: label.NutrientTotalCarbs, DisplayName: "Total Carbohydrate", Unit: "g", RequiresDV: true},
	{Key: label.NutrientProtein, DisplayName: "Protein", Unit: "g"},
}

// Daily Values for the declaration units used by the claim rules
// (21 CFR 101.9(c), adults and children 4 or more years of age).
const (
	dvDietaryFiberG = 28
	dvProteinG      = 50
	dvCalciumMg     = 1300
	dvIronMg        = 18
	dvPotassiumMg   = 4700
	dvVitaminDMcg   = 20
)

// Builtin returns the compiled-in rule catalog. Each call returns fresh
// rule values so callers can layer overrides before constructing a
// Catalog.
func Builtin() []*ComplianceRule {
	rules := []*ComplianceRule{
		// Format eligibility (21 CFR 101.9(d), (f), (j)).
		{
			ID:           "fmt-standard-vertical",
			Name:         "Standard vertical format eligibility",
			Description:  "The full vertical panel requires at least 40 square inches of available label space.",
			RuleType:     RuleTypeFormat,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(d)",
			Severity:     SeverityError,
			Active:       true,
			Format: &FormatRequirements{
				Format:         label.FormatStandardVertical,
				MinSurfaceArea: f64(40),
			},
		},
		{
			ID:           "fmt-tabular",
			Name:         "Tabular format eligibility",
			Description:  "The tabular panel is permitted on packages with 20 to 40 square inches of available label space.",
			RuleType:     RuleTypeFormat,
			RuleCategory: CategoryConditional,
			CFRReference: "21 CFR 101.9(d)(11)(iii)",
			Severity:     SeverityError,
			Active:       true,
			Format: &FormatRequirements{
				Format:         label.FormatTabular,
				MinSurfaceArea: f64(20),
				MaxSurfaceArea: f64(40),
			},
		},
		{
			ID:           "fmt-linear",
			Name:         "Linear format eligibility",
			Description:  "The linear panel is permitted at or below 40 square inches, only when neither a vertical nor a tabular panel can be accommodated.",
			RuleType:     RuleTypeFormat,
			RuleCategory: CategoryConditional,
			CFRReference: "21 CFR 101.9(j)(13)(ii)(A)(2)",
			Severity:     SeverityWarning,
			Active:       true,
			Format: &FormatRequirements{
				Format:            label.FormatLinear,
				MaxSurfaceArea:    f64(40),
				RequiresException: true,
			},
		},
		{
			ID:           "fmt-simplified",
			Name:         "Simplified format eligibility",
			Description:  "The simplified panel is permitted at or below 12 square inches and restricts which nutrients may be declared.",
			RuleType:     RuleTypeFormat,
			RuleCategory: CategoryConditional,
			CFRReference: "21 CFR 101.9(f)",
			Severity:     SeverityInfo,
			Active:       true,
			Format: &FormatRequirements{
				Format:           label.FormatSimplified,
				MaxSurfaceArea:   f64(12),
				AllowedNutrients: simplifiedNutrients,
			},
		},

		// Serving size against the RACC reference (21 CFR 101.9(b)).
		{
			ID:           "ss-racc-reference",
			Name:         "Serving size versus reference amount",
			Description:  "Declared serving size must fall between 50% and 200% of the category reference amount and satisfy the gram rounding increments.",
			RuleType:     RuleTypeServingSize,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(b)",
			Severity:     SeverityError,
			Active:       true,
			ServingSize: &ServingSizeRequirements{
				MinPercentRACC:        50,
				MaxPercentRACC:        200,
				AdvisoryMinPercent:    67,
				AdvisoryMaxPercent:    150,
				SingleServingMaxRatio: 2,
				DualColumnMaxRatio:    3,
			},
		},

		// Mandatory nutrient declarations per format (21 CFR 101.9(c)).
		{
			ID:           "mn-standard-vertical",
			Name:         "Mandatory nutrients, standard vertical",
			RuleType:     RuleTypeMandatoryNutrients,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(c)",
			Severity:     SeverityError,
			Active:       true,
			MandatoryNutrients: &NutrientListRequirements{
				Format:    label.FormatStandardVertical,
				Nutrients: fullNutrientList,
			},
		},
		{
			ID:           "mn-tabular",
			Name:         "Mandatory nutrients, tabular",
			RuleType:     RuleTypeMandatoryNutrients,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(c)",
			Severity:     SeverityError,
			Active:       true,
			MandatoryNutrients: &NutrientListRequirements{
				Format:    label.FormatTabular,
				Nutrients: fullNutrientList,
			},
		},
		{
			ID:           "mn-linear",
			Name:         "Mandatory nutrients, linear",
			RuleType:     RuleTypeMandatoryNutrients,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(c)",
			Severity:     SeverityError,
			Active:       true,
			MandatoryNutrients: &NutrientListRequirements{
				Format:    label.FormatLinear,
				Nutrients: fullNutrientList,
			},
		},
		{
			ID:           "mn-simplified",
			Name:         "Mandatory nutrients, simplified",
			RuleType:     RuleTypeMandatoryNutrients,
			RuleCategory: CategoryRequired,
			CFRReference: "21 CFR 101.9(f)",
			Severity:     SeverityError,
			Active:       true,
			MandatoryNutrients: &NutrientListRequirements{
				Format:    label.FormatSimplified,
				Nutrients: simplifiedNutrientList,
			},
		},
	}

	rules = append(rules, builtinClaimRules()...)
	return rules
}

// builtinClaimRules returns the nutrient content claim rules
// (21 CFR 101.54, 101.56, 101.60, 101.61, 101.62). Absolute thresholds
// are evaluated per RACC; free and low claims additionally check the
// labeled serving.
func builtinClaimRules() []*ComplianceRule {
	absolute := func(id, name, cfr, nutrient string, terms []string, threshold float64, cmp Comparison) *ComplianceRule {
		return &ComplianceRule{
			ID:           id,
			Name:         name,
			RuleType:     RuleTypeClaim,
			RuleCategory: CategoryConditional,
			CFRReference: cfr,
			Severity:     SeverityError,
			Active:       true,
			Claim: &ClaimRequirements{
				Terms:      terms,
				Nutrient:   nutrient,
				Kind:       ClaimAbsolute,
				Threshold:  threshold,
				Compare:    cmp,
				PerServing: true,
			},
		}
	}
	reduction := func(id, name, cfr, nutrient string, terms []string) *ComplianceRule {
		return &ComplianceRule{
			ID:           id,
			Name:         name,
			RuleType:     RuleTypeClaim,
			RuleCategory: CategoryConditional,
			CFRReference: cfr,
			Severity:     SeverityError,
			Active:       true,
			Claim: &ClaimRequirements{
				Terms:               terms,
				Nutrient:            nutrient,
				Kind:                ClaimReduction,
				MinReductionPercent: 25,
			},
		}
	}
	dvRange := func(id, name, nutrient string, terms []string, dv, minPct, maxPct float64) *ComplianceRule {
		cfr := "21 CFR 101.54(c)"
		if minPct >= 20 {
			cfr = "21 CFR 101.54(b)"
		}
		return &ComplianceRule{
			ID:           id,
			Name:         name,
			RuleType:     RuleTypeClaim,
			RuleCategory: CategoryConditional,
			CFRReference: cfr,
			Severity:     SeverityError,
			Active:       true,
			Claim: &ClaimRequirements{
				Terms:        terms,
				Nutrient:     nutrient,
				Kind:         ClaimDVRange,
				DailyValue:   dv,
				MinPercentDV: minPct,
				MaxPercentDV: maxPct,
			},
		}
	}

	return []*ComplianceRule{
		absolute("nc-calorie-free", "Calorie free", "21 CFR 101.60(b)(1)", label.NutrientCalories,
			[]string{"calorie free", "zero calories", "no calories"}, 5, CompareLess),
		absolute("nc-low-calorie", "Low calorie", "21 CFR 101.60(b)(2)", label.NutrientCalories,
			[]string{"low calorie", "low in calories"}, 40, CompareLessEqual),
		absolute("nc-fat-free", "Fat free", "21 CFR 101.62(b)(1)", label.NutrientTotalFat,
			[]string{"fat free", "zero fat", "no fat"}, 0.5, CompareLess),
		absolute("nc-low-fat", "Low fat", "21 CFR 101.62(b)(2)", label.NutrientTotalFat,
			[]string{"low fat", "low in fat"}, 3, CompareLessEqual),
		absolute("nc-sodium-free", "Sodium free", "21 CFR 101.61(b)(1)", label.NutrientSodium,
			[]string{"sodium free", "salt free", "no sodium"}, 5, CompareLess),
		absolute("nc-very-low-sodium", "Very low sodium", "21 CFR 101.61(b)(2)", label.NutrientSodium,
			[]string{"very low sodium", "very low in sodium"}, 35, CompareLessEqual),
		absolute("nc-low-sodium", "Low sodium", "21 CFR 101.61(b)(4)", label.NutrientSodium,
			[]string{"low sodium", "low in sodium"}, 140, CompareLessEqual),
		absolute("nc-sugar-free", "Sugar free", "21 CFR 101.60(c)(1)", label.NutrientTotalSugars,
			[]string{"sugar free", "sugarless", "no sugar", "zero sugar"}, 0.5, CompareLess),
		absolute("nc-cholesterol-free", "Cholesterol free", "21 CFR 101.62(d)(1)", label.NutrientCholesterol,
			[]string{"cholesterol free", "no cholesterol", "zero cholesterol"}, 2, CompareLess),
		absolute("nc-low-cholesterol", "Low cholesterol", "21 CFR 101.62(d)(2)", label.NutrientCholesterol,
			[]string{"low cholesterol", "low in cholesterol"}, 20, CompareLessEqual),

		reduction("nc-reduced-calorie", "Reduced calorie", "21 CFR 101.60(b)(4)", label.NutrientCalories,
			[]string{"reduced calorie", "reduced calories", "fewer calories", "less calories"}),
		reduction("nc-reduced-fat", "Reduced fat", "21 CFR 101.62(b)(4)", label.NutrientTotalFat,
			[]string{"reduced fat", "less fat"}),
		reduction("nc-reduced-sodium", "Reduced sodium", "21 CFR 101.61(b)(6)", label.NutrientSodium,
			[]string{"reduced sodium", "less sodium"}),
		reduction("nc-reduced-sugar", "Reduced sugar", "21 CFR 101.60(c)(5)", label.NutrientTotalSugars,
			[]string{"reduced sugar", "less sugar"}),

		{
			ID:           "nc-light",
			Name:         "Light",
			RuleType:     RuleTypeClaim,
			RuleCategory: CategoryConditional,
			CFRReference: "21 CFR 101.56",
			Severity:     SeverityError,
			Active:       true,
			Claim: &ClaimRequirements{
				Terms:               []string{"light", "lite"},
				Nutrient:            label.NutrientTotalFat,
				Kind:                ClaimLight,
				MinReductionPercent: 50,
			},
		},

		dvRange("nc-good-source-fiber", "Good source of fiber", label.NutrientDietaryFiber,
			[]string{"good source of fiber", "good source of dietary fiber", "contains fiber"},
			dvDietaryFiberG, 10, 19),
		dvRange("nc-high-fiber", "High fiber", label.NutrientDietaryFiber,
			[]string{"high fiber", "high in fiber", "excellent source of fiber", "rich in fiber"},
			dvDietaryFiberG, 20, 0),
		dvRange("nc-good-source-protein", "Good source of protein", label.NutrientProtein,
			[]string{"good source of protein", "contains protein"}, dvProteinG, 10, 19),
		dvRange("nc-high-protein", "High protein", label.NutrientProtein,
			[]string{"high protein", "high in protein", "excellent source of protein"}, dvProteinG, 20, 0),
		dvRange("nc-good-source-calcium", "Good source of calcium", label.NutrientCalcium,
			[]string{"good source of calcium", "contains calcium"}, dvCalciumMg, 10, 19),
		dvRange("nc-high-calcium", "High calcium", label.NutrientCalcium,
			[]string{"high calcium", "high in calcium", "excellent source of calcium"}, dvCalciumMg, 20, 0),
		dvRange("nc-good-source-iron", "Good source of iron", label.NutrientIron,
			[]string{"good source of iron", "contains iron"}, dvIronMg, 10, 19),
		dvRange("nc-high-iron", "High iron", label.NutrientIron,
			[]string{"high iron", "high in iron", "excellent source of iron"}, dvIronMg, 20, 0),
		dvRange("nc-good-source-potassium", "Good source of potassium", label.NutrientPotassium,
			[]string{"good source of potassium", "contains potassium"}, dvPotassiumMg, 10, 19),
		dvRange("nc-high-potassium", "High potassium", label.NutrientPotassium,
			[]string{"high potassium", "high in potassium", "excellent source of potassium"}, dvPotassiumMg, 20, 0),
		dvRange("nc-good-source-vitamin-d", "Good source of vitamin D", label.NutrientVitaminD,
			[]string{"good source of vitamin d", "contains vitamin d"}, dvVitaminDMcg, 10, 19),
		dvRange("nc-high-vitamin-d", "High vitamin D", label.NutrientVitaminD,
			[]string{"high vitamin d", "high in vitamin d", "excellent source of vitamin d"}, dvVitaminDMcg, 20, 0),
	}
}
