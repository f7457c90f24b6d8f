package catalog

import (
	"errors"
	"strings"
	"testing"

	"ceres-hq/ceres/pkg/label"
)

func validServingSizeRule(id string) *ComplianceRule {
	return &ComplianceRule{
		ID:           id,
		Name:         "Serving size declaration",
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
	}
}

func validNutrientRule(id string) *ComplianceRule {
	return &ComplianceRule{
		ID:           id,
		Name:         "Mandatory nutrients",
		RuleType:     RuleTypeMandatoryNutrients,
		RuleCategory: CategoryRequired,
		CFRReference: "21 CFR 101.9(c)",
		Severity:     SeverityError,
		Active:       true,
		MandatoryNutrients: &NutrientListRequirements{
			Format: label.FormatSimplified,
			Nutrients: []NutrientRequirement{
				{Key: "calories", DisplayName: "Calories", Unit: "kcal"},
				{Key: "sodium_mg", DisplayName: "Sodium", Unit: "mg", RequiresDV: true},
			},
		},
	}
}

func validClaimRule(id string) *ComplianceRule {
	return &ComplianceRule{
		ID:           id,
		Name:         "Sodium free",
		RuleType:     RuleTypeClaim,
		RuleCategory: CategoryConditional,
		CFRReference: "21 CFR 101.61(b)(1)",
		Severity:     SeverityError,
		Active:       true,
		Claim: &ClaimRequirements{
			Terms:      []string{"sodium free", "no sodium"},
			Nutrient:   "sodium_mg",
			Kind:       ClaimAbsolute,
			Threshold:  5,
			Compare:    CompareLess,
			PerServing: true,
		},
	}
}

func TestNormalizeClaimTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sodium Free", "sodium free"},
		{"  low   FAT  ", "low fat"},
		{"sugar\tfree", "sugar free"},
		{"lite", "lite"},
	}

	for _, tt := range tests {
		if got := NormalizeClaimTerm(tt.in); got != tt.want {
			t.Errorf("NormalizeClaimTerm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ComplianceRule)
		rule      func(string) *ComplianceRule
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing id",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.ID = "" },
			wantField: "",
			wantMsg:   "missing id",
		},
		{
			name:      "missing name",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.Name = "" },
			wantField: "name",
			wantMsg:   "missing name",
		},
		{
			name:      "unknown rule type",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.RuleType = "packaging" },
			wantField: "rule_type",
			wantMsg:   "unknown rule type",
		},
		{
			name:      "unknown rule category",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.RuleCategory = "optional" },
			wantField: "rule_category",
			wantMsg:   "unknown rule category",
		},
		{
			name:      "unknown severity",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.Severity = "fatal" },
			wantField: "severity",
			wantMsg:   "unknown severity",
		},
		{
			name:      "missing CFR reference",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.CFRReference = "" },
			wantField: "cfr_reference",
			wantMsg:   "missing CFR reference",
		},
		{
			name:      "no requirements variant",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.Format = nil },
			wantField: "requirements",
			wantMsg:   "found 0",
		},
		{
			name: "two requirements variants",
			rule: validFormatRule,
			mutate: func(r *ComplianceRule) {
				r.Claim = &ClaimRequirements{Terms: []string{"x"}, Nutrient: "sodium_mg", Kind: ClaimAbsolute}
			},
			wantField: "requirements",
			wantMsg:   "found 2",
		},
		{
			name:      "format with unknown layout",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.Format.Format = "vertical-ish" },
			wantField: "format_requirements.format",
			wantMsg:   "unknown label format",
		},
		{
			name:      "format with negative minimum",
			rule:      validFormatRule,
			mutate:    func(r *ComplianceRule) { r.Format.MinSurfaceArea = f64(-1) },
			wantField: "format_requirements.min_surface_area",
			wantMsg:   "must not be negative",
		},
		{
			name: "format min exceeds max",
			rule: validFormatRule,
			mutate: func(r *ComplianceRule) {
				r.Format.MinSurfaceArea = f64(40)
				r.Format.MaxSurfaceArea = f64(20)
			},
			wantField: "format_requirements",
			wantMsg:   "min_surface_area exceeds max_surface_area",
		},
		{
			name:      "serving size inverted validity band",
			rule:      validServingSizeRule,
			mutate:    func(r *ComplianceRule) { r.ServingSize.MaxPercentRACC = 40 },
			wantField: "serving_size_requirements",
			wantMsg:   "percent-of-RACC band",
		},
		{
			name:      "serving size inverted advisory band",
			rule:      validServingSizeRule,
			mutate:    func(r *ComplianceRule) { r.ServingSize.AdvisoryMaxPercent = 10 },
			wantField: "serving_size_requirements",
			wantMsg:   "advisory band",
		},
		{
			name:      "serving size inverted ratio bounds",
			rule:      validServingSizeRule,
			mutate:    func(r *ComplianceRule) { r.ServingSize.DualColumnMaxRatio = 1 },
			wantField: "serving_size_requirements",
			wantMsg:   "ratio bounds",
		},
		{
			name:      "nutrient list with unknown format",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Format = "compact" },
			wantField: "nutrient_requirements.format",
			wantMsg:   "unknown label format",
		},
		{
			name:      "nutrient list empty",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Nutrients = nil },
			wantField: "nutrient_requirements.nutrients",
			wantMsg:   "empty nutrient list",
		},
		{
			name:      "nutrient missing key",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Nutrients[1].Key = "" },
			wantField: "nutrient_requirements.nutrients[1].key",
			wantMsg:   "missing key",
		},
		{
			name:      "nutrient missing display name",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Nutrients[0].DisplayName = "" },
			wantField: "nutrient_requirements.nutrients[0].display_name",
			wantMsg:   "missing display name",
		},
		{
			name:      "duplicate nutrient key",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Nutrients[1].Key = "calories" },
			wantField: "nutrient_requirements.nutrients",
			wantMsg:   "duplicate nutrient key",
		},
		{
			name:      "nutrient indent out of range",
			rule:      validNutrientRule,
			mutate:    func(r *ComplianceRule) { r.MandatoryNutrients.Nutrients[1].IndentLevel = 3 },
			wantField: "nutrient_requirements.nutrients[1].indent_level",
			wantMsg:   "indent level",
		},
		{
			name:      "claim with no terms",
			rule:      validClaimRule,
			mutate:    func(r *ComplianceRule) { r.Claim.Terms = nil },
			wantField: "claim_requirements.terms",
			wantMsg:   "empty term list",
		},
		{
			name:      "claim missing nutrient",
			rule:      validClaimRule,
			mutate:    func(r *ComplianceRule) { r.Claim.Nutrient = "" },
			wantField: "claim_requirements.nutrient",
			wantMsg:   "missing nutrient key",
		},
		{
			name:      "claim with unknown kind",
			rule:      validClaimRule,
			mutate:    func(r *ComplianceRule) { r.Claim.Kind = "relative" },
			wantField: "claim_requirements.kind",
			wantMsg:   "unknown claim kind",
		},
		{
			name:      "absolute claim negative threshold",
			rule:      validClaimRule,
			mutate:    func(r *ComplianceRule) { r.Claim.Threshold = -5 },
			wantField: "claim_requirements.threshold",
			wantMsg:   "must not be negative",
		},
		{
			name:      "absolute claim unknown comparison",
			rule:      validClaimRule,
			mutate:    func(r *ComplianceRule) { r.Claim.Compare = "gt" },
			wantField: "claim_requirements.compare",
			wantMsg:   "unknown comparison",
		},
		{
			name: "reduction claim percent out of range",
			rule: validClaimRule,
			mutate: func(r *ComplianceRule) {
				r.Claim.Kind = ClaimReduction
				r.Claim.MinReductionPercent = 120
			},
			wantField: "claim_requirements.min_reduction_percent",
			wantMsg:   "must be in (0, 100]",
		},
		{
			name: "dv range claim missing daily value",
			rule: validClaimRule,
			mutate: func(r *ComplianceRule) {
				r.Claim.Kind = ClaimDVRange
				r.Claim.MinPercentDV = 10
			},
			wantField: "claim_requirements.daily_value",
			wantMsg:   "must be positive",
		},
		{
			name: "dv range claim max below min",
			rule: validClaimRule,
			mutate: func(r *ComplianceRule) {
				r.Claim.Kind = ClaimDVRange
				r.Claim.DailyValue = 28
				r.Claim.MinPercentDV = 10
				r.Claim.MaxPercentDV = 5
			},
			wantField: "claim_requirements.max_percent_dv",
			wantMsg:   "must not be below min_percent_dv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.rule("rule-under-test")
			tt.mutate(r)

			err := validateRule(r)
			var ruleErr *RuleError
			if !errors.As(err, &ruleErr) {
				t.Fatalf("validateRule() error = %v, want RuleError", err)
			}
			if ruleErr.Field != tt.wantField {
				t.Errorf("RuleError.Field = %q, want %q", ruleErr.Field, tt.wantField)
			}
			if !strings.Contains(ruleErr.Message, tt.wantMsg) {
				t.Errorf("RuleError.Message = %q, want it to contain %q", ruleErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateRuleAccepts(t *testing.T) {
	rules := []*ComplianceRule{
		validFormatRule("fmt-a"),
		validServingSizeRule("ss-a"),
		validNutrientRule("mn-a"),
		validClaimRule("nc-a"),
	}
	for _, r := range rules {
		if err := validateRule(r); err != nil {
			t.Errorf("validateRule(%s) error = %v", r.ID, err)
		}
	}

	// Unrecognized-claim rules carry no citation.
	claim := validClaimRule("nc-unknown")
	claim.CFRReference = ""
	if err := validateRule(claim); err != nil {
		t.Errorf("validateRule(claim without CFR) error = %v", err)
	}
}

func TestRACCValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RACCCategory)
		wantMsg string
	}{
		{name: "missing id", mutate: func(c *RACCCategory) { c.ID = "" }, wantMsg: "missing id"},
		{name: "non-positive amount", mutate: func(c *RACCCategory) { c.RACCAmount = 0 }, wantMsg: "racc_amount must be positive"},
		{name: "unknown unit", mutate: func(c *RACCCategory) { c.RACCUnit = "oz" }, wantMsg: "racc_unit must be g or mL"},
		{name: "missing category", mutate: func(c *RACCCategory) { c.Category = "" }, wantMsg: "missing category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validRACC("cereal")
			tt.mutate(c)

			err := c.validate()
			var raccErr *RACCError
			if !errors.As(err, &raccErr) {
				t.Fatalf("validate() error = %v, want RACCError", err)
			}
			if !strings.Contains(raccErr.Message, tt.wantMsg) {
				t.Errorf("RACCError.Message = %q, want it to contain %q", raccErr.Message, tt.wantMsg)
			}
		})
	}

	if err := validRACC("cereal").validate(); err != nil {
		t.Errorf("validate() error = %v", err)
	}
}
