package engine

import (
	"strings"
	"testing"

	"ceres-hq/ceres/pkg/label"
)

// claimLabel builds a 30g-serving label in the cereal RACC category
// (40g reference amount) with the given nutrient values.
func claimLabel(nutrients map[string]float64, claims ...string) *label.LabelData {
	return &label.LabelData{
		Format:             label.FormatStandardVertical,
		ServingSizeG:       f64(30),
		RACCCategoryID:     "cereal-ready-to-eat-medium",
		NutritionData:      nutrients,
		ClaimStatements:    claims,
		PackageSurfaceArea: f64(45),
	}
}

func evaluateOneClaim(t *testing.T, l *label.LabelData) ValidationResult {
	t.Helper()
	e := NewClaimEvaluator(testCatalog(t), nil)
	results := e.Check(l)
	if len(results) != 1 {
		t.Fatalf("got %d findings, want 1: %+v", len(results), results)
	}
	return results[0]
}

func TestClaimAbsoluteThresholds(t *testing.T) {
	tests := []struct {
		name   string
		claim  string
		key    string
		value  float64
		status Status
		ruleID string
	}{
		{
			// 3mg per serving scales to 4mg per 40g RACC, below the
			// strict 5mg cutoff.
			name:   "sodium free passes below threshold",
			claim:  "sodium free",
			key:    label.NutrientSodium,
			value:  3,
			status: StatusPass,
			ruleID: "nc-sodium-free",
		},
		{
			// 3.75mg per serving is exactly 5mg per RACC; the claim
			// threshold is exclusive.
			name:   "sodium free fails at exact threshold",
			claim:  "sodium free",
			key:    label.NutrientSodium,
			value:  3.75,
			status: StatusFail,
			ruleID: "nc-sodium-free",
		},
		{
			// 105mg per serving is 140mg per RACC; low sodium is
			// inclusive at the threshold.
			name:   "low sodium passes at inclusive threshold",
			claim:  "low sodium",
			key:    label.NutrientSodium,
			value:  105,
			status: StatusPass,
			ruleID: "nc-low-sodium",
		},
		{
			name:   "low sodium fails above threshold",
			claim:  "low sodium",
			key:    label.NutrientSodium,
			value:  120,
			status: StatusFail,
			ruleID: "nc-low-sodium",
		},
		{
			name:   "fat free passes",
			claim:  "fat free",
			key:    label.NutrientTotalFat,
			value:  0.3,
			status: StatusPass,
			ruleID: "nc-fat-free",
		},
		{
			name:   "zero fat synonym resolves to the same rule",
			claim:  "Zero  Fat",
			key:    label.NutrientTotalFat,
			value:  0.3,
			status: StatusPass,
			ruleID: "nc-fat-free",
		},
		{
			name:   "calorie free fails",
			claim:  "calorie free",
			key:    label.NutrientCalories,
			value:  10,
			status: StatusFail,
			ruleID: "nc-calorie-free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateOneClaim(t, claimLabel(map[string]float64{tt.key: tt.value}, tt.claim))
			if got.Status != tt.status {
				t.Errorf("Status = %v, want %v: %s", got.Status, tt.status, got.Message)
			}
			if got.RuleID != tt.ruleID {
				t.Errorf("RuleID = %q, want %q", got.RuleID, tt.ruleID)
			}
		})
	}
}

func TestClaimPerServingCheck(t *testing.T) {
	// 120mg per serving scales to 160mg per RACC: already above the
	// 140mg low-sodium threshold per reference amount.
	got := evaluateOneClaim(t, claimLabel(map[string]float64{label.NutrientSodium: 120}, "low sodium"))
	if got.Status != StatusFail {
		t.Errorf("Status = %v, want fail: %s", got.Status, got.Message)
	}
	if !strings.Contains(got.Message, "reference amount") {
		t.Errorf("Message = %q, want a per-reference-amount explanation", got.Message)
	}
}

func TestClaimReduction(t *testing.T) {
	l := claimLabel(map[string]float64{label.NutrientSodium: 150}, "reduced sodium")
	l.ReferenceNutritionData = map[string]float64{label.NutrientSodium: 200}

	got := evaluateOneClaim(t, l)
	if got.Status != StatusPass {
		t.Errorf("Status = %v, want pass for a 25%% reduction: %s", got.Status, got.Message)
	}

	// 20% reduction falls short.
	l.NutritionData[label.NutrientSodium] = 160
	got = evaluateOneClaim(t, l)
	if got.Status != StatusFail {
		t.Errorf("Status = %v, want fail for a 20%% reduction: %s", got.Status, got.Message)
	}

	// Without a reference food the claim is unverifiable, not a pass.
	l.ReferenceNutritionData = nil
	got = evaluateOneClaim(t, l)
	if got.Status != StatusWarning {
		t.Errorf("Status = %v, want warning without reference data: %s", got.Status, got.Message)
	}
}

func TestClaimLight(t *testing.T) {
	tests := []struct {
		name    string
		fat     float64
		cal     float64
		refFat  float64
		refCal  float64
		status  Status
		message string
	}{
		{
			name:   "half fat reduction qualifies",
			fat:    5,
			cal:    150,
			refFat: 10,
			refCal: 200,
			status: StatusPass,
		},
		{
			// Reference food gets 60% of calories from fat (10g x 9 /
			// 150), so only a fat reduction qualifies.
			name:    "fat-dominant reference requires fat reduction",
			fat:     8,
			cal:     90,
			refFat:  10,
			refCal:  150,
			status:  StatusFail,
			message: "50% fat reduction",
		},
		{
			// Reference food gets 22.5% of calories from fat; a third
			// fewer calories qualifies.
			name:   "calorie reduction qualifies for lean reference",
			fat:    4,
			cal:    130,
			refFat: 5,
			refCal: 200,
			status: StatusPass,
		},
		{
			name:   "insufficient on both axes fails",
			fat:    4.5,
			cal:    180,
			refFat: 5,
			refCal: 200,
			status: StatusFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := claimLabel(map[string]float64{
				label.NutrientTotalFat: tt.fat,
				label.NutrientCalories: tt.cal,
			}, "light")
			l.ReferenceNutritionData = map[string]float64{
				label.NutrientTotalFat: tt.refFat,
				label.NutrientCalories: tt.refCal,
			}

			got := evaluateOneClaim(t, l)
			if got.Status != tt.status {
				t.Errorf("Status = %v, want %v: %s", got.Status, tt.status, got.Message)
			}
			if tt.message != "" && !strings.Contains(got.Message, tt.message) {
				t.Errorf("Message = %q, want it to mention %q", got.Message, tt.message)
			}
		})
	}
}

func TestClaimDVRange(t *testing.T) {
	// Dietary fiber Daily Value is 28g.
	tests := []struct {
		name   string
		claim  string
		fiber  float64
		status Status
	}{
		{name: "good source at 10 percent", claim: "good source of fiber", fiber: 2.8, status: StatusPass},
		{name: "good source below 10 percent", claim: "good source of fiber", fiber: 2.0, status: StatusFail},
		{name: "good source above 19 percent", claim: "good source of fiber", fiber: 6.0, status: StatusFail},
		{name: "high fiber at 20 percent", claim: "high fiber", fiber: 5.6, status: StatusPass},
		{name: "high fiber below 20 percent", claim: "high fiber", fiber: 4.0, status: StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateOneClaim(t, claimLabel(map[string]float64{label.NutrientDietaryFiber: tt.fiber}, tt.claim))
			if got.Status != tt.status {
				t.Errorf("Status = %v, want %v: %s", got.Status, tt.status, got.Message)
			}
		})
	}
}

func TestClaimUnknownAndUnverifiable(t *testing.T) {
	t.Run("unknown term yields info warning", func(t *testing.T) {
		got := evaluateOneClaim(t, claimLabel(map[string]float64{}, "artisanal goodness"))
		if got.Status != StatusWarning {
			t.Errorf("Status = %v, want warning", got.Status)
		}
		if got.RuleID != "nc-unknown" {
			t.Errorf("RuleID = %q, want nc-unknown", got.RuleID)
		}
	})

	t.Run("missing nutrient yields warning", func(t *testing.T) {
		got := evaluateOneClaim(t, claimLabel(map[string]float64{}, "low sodium"))
		if got.Status != StatusWarning {
			t.Errorf("Status = %v, want warning", got.Status)
		}
		if got.RuleID != "nc-low-sodium" {
			t.Errorf("RuleID = %q, want nc-low-sodium", got.RuleID)
		}
	})
}

func TestClaimOrderPreserved(t *testing.T) {
	e := NewClaimEvaluator(testCatalog(t), nil)
	l := claimLabel(map[string]float64{
		label.NutrientSodium:   3,
		label.NutrientTotalFat: 0.2,
	}, "fat free", "sodium free")

	results := e.Check(l)
	if len(results) != 2 {
		t.Fatalf("got %d findings, want 2", len(results))
	}
	if results[0].RuleID != "nc-fat-free" || results[1].RuleID != "nc-sodium-free" {
		t.Errorf("findings out of label order: %q, %q", results[0].RuleID, results[1].RuleID)
	}
}
