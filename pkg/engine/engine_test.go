package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"ceres-hq/ceres/pkg/catalog"
	"ceres-hq/ceres/pkg/label"
)

// compliantLabel builds a fully compliant cereal label: eligible
// format, on-increment serving size, complete nutrient list and a
// supportable sodium-free claim.
func compliantLabel() *label.LabelData {
	return &label.LabelData{
		Format:               label.FormatStandardVertical,
		PackageSurfaceArea:   f64(45),
		RACCCategoryID:       "cereal-ready-to-eat-medium",
		ServingSizeG:         f64(30),
		ServingsPerContainer: f64(11),
		TotalProductWeightG:  f64(330),
		NutritionData: map[string]float64{
			label.NutrientCalories:     110,
			label.NutrientTotalFat:     1,
			label.NutrientSaturatedFat: 0,
			label.NutrientTransFat:     0,
			label.NutrientCholesterol:  0,
			label.NutrientSodium:       3,
			label.NutrientTotalCarbs:   24,
			label.NutrientDietaryFiber: 3,
			label.NutrientTotalSugars:  5,
			label.NutrientAddedSugars:  4,
			label.NutrientProtein:      3,
			label.NutrientVitaminD:     2,
			label.NutrientCalcium:      100,
			label.NutrientIron:         7,
			label.NutrientPotassium:    150,
		},
		ClaimStatements: []string{"sodium free"},
	}
}

func TestEvaluateCompliantLabel(t *testing.T) {
	v, err := NewValidator(testCatalog(t))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	report, err := v.Evaluate(context.Background(), compliantLabel())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if report.OverallStatus != StatusCompliant {
		for _, r := range report.ValidationResults {
			if r.Status != StatusPass {
				t.Logf("finding: [%s/%s] %s: %s", r.Status, r.Severity, r.RuleID, r.Message)
			}
		}
		t.Errorf("OverallStatus = %v, want compliant", report.OverallStatus)
	}
	if report.ErrorsCount != 0 || report.WarningsCount != 0 {
		t.Errorf("counts = %d errors, %d warnings, want 0/0", report.ErrorsCount, report.WarningsCount)
	}
	if report.Blocked() {
		t.Error("Blocked() = true, want false")
	}
	if report.ID == "" {
		t.Error("report ID is empty")
	}
	if report.CatalogVersion != catalog.BuiltinVersion {
		t.Errorf("CatalogVersion = %q, want %q", report.CatalogVersion, catalog.BuiltinVersion)
	}
	if len(report.ValidationResults) == 0 {
		t.Error("no findings recorded")
	}
}

func TestEvaluateOverallStatusDerivation(t *testing.T) {
	v, err := NewValidator(testCatalog(t))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	t.Run("error severity failure blocks", func(t *testing.T) {
		l := compliantLabel()
		l.ServingSizeG = f64(30.3) // off-increment declaration
		report, err := v.Evaluate(context.Background(), l)
		if err != nil {
			t.Fatalf("Evaluate() error = %v", err)
		}
		if report.OverallStatus != StatusErrors {
			t.Errorf("OverallStatus = %v, want errors", report.OverallStatus)
		}
		if !report.Blocked() {
			t.Error("Blocked() = false, want true")
		}
	})

	t.Run("warning severity failure does not block", func(t *testing.T) {
		l := compliantLabel()
		// 19g serving is 47.5% of the reference amount: advisory band
		// warning only. The claim is dropped because per-RACC scaling
		// would push it over its threshold.
		l.ServingSizeG = f64(19)
		l.TotalProductWeightG = f64(330)
		l.ClaimStatements = nil
		report, err := v.Evaluate(context.Background(), l)
		if err != nil {
			t.Fatalf("Evaluate() error = %v", err)
		}
		if report.OverallStatus != StatusWarnings {
			t.Errorf("OverallStatus = %v, want warnings", report.OverallStatus)
		}
		if report.Blocked() {
			t.Error("Blocked() = true, want false")
		}
	})
}

func TestEvaluateIdempotent(t *testing.T) {
	v, err := NewValidator(testCatalog(t))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	l := compliantLabel()
	first, err := v.Evaluate(context.Background(), l)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	second, err := v.Evaluate(context.Background(), l)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if first.OverallStatus != second.OverallStatus {
		t.Errorf("overall status changed between runs: %v then %v", first.OverallStatus, second.OverallStatus)
	}
	if len(first.ValidationResults) != len(second.ValidationResults) {
		t.Fatalf("finding count changed between runs: %d then %d",
			len(first.ValidationResults), len(second.ValidationResults))
	}
	for i := range first.ValidationResults {
		a, b := first.ValidationResults[i], second.ValidationResults[i]
		if a.RuleID != b.RuleID || a.Status != b.Status {
			t.Errorf("finding %d changed: %s/%s then %s/%s", i, a.RuleID, a.Status, b.RuleID, b.Status)
		}
	}
}

func TestEvaluateNilInputs(t *testing.T) {
	if _, err := NewValidator(nil); !errors.Is(err, ErrNilCatalog) {
		t.Errorf("NewValidator(nil) error = %v, want ErrNilCatalog", err)
	}

	v, err := NewValidator(testCatalog(t))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}
	if _, err := v.Evaluate(context.Background(), nil); !errors.Is(err, ErrNilLabel) {
		t.Errorf("Evaluate(nil) error = %v, want ErrNilLabel", err)
	}
}

type captureRecorder struct {
	evaluations int
	lastStatus  OverallStatus
	findings    int
}

func (r *captureRecorder) ObserveEvaluation(status OverallStatus, _ time.Duration) {
	r.evaluations++
	r.lastStatus = status
}

func (r *captureRecorder) ObserveFinding(_ catalog.RuleType, _ Status) {
	r.findings++
}

func TestEvaluateFeedsRecorder(t *testing.T) {
	rec := &captureRecorder{}
	v, err := NewValidator(testCatalog(t), WithRecorder(rec))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	report, err := v.Evaluate(context.Background(), compliantLabel())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if rec.evaluations != 1 {
		t.Errorf("evaluations = %d, want 1", rec.evaluations)
	}
	if rec.lastStatus != report.OverallStatus {
		t.Errorf("recorded status = %v, want %v", rec.lastStatus, report.OverallStatus)
	}
	if rec.findings != len(report.ValidationResults) {
		t.Errorf("recorded findings = %d, want %d", rec.findings, len(report.ValidationResults))
	}
}

func TestEvaluateWithClock(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	v, err := NewValidator(testCatalog(t), WithClock(func() time.Time { return at }))
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}

	report, err := v.Evaluate(context.Background(), compliantLabel())
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !report.ValidatedAt.Equal(at) {
		t.Errorf("ValidatedAt = %v, want %v", report.ValidatedAt, at)
	}
}
