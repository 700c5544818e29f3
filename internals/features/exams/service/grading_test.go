package service

import "testing"

func TestGradeFor(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{80, "A"},
		{79.5, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49, "E"},
		{40, "E"},
		{39.99, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		if got := GradeFor(tc.pct); got != tc.want {
			t.Errorf("GradeFor(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}

func TestEffectivePassingMarks(t *testing.T) {
	// Explicit threshold wins.
	if got := EffectivePassingMarks(SubjectConfig{MaxMarks: 100, PassingMarks: 33}); got != 33 {
		t.Errorf("explicit = %v, want 33", got)
	}
	// Unset threshold falls back to 40% of max.
	if got := EffectivePassingMarks(SubjectConfig{MaxMarks: 50}); got != 20 {
		t.Errorf("default = %v, want 20", got)
	}
}

func TestForExamType(t *testing.T) {
	base := SubjectConfig{SubjectID: "s1", Name: "Algebra", MaxMarks: 100, PassingMarks: 33}
	overrides := map[string]MarksOverride{
		"supplementary": {MaxMarks: 50, PassingMarks: 20},
		"partial":       {MaxMarks: 40},
	}

	// Matching exam type swaps in the override pair.
	got := base.ForExamType(overrides, "supplementary")
	if got.MaxMarks != 50 || got.PassingMarks != 20 {
		t.Errorf("supplementary = %v/%v, want 50/20", got.MaxMarks, got.PassingMarks)
	}

	// Regular sessions keep the base pair when no override names them.
	got = base.ForExamType(overrides, "regular")
	if got.MaxMarks != 100 || got.PassingMarks != 33 {
		t.Errorf("regular = %v/%v, want 100/33", got.MaxMarks, got.PassingMarks)
	}

	// An override with only max set keeps the base passing marks.
	got = base.ForExamType(overrides, "partial")
	if got.MaxMarks != 40 || got.PassingMarks != 33 {
		t.Errorf("partial = %v/%v, want 40/33", got.MaxMarks, got.PassingMarks)
	}

	// Nil map is a no-op.
	got = base.ForExamType(nil, "supplementary")
	if got != base {
		t.Errorf("nil overrides changed the config: %+v", got)
	}

	// A halved supplementary paper grades against its own scale.
	r := GradeSubject(base.ForExamType(overrides, "supplementary"), 45)
	if r.Percentage != 90 || r.Grade != "A+" || !r.IsPassed {
		t.Errorf("45/50 supplementary = %v%% %q passed=%v", r.Percentage, r.Grade, r.IsPassed)
	}
}

func TestGradeSubject(t *testing.T) {
	cfg := SubjectConfig{SubjectID: "s1", Name: "Algebra", MaxMarks: 80}

	r := GradeSubject(cfg, 60)
	if r.Percentage != 75 {
		t.Errorf("percentage = %v, want 75", r.Percentage)
	}
	if r.Grade != "B" {
		t.Errorf("grade = %q, want B", r.Grade)
	}
	if !r.IsPassed {
		t.Error("60/80 with default threshold should pass")
	}
	if r.PassingMarks != 32 {
		t.Errorf("passing marks = %v, want 32", r.PassingMarks)
	}

	// Exactly on the threshold passes.
	if r := GradeSubject(cfg, 32); !r.IsPassed {
		t.Error("marks equal to passing marks should pass")
	}
	if r := GradeSubject(cfg, 31.9); r.IsPassed {
		t.Error("marks below passing marks should fail")
	}

	// Zero max marks must not divide by zero.
	if r := GradeSubject(SubjectConfig{MaxMarks: 0}, 5); r.Percentage != 0 {
		t.Errorf("zero-max percentage = %v, want 0", r.Percentage)
	}
}

func TestAggregateResults(t *testing.T) {
	subjects := []SubjectResult{
		GradeSubject(SubjectConfig{Name: "Algebra", MaxMarks: 100}, 95),
		GradeSubject(SubjectConfig{Name: "Optics", MaxMarks: 50}, 25),
	}
	agg := AggregateResults(subjects)

	if agg.TotalObtained != 120 || agg.TotalMax != 150 {
		t.Fatalf("totals = %v/%v, want 120/150", agg.TotalObtained, agg.TotalMax)
	}
	// 120/150 = 80%, not the average of 95% and 50%.
	if agg.Percentage != 80 {
		t.Errorf("percentage = %v, want 80", agg.Percentage)
	}
	if agg.Grade != "A" {
		t.Errorf("grade = %q, want A", agg.Grade)
	}
	if !agg.IsPassed {
		t.Error("both subjects passed, aggregate should pass")
	}
}

func TestAggregateFailsWhenAnySubjectFails(t *testing.T) {
	subjects := []SubjectResult{
		GradeSubject(SubjectConfig{Name: "Algebra", MaxMarks: 100}, 98),
		GradeSubject(SubjectConfig{Name: "Optics", MaxMarks: 100}, 10),
	}
	agg := AggregateResults(subjects)
	if agg.IsPassed {
		t.Error("a failed subject must fail the aggregate")
	}
	// The aggregate percentage can still be above the pass line.
	if agg.Percentage != 54 {
		t.Errorf("percentage = %v, want 54", agg.Percentage)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := AggregateResults(nil)
	if agg.IsPassed {
		t.Error("no subjects should not be a pass")
	}
	if agg.Percentage != 0 || agg.Grade != "F" {
		t.Errorf("empty aggregate = %v %q", agg.Percentage, agg.Grade)
	}
}
