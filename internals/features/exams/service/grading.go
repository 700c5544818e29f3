package service

import "math"

// Default passing threshold when a subject does not pin one explicitly:
// 40% of the subject's max marks.
const DefaultPassingRatio = 0.4

// SubjectConfig is the marks authority for one subject, looked up at
// result-write time.
type SubjectConfig struct {
	SubjectID    string
	Name         string
	MaxMarks     float64
	PassingMarks float64 // 0 means use DefaultPassingRatio * MaxMarks
}

// MarksOverride is a per-exam-type replacement of a subject's base marks.
// Zero fields keep the base value, so an override can change only one of
// the two numbers.
type MarksOverride struct {
	MaxMarks     float64 `json:"max_marks"`
	PassingMarks float64 `json:"passing_marks"`
}

// ForExamType returns the config with the override for examType applied,
// or the config unchanged when no override exists.
func (cfg SubjectConfig) ForExamType(overrides map[string]MarksOverride, examType string) SubjectConfig {
	o, ok := overrides[examType]
	if !ok {
		return cfg
	}
	if o.MaxMarks > 0 {
		cfg.MaxMarks = o.MaxMarks
	}
	if o.PassingMarks > 0 {
		cfg.PassingMarks = o.PassingMarks
	}
	return cfg
}

// SubjectResult is the graded outcome for one subject.
type SubjectResult struct {
	SubjectID    string  `json:"subject_id"`
	SubjectName  string  `json:"subject_name"`
	Obtained     float64 `json:"obtained"`
	MaxMarks     float64 `json:"max_marks"`
	PassingMarks float64 `json:"passing_marks"`
	Percentage   float64 `json:"percentage"`
	Grade        string  `json:"grade"`
	IsPassed     bool    `json:"is_passed"`
}

// Aggregate is the overall outcome across all graded subjects.
type Aggregate struct {
	TotalObtained float64
	TotalMax      float64
	Percentage    float64
	Grade         string
	IsPassed      bool // every subject passed
}

// GradeFor maps a percentage onto the letter ladder.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	case percentage >= 50:
		return "D"
	case percentage >= 40:
		return "E"
	default:
		return "F"
	}
}

// EffectivePassingMarks resolves the pass threshold for a subject.
func EffectivePassingMarks(cfg SubjectConfig) float64 {
	if cfg.PassingMarks > 0 {
		return cfg.PassingMarks
	}
	return cfg.MaxMarks * DefaultPassingRatio
}

// GradeSubject grades one subject's obtained marks against its config.
func GradeSubject(cfg SubjectConfig, obtained float64) SubjectResult {
	passing := EffectivePassingMarks(cfg)
	pct := 0.0
	if cfg.MaxMarks > 0 {
		pct = round2(100 * obtained / cfg.MaxMarks)
	}
	return SubjectResult{
		SubjectID:    cfg.SubjectID,
		SubjectName:  cfg.Name,
		Obtained:     obtained,
		MaxMarks:     cfg.MaxMarks,
		PassingMarks: passing,
		Percentage:   pct,
		Grade:        GradeFor(pct),
		IsPassed:     obtained >= passing,
	}
}

// Aggregate combines graded subjects: overall percentage is total obtained
// over total max (not an average of subject percentages), and the student
// passes only when every subject passed.
func AggregateResults(subjects []SubjectResult) Aggregate {
	agg := Aggregate{IsPassed: len(subjects) > 0}
	for _, s := range subjects {
		agg.TotalObtained += s.Obtained
		agg.TotalMax += s.MaxMarks
		if !s.IsPassed {
			agg.IsPassed = false
		}
	}
	if agg.TotalMax > 0 {
		agg.Percentage = round2(100 * agg.TotalObtained / agg.TotalMax)
	}
	agg.Grade = GradeFor(agg.Percentage)
	return agg
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
