package grading

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/kalulu/darasa/core"
)

// weights across one combination must add up to 100, within this tolerance
const weightSumTolerance = 0.01

var errExamWeights = errors.New("invalid exam weight split")

// WeightedAssessment is one component score (e.g. an internal test) with the
// percentage weight it contributes to a final mark.
type WeightedAssessment struct {
	Percent float64 `json:"percent" validate:"min=0,max=100"`
	Weight  float64 `json:"weight" validate:"min=0,max=100"`
}

// WeightSumError reports assessment weights that do not add up to 100.
// Weights are a hard precondition; they are never silently normalized.
type WeightSumError struct {
	Sum float64
}

func (err *WeightSumError) Error() string {
	return fmt.Sprintf("assessment weights sum to %v, must sum to 100", err.Sum)
}

// CombinedGrade is a final mark combined from weighted assessments and
// classified on the grading scale.
type CombinedGrade struct {
	FinalPercent  float64   `json:"final_percent"`
	Grade         Grade     `json:"grade"`
	Contributions []float64 `json:"contributions"` // weighted contribution per assessment, input order
}

// CombineWeighted folds weighted assessment scores into a final percentage and
// classifies it on `scale`. The weights must sum to 100 (±0.01); otherwise a
// *WeightSumError is returned before any computation.
func CombineWeighted(scale *Scale, assessments []WeightedAssessment) (CombinedGrade, error) {
	var sum float64
	for _, a := range assessments {
		sum += a.Weight
	}
	if math.Abs(sum-100) > weightSumTolerance {
		return CombinedGrade{}, &WeightSumError{Sum: sum}
	}

	contribs := make([]float64, len(assessments))
	var final float64
	for i, a := range assessments {
		contribs[i] = a.Percent * a.Weight / 100
		final += contribs[i]
	}
	final = core.Round2(final)

	grade, err := scale.Classify(final)
	if err != nil {
		return CombinedGrade{}, err
	}
	return CombinedGrade{FinalPercent: final, Grade: grade, Contributions: contribs}, nil
}

// CombineInternalTerminal combines the two-exam internal + terminal split of a
// subject's final mark. On top of the weight-sum precondition it enforces the
// configured bounds on each share (e.g. internal within [25, 50] and terminal
// within [50, 75]); any violated bound fails validation before computation.
func CombineInternalTerminal(scale *Scale, bounds core.ExamWeightBounds, internal, terminal WeightedAssessment) (CombinedGrade, error) {
	var flds []core.FieldError
	if internal.Weight < bounds.InternalMin || internal.Weight > bounds.InternalMax {
		flds = append(flds, core.FieldError{
			Field: "internal_weight",
			Error: fmt.Sprintf("must be within [%v, %v]", bounds.InternalMin, bounds.InternalMax),
		})
	}
	if terminal.Weight < bounds.TerminalMin || terminal.Weight > bounds.TerminalMax {
		flds = append(flds, core.FieldError{
			Field: "terminal_weight",
			Error: fmt.Sprintf("must be within [%v, %v]", bounds.TerminalMin, bounds.TerminalMax),
		})
	}
	if sum := internal.Weight + terminal.Weight; math.Abs(sum-100) > weightSumTolerance {
		flds = append(flds, core.FieldError{
			Field: "weights",
			Error: (&WeightSumError{Sum: sum}).Error(),
		})
	}
	if len(flds) > 0 {
		return CombinedGrade{}, core.NewValidationError(errExamWeights, flds...)
	}
	return CombineWeighted(scale, []WeightedAssessment{internal, terminal})
}

// SubjectResult is one subject's graded outcome entering a term GPA.
type SubjectResult struct {
	CreditHours int     `json:"credit_hours" validate:"min=0"`
	GradePoint  float64 `json:"grade_point" validate:"min=0"`
}

// TermGPA computes the credit-hour-weighted grade point average of a term,
// rounded to 2 decimal places.
// An empty subject list, or one whose credit hours total 0, yields 0 rather
// than an error; callers rely on that default for terms with no graded subjects.
func TermGPA(subjects []SubjectResult) float64 {
	var points float64
	var credits int
	for _, sub := range subjects {
		if sub.CreditHours <= 0 {
			continue
		}
		points += float64(sub.CreditHours) * sub.GradePoint
		credits += sub.CreditHours
	}
	if credits == 0 {
		return 0
	}
	return core.Round2(points / float64(credits))
}
