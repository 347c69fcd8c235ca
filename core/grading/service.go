package grading

import (
	"github.com/pkg/errors"
)

type (
	// Repository fetches raw scores from storage. Reads only; the grading
	// engine persists nothing itself.
	Repository interface {
		// QueryScores returns every student's weighted assessments for a subject/term.
		QueryScores(subjectID, termID int) ([]StudentScore, error)
		// QuerySubjectResults returns a student's graded subjects for a term.
		QuerySubjectResults(studentID, termID int) ([]SubjectResult, error)
	}

	Service struct {
		scale *Scale
		repo  Repository
	}
)

func NewService(scale *Scale, repo Repository) *Service {
	return &Service{scale: scale, repo: repo}
}

// SubjectResultSheet combines every student's weighted assessments for the
// subject/term, classifies the results and ranks them. Rows come back in rank
// order. A subject nobody was assessed in yields an empty sheet.
func (svc *Service) SubjectResultSheet(subjectID, termID int) ([]StudentGrade, error) {
	scores, err := svc.repo.QueryScores(subjectID, termID)
	if err != nil {
		return nil, err
	}

	combined := make(map[int]CombinedGrade, len(scores))
	scored := make([]ScoredStudent, 0, len(scores))
	for _, score := range scores {
		cg, err := CombineWeighted(svc.scale, score.Assessments)
		if err != nil {
			return nil, errors.Wrapf(err, "combining scores of student %d", score.StudentID)
		}
		combined[score.StudentID] = cg
		scored = append(scored, ScoredStudent{ID: score.StudentID, Score: cg.FinalPercent})
	}

	sheet := make([]StudentGrade, 0, len(scored))
	for _, rs := range CalculateRanks(scored) {
		cg := combined[rs.ID]
		sheet = append(sheet, StudentGrade{
			StudentID:    rs.ID,
			FinalPercent: cg.FinalPercent,
			Label:        cg.Grade.Label,
			Point:        cg.Grade.Point,
			Rank:         rs.Rank,
			Percentile:   rs.Percentile,
		})
	}
	return sheet, nil
}

// StudentTermGPA computes a student's credit-hour-weighted GPA for a term.
// A term with no graded subjects reports 0.
func (svc *Service) StudentTermGPA(studentID, termID int) (float64, error) {
	subjects, err := svc.repo.QuerySubjectResults(studentID, termID)
	if err != nil {
		return 0, err
	}
	return TermGPA(subjects), nil
}
