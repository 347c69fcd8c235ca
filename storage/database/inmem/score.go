package inmemdb

import (
	"github.com/kalulu/darasa/core/grading"
)

// ScoreRepository keeps raw scores and graded subject results in memory.
// On top of the read-only grading.Repository it exposes Add helpers for
// fixtures and the admin CLI.
type ScoreRepository struct {
	db *scoreTable
}

var _ grading.Repository = (*ScoreRepository)(nil)

func NewScoreRepository(db *DB) *ScoreRepository {
	return &ScoreRepository{db: db.score}
}

func (repo *ScoreRepository) QueryScores(subjectID, termID int) ([]grading.StudentScore, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	scores := make([]grading.StudentScore, 0)
	for _, row := range repo.db.scores {
		if row.subjectID == subjectID && row.termID == termID {
			assessments := make([]grading.WeightedAssessment, len(row.assessments))
			copy(assessments, row.assessments)
			scores = append(scores, grading.StudentScore{StudentID: row.studentID, Assessments: assessments})
		}
	}
	return scores, nil
}

func (repo *ScoreRepository) QuerySubjectResults(studentID, termID int) ([]grading.SubjectResult, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	results := make([]grading.SubjectResult, 0)
	for _, row := range repo.db.results {
		if row.studentID == studentID && row.termID == termID {
			results = append(results, grading.SubjectResult{CreditHours: row.creditHours, GradePoint: row.gradePoint})
		}
	}
	return results, nil
}

func (repo *ScoreRepository) AddScore(studentID, subjectID, termID int, assessments ...grading.WeightedAssessment) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.scores = append(repo.db.scores, scoreRow{
		studentID:   studentID,
		subjectID:   subjectID,
		termID:      termID,
		assessments: assessments,
	})
}

func (repo *ScoreRepository) AddSubjectResult(studentID, subjectID, termID, creditHours int, gradePoint float64) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.results = append(repo.db.results, resultRow{
		studentID:   studentID,
		subjectID:   subjectID,
		termID:      termID,
		creditHours: creditHours,
		gradePoint:  gradePoint,
	})
}
