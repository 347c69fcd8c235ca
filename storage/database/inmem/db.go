package inmemdb

import (
	"sync"

	"github.com/kalulu/darasa/core/exam"
	"github.com/kalulu/darasa/core/grading"
)

type (
	DB struct {
		sitting *sittingTable
		score   *scoreTable
	}

	sittingTable struct {
		t     map[int]*exam.Sitting
		pk    int
		mutex sync.RWMutex
	}

	scoreTable struct {
		scores  []scoreRow
		results []resultRow
		mutex   sync.RWMutex
	}

	// scoreRow is one student's raw weighted assessments for a subject/term.
	scoreRow struct {
		studentID   int
		subjectID   int
		termID      int
		assessments []grading.WeightedAssessment
	}

	// resultRow is one student's graded subject for a term.
	resultRow struct {
		studentID   int
		subjectID   int
		termID      int
		creditHours int
		gradePoint  float64
	}
)

func Open() (*DB, error) {
	db := &DB{
		sitting: &sittingTable{t: make(map[int]*exam.Sitting)},
		score:   &scoreTable{},
	}
	return db, nil
}
