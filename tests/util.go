package testutil

import (
	"testing"
	"time"

	"github.com/kalulu/darasa/core/exam"
)

// Date parses a "2006-01-02" calendar date.
func Date(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("date(%s) failed: %v", date, err)
	}
	return d
}

// CreateSitting stores an exam sitting fixture.
func CreateSitting(
	t *testing.T,
	repo exam.Repository,
	subjectID int,
	date, start, end string,
	cohortID int,
	roomID string,
	invigilatorIDs ...int,
) exam.Sitting {
	t.Helper()

	startTime, err := exam.ParseTimeOfDay(start)
	if err != nil {
		t.Fatalf("createSitting() failed: %v", err)
	}
	endTime, err := exam.ParseTimeOfDay(end)
	if err != nil {
		t.Fatalf("createSitting() failed: %v", err)
	}
	tstamp := time.Now().UTC()
	sit, err := repo.CreateSitting(exam.Sitting{
		SubjectID:      subjectID,
		Date:           exam.DateOf(Date(t, date)),
		StartTime:      startTime,
		EndTime:        endTime,
		CohortID:       cohortID,
		RoomID:         roomID,
		InvigilatorIDs: invigilatorIDs,
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	})
	if err != nil {
		t.Fatalf("createSitting() failed: %v", err)
	}
	return sit
}
