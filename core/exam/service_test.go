package exam_test

import (
	"io/ioutil"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kalulu/darasa/core/exam"
	"github.com/kalulu/darasa/services/logger"
	"github.com/kalulu/darasa/storage/database/inmem"
	"github.com/kalulu/darasa/tests"
)

var sitRepo exam.Repository

func setup(t *testing.T) *exam.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	sitRepo = inmemdb.NewSittingRepository(db)

	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	return exam.NewService(logger, sitRepo)
}

func TestService_Schedule(t *testing.T) {
	svc := setup(t)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	sit, report, err := svc.Schedule(exam.NewSitting{
		SubjectID: 1, Date: date, StartTime: "09:00", EndTime: "11:00",
		CohortID: 3, RoomID: "R1", InvigilatorIDs: []int{7},
	})
	assert.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 1, sit.ID)
	assert.False(t, sit.CreatedAt.IsZero())

	stored, err := svc.SittingsOn(date)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestService_Schedule_conflict(t *testing.T) {
	svc := setup(t)
	testutil.CreateSitting(t, sitRepo, 1, "2026-09-14", "09:00", "11:00", 3, "r1", 7)

	_, report, err := svc.Schedule(exam.NewSitting{
		SubjectID: 2, Date: testutil.Date(t, "2026-09-14"), StartTime: "10:00", EndTime: "12:00",
		CohortID: 3, RoomID: "R2",
	})
	assert.NoError(t, err)
	assert.Len(t, report, 1)
	assert.Equal(t, exam.KindCohortOverlap, report[0].Kind)

	// the rejected sitting was not stored
	stored, err := svc.SittingsOn(testutil.Date(t, "2026-09-14"))
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestService_Schedule_invalidInput(t *testing.T) {
	svc := setup(t)

	_, report, err := svc.Schedule(exam.NewSitting{
		SubjectID: 1, Date: testutil.Date(t, "2026-09-14"), StartTime: "late", EndTime: "11:00", CohortID: 3,
	})
	assert.Error(t, err)
	assert.Empty(t, report)
}

func TestService_Schedule_backToBack(t *testing.T) {
	svc := setup(t)
	testutil.CreateSitting(t, sitRepo, 1, "2026-09-14", "09:00", "11:00", 3, "r1", 7)

	_, report, err := svc.Schedule(exam.NewSitting{
		SubjectID: 2, Date: testutil.Date(t, "2026-09-14"), StartTime: "11:00", EndTime: "13:00",
		CohortID: 3, RoomID: "R1", InvigilatorIDs: []int{7},
	})
	assert.NoError(t, err)
	assert.True(t, report.OK())
}

func TestService_Reschedule(t *testing.T) {
	svc := setup(t)
	sit := testutil.CreateSitting(t, sitRepo, 1, "2026-09-14", "09:00", "11:00", 3, "r1", 7)
	other := testutil.CreateSitting(t, sitRepo, 2, "2026-09-14", "14:00", "16:00", 4, "r2", 8)

	t.Run("overlapping only itself is allowed", func(t *testing.T) {
		updated, report, err := svc.Reschedule(sit.ID, exam.UpdateSitting{StartTime: "09:30", EndTime: "11:30"})
		assert.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, "09:30", updated.StartTime.String())
	})

	t.Run("moving onto a peer's room is rejected", func(t *testing.T) {
		_, report, err := svc.Reschedule(sit.ID, exam.UpdateSitting{StartTime: "14:00", EndTime: "16:00", RoomID: "r2"})
		assert.NoError(t, err)
		assert.Len(t, report, 1)
		assert.Equal(t, exam.KindRoomOverlap, report[0].Kind)
		assert.Equal(t, other.ID, report[0].SittingID)

		// unchanged in storage
		stored, err := svc.GetByID(sit.ID)
		assert.NoError(t, err)
		assert.Equal(t, "09:30", stored.StartTime.String())
	})

	t.Run("unknown sitting", func(t *testing.T) {
		_, _, err := svc.Reschedule(404, exam.UpdateSitting{})
		assert.Equal(t, exam.ErrNotFound, err)
	})
}

func TestService_Cancel(t *testing.T) {
	svc := setup(t)
	sit := testutil.CreateSitting(t, sitRepo, 1, "2026-09-14", "09:00", "11:00", 3, "r1", 7)

	assert.NoError(t, svc.Cancel(sit.ID))

	_, err := svc.GetByID(sit.ID)
	assert.Equal(t, exam.ErrNotFound, err)
}
