package exam

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: 0},
		{name: "morning", in: "09:30", want: 9*60 + 30},
		{name: "last minute of the day", in: "23:59", want: 23*60 + 59},
		{name: "hour out of range", in: "24:00", wantErr: true},
		{name: "minute out of range", in: "09:60", wantErr: true},
		{name: "not a time", in: "lunch", wantErr: true},
		{name: "missing minutes", in: "09", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "16:45", "23:59"} {
		tod, err := ParseTimeOfDay(s)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) failed: %v", s, err)
		}
		if got := tod.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func mustTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) failed: %v", s, err)
	}
	return tod
}

func testSitting(t *testing.T, id int, date string, start, end string, cohortID int, roomID string, invigilatorIDs ...int) Sitting {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("time.Parse(%q) failed: %v", date, err)
	}
	return Sitting{
		ID:             id,
		SubjectID:      1,
		Date:           DateOf(d),
		StartTime:      mustTime(t, start),
		EndTime:        mustTime(t, end),
		CohortID:       cohortID,
		RoomID:         roomID,
		InvigilatorIDs: invigilatorIDs,
	}
}

func TestSittingOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Sitting
		want bool
	}{
		{
			name: "partial overlap",
			a:    testSitting(t, 1, "2026-09-14", "09:00", "11:00", 1, ""),
			b:    testSitting(t, 2, "2026-09-14", "10:00", "12:00", 2, ""),
			want: true,
		},
		{
			name: "contained interval",
			a:    testSitting(t, 1, "2026-09-14", "09:00", "13:00", 1, ""),
			b:    testSitting(t, 2, "2026-09-14", "10:00", "11:00", 2, ""),
			want: true,
		},
		{
			name: "back-to-back is not an overlap",
			a:    testSitting(t, 1, "2026-09-14", "09:00", "11:00", 1, ""),
			b:    testSitting(t, 2, "2026-09-14", "11:00", "13:00", 2, ""),
			want: false,
		},
		{
			name: "same times on different dates",
			a:    testSitting(t, 1, "2026-09-14", "09:00", "11:00", 1, ""),
			b:    testSitting(t, 2, "2026-09-15", "09:00", "11:00", 2, ""),
			want: false,
		},
		{
			name: "identical interval",
			a:    testSitting(t, 1, "2026-09-14", "09:00", "11:00", 1, ""),
			b:    testSitting(t, 2, "2026-09-14", "09:00", "11:00", 2, ""),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSittingValidate(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		ns      NewSitting
		wantErr bool
	}{
		{
			name: "valid",
			ns: NewSitting{
				SubjectID: 1, Date: date, StartTime: "09:00", EndTime: "11:00",
				CohortID: 3, RoomID: "R12", InvigilatorIDs: []int{7, 8},
			},
		},
		{
			name: "valid without room",
			ns:   NewSitting{SubjectID: 1, Date: date, StartTime: "09:00", EndTime: "11:00", CohortID: 3},
		},
		{
			name:    "missing subject",
			ns:      NewSitting{Date: date, StartTime: "09:00", EndTime: "11:00", CohortID: 3},
			wantErr: true,
		},
		{
			name:    "missing date",
			ns:      NewSitting{SubjectID: 1, StartTime: "09:00", EndTime: "11:00", CohortID: 3},
			wantErr: true,
		},
		{
			name:    "malformed start time",
			ns:      NewSitting{SubjectID: 1, Date: date, StartTime: "25:99", EndTime: "11:00", CohortID: 3},
			wantErr: true,
		},
		{
			name:    "missing end time",
			ns:      NewSitting{SubjectID: 1, Date: date, StartTime: "09:00", CohortID: 3},
			wantErr: true,
		},
		{
			name:    "missing cohort",
			ns:      NewSitting{SubjectID: 1, Date: date, StartTime: "09:00", EndTime: "11:00"},
			wantErr: true,
		},
		{
			name: "duplicate invigilators",
			ns: NewSitting{
				SubjectID: 1, Date: date, StartTime: "09:00", EndTime: "11:00",
				CohortID: 3, InvigilatorIDs: []int{7, 7},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.ns.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSittingBuildsCleanSitting(t *testing.T) {
	ns := NewSitting{
		SubjectID: 1,
		Date:      time.Date(2026, 9, 14, 15, 42, 7, 0, time.UTC), // time part must be dropped
		StartTime: " 09:00 ",
		EndTime:   "11:00",
		CohortID:  3,
		RoomID:    " R12 ",
		InvigilatorIDs: []int{
			7, 8,
		},
	}
	if err := ns.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	sit := ns.sitting()
	if !sit.Date.Equal(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want UTC midnight", sit.Date)
	}
	if sit.StartTime != mustTime(t, "09:00") || sit.EndTime != mustTime(t, "11:00") {
		t.Errorf("times = %v-%v, want 09:00-11:00", sit.StartTime, sit.EndTime)
	}
	if sit.RoomID != "r12" {
		t.Errorf("RoomID = %q, want cleaned and lowered %q", sit.RoomID, "r12")
	}
}

func TestUpdateSittingValidate(t *testing.T) {
	orig := testSitting(t, 5, "2026-09-14", "09:00", "11:00", 3, "r12", 7, 8)

	t.Run("zero fields keep the original", func(t *testing.T) {
		us := UpdateSitting{}
		if err := us.Validate(orig); err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		sit := us.sitting(orig)
		if !sit.Date.Equal(orig.Date) || sit.StartTime != orig.StartTime || sit.EndTime != orig.EndTime ||
			sit.RoomID != orig.RoomID || len(sit.InvigilatorIDs) != 2 {
			t.Errorf("sitting() = %+v, want original values kept", sit)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		us := UpdateSitting{StartTime: "14:00", EndTime: "16:00", RoomID: "R1"}
		if err := us.Validate(orig); err != nil {
			t.Fatalf("Validate() failed: %v", err)
		}
		sit := us.sitting(orig)
		if sit.StartTime != mustTime(t, "14:00") || sit.EndTime != mustTime(t, "16:00") {
			t.Errorf("times = %v-%v, want 14:00-16:00", sit.StartTime, sit.EndTime)
		}
		if sit.RoomID != "r1" {
			t.Errorf("RoomID = %q, want %q", sit.RoomID, "r1")
		}
		if sit.CohortID != orig.CohortID || sit.ID != orig.ID {
			t.Errorf("sitting() lost identity fields: %+v", sit)
		}
	})

	t.Run("malformed time", func(t *testing.T) {
		us := UpdateSitting{StartTime: "9am"}
		if err := us.Validate(orig); err == nil {
			t.Error("Validate() accepted a malformed time")
		}
	})
}
