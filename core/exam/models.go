package exam

import (
	"fmt"
	"time"

	"github.com/kalulu/darasa/core"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// The day runs 00:00 through 23:59; a sitting ending exactly at midnight
// is not representable and must be scheduled to end at 23:59.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}

// Sitting is one time-boxed exam sitting of a cohort.
type Sitting struct {
	ID             int       `json:"id"`
	SubjectID      int       `json:"subject_id"`
	Date           time.Time `json:"date"` // calendar date; UTC midnight
	StartTime      TimeOfDay `json:"start_time"`
	EndTime        TimeOfDay `json:"end_time"`
	CohortID       int       `json:"cohort_id"`
	RoomID         string    `json:"room_id,omitempty"` // empty when no room is assigned yet
	InvigilatorIDs []int     `json:"invigilator_ids"`
	CreatedAt      time.Time `json:"created_at"` // UTC
	UpdatedAt      time.Time `json:"updated_at"` // UTC
}

// Overlaps reports whether both sittings share a date and their half-open time
// intervals intersect; back-to-back sittings (one ending as the other starts)
// do not overlap. Both intervals must be well-formed.
func (s Sitting) Overlaps(other Sitting) bool {
	if !s.Date.Equal(other.Date) {
		return false
	}
	return s.StartTime < other.EndTime && other.StartTime < s.EndTime
}

// invigilates reports whether the given staff member supervises this sitting.
func (s Sitting) invigilates(staffID int) bool {
	for _, id := range s.InvigilatorIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// DateOf truncates a timestamp to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewSitting contains information needed to schedule a new exam Sitting.
type NewSitting struct {
	SubjectID      int       `json:"subject_id" validate:"required"`
	Date           time.Time `json:"date" validate:"required"`
	StartTime      string    `json:"start_time" validate:"required,timeofday"`
	EndTime        string    `json:"end_time" validate:"required,timeofday"`
	CohortID       int       `json:"cohort_id" validate:"required"`
	RoomID         string    `json:"room_id"`
	InvigilatorIDs []int     `json:"invigilator_ids" validate:"omitempty,unique"`
}

func (ns *NewSitting) Validate() error {
	ns.StartTime = core.CleanString(ns.StartTime)
	ns.EndTime = core.CleanString(ns.EndTime)
	ns.RoomID = core.CleanString(ns.RoomID, true /* lower */)
	return core.Validate.Struct(ns)
}

// sitting builds the Sitting; Validate must have passed.
func (ns NewSitting) sitting() Sitting {
	start, _ := ParseTimeOfDay(ns.StartTime)
	end, _ := ParseTimeOfDay(ns.EndTime)
	return Sitting{
		SubjectID:      ns.SubjectID,
		Date:           DateOf(ns.Date),
		StartTime:      start,
		EndTime:        end,
		CohortID:       ns.CohortID,
		RoomID:         ns.RoomID,
		InvigilatorIDs: ns.InvigilatorIDs,
	}
}

// UpdateSitting defines what information may be provided to reschedule an
// existing Sitting. Zero fields keep the original values.
type UpdateSitting struct {
	Date           time.Time `json:"date"`
	StartTime      string    `json:"start_time" validate:"omitempty,timeofday"`
	EndTime        string    `json:"end_time" validate:"omitempty,timeofday"`
	RoomID         string    `json:"room_id"`
	InvigilatorIDs []int     `json:"invigilator_ids" validate:"omitempty,unique"`
}

func (us *UpdateSitting) Validate(orig Sitting) error {
	if us.Date.IsZero() {
		us.Date = orig.Date
	}

	start := core.CleanString(us.StartTime)
	if start == "" {
		start = orig.StartTime.String()
	}
	us.StartTime = start

	end := core.CleanString(us.EndTime)
	if end == "" {
		end = orig.EndTime.String()
	}
	us.EndTime = end

	room := core.CleanString(us.RoomID, true /* lower */)
	if room == "" {
		room = orig.RoomID
	}
	us.RoomID = room

	if us.InvigilatorIDs == nil {
		us.InvigilatorIDs = orig.InvigilatorIDs
	}

	return core.Validate.Struct(us)
}

// sitting applies the update on top of the original; Validate must have passed.
func (us UpdateSitting) sitting(orig Sitting) Sitting {
	start, _ := ParseTimeOfDay(us.StartTime)
	end, _ := ParseTimeOfDay(us.EndTime)
	sit := orig
	sit.Date = DateOf(us.Date)
	sit.StartTime = start
	sit.EndTime = end
	sit.RoomID = us.RoomID
	sit.InvigilatorIDs = us.InvigilatorIDs
	return sit
}
