package exam

import "fmt"

// ViolationKind tags one class of scheduling conflict.
type ViolationKind string

const (
	KindInvalidInterval    ViolationKind = "invalid_interval"
	KindCohortOverlap      ViolationKind = "cohort_overlap"
	KindInvigilatorOverlap ViolationKind = "invigilator_overlap"
	KindRoomOverlap        ViolationKind = "room_overlap"
)

// Violation is one conflict found while checking a proposed sitting.
// Conflicts are expected outcomes carried as data, not errors; callers report
// the full list at once.
type Violation struct {
	Kind          ViolationKind `json:"kind"`
	Message       string        `json:"message"`
	SittingID     int           `json:"sitting_id,omitempty"`     // offending existing sitting; 0 for interval violations
	InvigilatorID int           `json:"invigilator_id,omitempty"` // set on invigilator_overlap only
}

// ConflictReport lists every violation of a proposed sitting, in check order.
// An empty report means the sitting may be scheduled.
type ConflictReport []Violation

func (r ConflictReport) OK() bool {
	return len(r) == 0
}

// CheckConflicts checks a proposed sitting against the existing sittings of
// the same day across the three contended dimensions: cohort, invigilators and
// room. All violations are collected; nothing short-circuits past the first
// conflict found.
//
// A malformed interval (start not strictly before end, or a time outside the
// day) yields a single invalid_interval violation and suppresses the overlap
// checks, which are meaningless against it.
//
// An optional excludeID skips one existing sitting, so an in-place reschedule
// is not flagged against itself.
//
// The check is pure: it performs no I/O and the caller supplies sameDay.
func CheckConflicts(proposed Sitting, sameDay []Sitting, excludeID ...int) ConflictReport {
	if !proposed.StartTime.Valid() || !proposed.EndTime.Valid() || proposed.StartTime >= proposed.EndTime {
		return ConflictReport{{
			Kind:    KindInvalidInterval,
			Message: fmt.Sprintf("start time %s must be before end time %s", proposed.StartTime, proposed.EndTime),
		}}
	}

	var exclID int
	if len(excludeID) > 0 {
		exclID = excludeID[0]
	}

	var report ConflictReport
	for _, existing := range sameDay {
		if exclID != 0 && existing.ID == exclID {
			continue
		}
		if !proposed.Overlaps(existing) {
			continue
		}

		if existing.CohortID == proposed.CohortID {
			report = append(report, Violation{
				Kind: KindCohortOverlap,
				Message: fmt.Sprintf("cohort %d already sits an exam %s-%s",
					existing.CohortID, existing.StartTime, existing.EndTime),
				SittingID: existing.ID,
			})
		}
		for _, staffID := range proposed.InvigilatorIDs {
			if existing.invigilates(staffID) {
				report = append(report, Violation{
					Kind: KindInvigilatorOverlap,
					Message: fmt.Sprintf("invigilator %d already supervises a sitting %s-%s",
						staffID, existing.StartTime, existing.EndTime),
					SittingID:     existing.ID,
					InvigilatorID: staffID,
				})
			}
		}
		if proposed.RoomID != "" && existing.RoomID == proposed.RoomID {
			report = append(report, Violation{
				Kind: KindRoomOverlap,
				Message: fmt.Sprintf("room %s is already in use %s-%s",
					existing.RoomID, existing.StartTime, existing.EndTime),
				SittingID: existing.ID,
			})
		}
	}
	return report
}
