package exam

import (
	"errors"
	"time"

	"github.com/kalulu/darasa/core"
)

var (
	// errors
	ErrNotFound = errors.New("exam sitting not found")
)

type (
	// Repository persists exam sittings.
	//
	// Scheduling is a check-then-act sequence: the service reads the day's
	// sittings, validates, then inserts. The service holds no lock spanning
	// those calls, so two concurrent Schedule calls could each see a clean
	// report and both insert. Closing that race is the backend's job: a SQL
	// implementation must run the sequence in one transaction backed by an
	// overlap/exclusion constraint. The bundled in-memory backend does NOT
	// close it (it locks per call) and is only safe under a single writer.
	Repository interface {
		FindSittingsByDate(date time.Time) ([]Sitting, error)
		GetSittingByID(id int) (Sitting, error)
		CreateSitting(sit Sitting) (Sitting, error)
		UpdateSitting(sit Sitting) (Sitting, error)
		DeleteSittingsByID(ids ...int) error
	}

	Service struct {
		log  core.Logger
		repo Repository
	}
)

func NewService(log core.Logger, repo Repository) *Service {
	return &Service{log: log, repo: repo}
}

// Schedule validates the proposed sitting, checks it against the day's
// existing sittings and creates it only when the conflict report is clean.
// A non-empty report is returned with no error; it is normal scheduling
// feedback, not a failure.
func (svc *Service) Schedule(ns NewSitting) (Sitting, ConflictReport, error) {
	if err := ns.Validate(); err != nil {
		return Sitting{}, nil, err
	}
	sit := ns.sitting()

	sameDay, err := svc.repo.FindSittingsByDate(sit.Date)
	if err != nil {
		return Sitting{}, nil, err
	}
	if report := CheckConflicts(sit, sameDay); !report.OK() {
		svc.log.Info("exam sitting rejected", map[string]interface{}{
			"cohort": sit.CohortID, "date": sit.Date.Format("2006-01-02"), "conflicts": len(report),
		})
		return Sitting{}, report, nil
	}

	now := time.Now().UTC()
	sit.CreatedAt = now
	sit.UpdatedAt = now
	created, err := svc.repo.CreateSitting(sit)
	return created, nil, err
}

// Reschedule moves an existing sitting, checking the updated slot against its
// same-day peers while excluding the sitting itself.
func (svc *Service) Reschedule(id int, us UpdateSitting) (Sitting, ConflictReport, error) {
	orig, err := svc.repo.GetSittingByID(id)
	if err != nil {
		return Sitting{}, nil, err
	}
	if err := us.Validate(orig); err != nil {
		return Sitting{}, nil, err
	}
	sit := us.sitting(orig)

	sameDay, err := svc.repo.FindSittingsByDate(sit.Date)
	if err != nil {
		return Sitting{}, nil, err
	}
	if report := CheckConflicts(sit, sameDay, id); !report.OK() {
		svc.log.Info("exam sitting reschedule rejected", map[string]interface{}{
			"sitting": id, "date": sit.Date.Format("2006-01-02"), "conflicts": len(report),
		})
		return Sitting{}, report, nil
	}

	sit.UpdatedAt = time.Now().UTC()
	updated, err := svc.repo.UpdateSitting(sit)
	return updated, nil, err
}

func (svc *Service) GetByID(id int) (Sitting, error) {
	return svc.repo.GetSittingByID(id)
}

func (svc *Service) SittingsOn(date time.Time) ([]Sitting, error) {
	return svc.repo.FindSittingsByDate(DateOf(date))
}

func (svc *Service) Cancel(ids ...int) error {
	return svc.repo.DeleteSittingsByID(ids...)
}
