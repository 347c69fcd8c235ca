package inmemdb

import (
	"sort"
	"time"

	"github.com/kalulu/darasa/core/exam"
)

// sittingRepository keeps exam sittings in a mutex-guarded map. Each call
// locks the table on its own; the find+create scheduling sequence is only as
// atomic as the caller's usage (single-writer tests and CLIs), per the
// exam.Repository contract.
type sittingRepository struct {
	db *sittingTable
}

func NewSittingRepository(db *DB) exam.Repository {
	return &sittingRepository{db: db.sitting}
}

func (repo *sittingRepository) query() []exam.Sitting {
	sittings := make([]exam.Sitting, 0, len(repo.db.t))
	for _, sit := range repo.db.t {
		sittings = append(sittings, *sit)
	}
	sort.Slice(sittings, func(i, j int) bool { return sittings[i].ID < sittings[j].ID })
	return sittings
}

func (repo *sittingRepository) FindSittingsByDate(date time.Time) ([]exam.Sitting, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	sittings := make([]exam.Sitting, 0)
	for _, sit := range repo.query() {
		if sit.Date.Equal(date) {
			sittings = append(sittings, sit)
		}
	}
	return sittings, nil
}

func (repo *sittingRepository) GetSittingByID(id int) (exam.Sitting, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sit, ok := repo.db.t[id]; ok {
		return *sit, nil
	}
	return exam.Sitting{}, exam.ErrNotFound
}

func (repo *sittingRepository) CreateSitting(sit exam.Sitting) (exam.Sitting, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pk++
	sit.ID = repo.db.pk
	repo.db.t[sit.ID] = &sit
	return sit, nil
}

func (repo *sittingRepository) UpdateSitting(sit exam.Sitting) (exam.Sitting, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.t[sit.ID]; !ok {
		return exam.Sitting{}, exam.ErrNotFound
	}
	repo.db.t[sit.ID] = &sit
	return sit, nil
}

func (repo *sittingRepository) DeleteSittingsByID(ids ...int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.t, id)
	}
	return nil
}
