package repository

import (
	"slices"
	"sync/atomic"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
)

type doctorRepository struct {
	snapshot atomic.Pointer[[]entity.Doctor]
	resolved atomic.Bool
}

func NewDoctorRepository() repository.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) ReplaceAll(doctors []entity.Doctor) {
	list := slices.Clone(doctors)
	r.snapshot.Store(&list)
	r.resolved.Store(true)
}

// FindAll returns the current list. Callers must not modify it.
func (r *doctorRepository) FindAll() []entity.Doctor {
	list := r.snapshot.Load()
	if list == nil {
		return nil
	}
	return *list
}

func (r *doctorRepository) Loaded() bool {
	return r.snapshot.Load() != nil
}

func (r *doctorRepository) MarkResolved() {
	r.resolved.Store(true)
}

func (r *doctorRepository) Resolved() bool {
	return r.resolved.Load()
}
