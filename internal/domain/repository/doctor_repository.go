package repository

import "doctor-directory/internal/domain/entity"

// DoctorRepository holds the doctor list fetched at start-up.
// The list is only ever replaced wholesale.
type DoctorRepository interface {
	ReplaceAll(doctors []entity.Doctor)
	FindAll() []entity.Doctor
	Loaded() bool
	// MarkResolved records that the start-up fetch finished, successfully
	// or not. ReplaceAll implies it.
	MarkResolved()
	Resolved() bool
}
