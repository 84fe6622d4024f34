package repository

import (
	"context"
	"errors"

	"github.com/careconnect/careconnect-api/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type DoctorRepository interface {
	List(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error)
	Get(ctx context.Context, id int64) (*model.DoctorDetail, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) (int64, error)
	// GetByEmail returns every patient row matching the email. The
	// store does not enforce email uniqueness, so callers must treat
	// anything other than exactly one row as a failed lookup.
	GetByEmail(ctx context.Context, email string) ([]*model.Patient, error)
}

type AppointmentRepository interface {
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error)
	Create(ctx context.Context, req *model.BookAppointmentRequest) (int64, error)
	// Delete removes an appointment and reports how many rows matched.
	Delete(ctx context.Context, id int64) (int64, error)
}
