package appointment

import (
	"context"
	"fmt"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/repository"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

// AppointmentService manages patient appointments.
type AppointmentService interface {
	ListAppointments(ctx context.Context, patientID int64) ([]*model.Appointment, error)
	BookAppointment(ctx context.Context, req *model.BookAppointmentRequest) (int64, error)
	CancelAppointment(ctx context.Context, id int64) error
}

type Service struct {
	repo   repository.AppointmentRepository
	logger *logger.Logger
}

func NewService(repo repository.AppointmentRepository, l *logger.Logger) *Service {
	return &Service{repo: repo, logger: l}
}

func (s *Service) ListAppointments(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	appointments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}
	return appointments, nil
}

func (s *Service) BookAppointment(ctx context.Context, req *model.BookAppointmentRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to book appointment: %w", err)
	}
	return id, nil
}

// CancelAppointment deletes an appointment. Deleting an id that does
// not exist succeeds as a no-op; cancellation is idempotent.
func (s *Service) CancelAppointment(ctx context.Context, id int64) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if rows == 0 {
		s.logger.Warn("cancel of unknown appointment", "appointment_id", id)
	}
	return nil
}
