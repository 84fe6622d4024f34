package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/pkg/logger"
)

type mockAppointmentRepo struct {
	appointments []*model.Appointment
	rowsDeleted  int64
	nextID       int64
	err          error
}

func (m *mockAppointmentRepo) ListByPatient(_ context.Context, _ int64) ([]*model.Appointment, error) {
	return m.appointments, m.err
}

func (m *mockAppointmentRepo) Create(_ context.Context, _ *model.BookAppointmentRequest) (int64, error) {
	return m.nextID, m.err
}

func (m *mockAppointmentRepo) Delete(_ context.Context, _ int64) (int64, error) {
	return m.rowsDeleted, m.err
}

func newTestService(repo *mockAppointmentRepo) *Service {
	return NewService(repo, logger.NewLogger(nil))
}

func TestCancelAppointmentIsIdempotent(t *testing.T) {
	svc := newTestService(&mockAppointmentRepo{rowsDeleted: 0})

	// Cancelling an id that does not exist is a successful no-op.
	assert.NoError(t, svc.CancelAppointment(context.Background(), 12345))
}

func TestCancelAppointmentPropagatesStoreFailure(t *testing.T) {
	svc := newTestService(&mockAppointmentRepo{err: errors.New("connection lost")})

	assert.Error(t, svc.CancelAppointment(context.Background(), 1))
}

func TestListAppointmentsEmptyResultIsNotNil(t *testing.T) {
	svc := newTestService(&mockAppointmentRepo{appointments: nil})

	appointments, err := svc.ListAppointments(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
}

func TestBookAppointmentReturnsGeneratedID(t *testing.T) {
	svc := newTestService(&mockAppointmentRepo{nextID: 55})

	id, err := svc.BookAppointment(context.Background(), &model.BookAppointmentRequest{
		PatientID: 1,
		DoctorID:  2,
		Date:      "2026-09-10",
		Time:      "10:00-10:30",
		Reason:    "checkup",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 55, id)
}
