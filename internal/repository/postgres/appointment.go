package postgres

import (
	"context"
	"fmt"

	"github.com/careconnect/careconnect-api/internal/model"
)

func (r *appointmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Appointment, error) {
	query := `
		SELECT a.id,
		       to_char(a.appointment_date, 'YYYY-MM-DD') AS appointment_date,
		       a.time_slot, a.reason,
		       d.name AS doctor_name
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date DESC, a.time_slot ASC
	`
	var appointments []*model.Appointment
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Create(ctx context.Context, req *model.BookAppointmentRequest) (int64, error) {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, time_slot, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.PatientID,
		req.DoctorID,
		req.Date,
		req.Time,
		req.Reason,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create appointment: %w", err)
	}
	return id, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
