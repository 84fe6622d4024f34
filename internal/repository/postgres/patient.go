package postgres

import (
	"context"
	"fmt"

	"github.com/careconnect/careconnect-api/internal/model"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (int64, error) {
	query := `
		INSERT INTO patients (name, email, password_hash, dob)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		patient.Name,
		patient.Email,
		patient.PasswordHash,
		patient.DateOfBirth,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	return id, nil
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) ([]*model.Patient, error) {
	query := `
		SELECT id, name, email, password_hash,
		       to_char(dob, 'YYYY-MM-DD') AS dob
		FROM patients
		WHERE email = $1
	`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, email); err != nil {
		return nil, fmt.Errorf("failed to get patient by email: %w", err)
	}
	return patients, nil
}
