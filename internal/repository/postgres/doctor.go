package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx/types"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/repository"
)

func (r *doctorRepository) List(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	query := `
		SELECT d.id, d.name, d.email, d.bio, d.image_url, d.exp,
		       d.total_patients, d.online_fee, d.visit_fee,
		       string_agg(DISTINCT s.name, ', ') AS specialties
		FROM doctors d
		JOIN doctor_specialties ds ON d.id = ds.doctor_id
		JOIN specialties s ON ds.specialty_id = s.id
	`
	args := []interface{}{}
	argCount := 1

	if filters.Search != "" {
		query += fmt.Sprintf(" WHERE (d.name ILIKE $%d OR s.name ILIKE $%d)", argCount, argCount)
		args = append(args, "%"+filters.Search+"%")
		argCount++
	}

	query += fmt.Sprintf(" GROUP BY d.id ORDER BY d.id LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, filters.Limit, filters.Offset())

	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// doctorDetailRow carries the aggregated JSON columns before they are
// unmarshalled into typed slices.
type doctorDetailRow struct {
	model.Doctor
	Clinics      types.JSONText `db:"clinics"`
	Reviews      types.JSONText `db:"reviews"`
	Availability types.JSONText `db:"availability"`
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.DoctorDetail, error) {
	query := `
		SELECT d.id, d.name, d.email, d.bio, d.image_url, d.exp,
		       d.total_patients, d.online_fee, d.visit_fee,
		       COALESCE(string_agg(DISTINCT s.name, ', '), '') AS specialties,
		       (
		           SELECT COALESCE(json_agg(c), '[]'::json)
		           FROM (
		               SELECT dc.clinic_name, dc.clinic_fee
		               FROM doctor_clinic dc
		               WHERE dc.doctor_id = d.id
		           ) c
		       ) AS clinics,
		       (
		           SELECT COALESCE(json_agg(rv), '[]'::json)
		           FROM (
		               SELECT r.rating, r.comment, p.name AS patient_name
		               FROM reviews r
		               JOIN patients p ON r.patient_id = p.id
		               WHERE r.doctor_id = d.id
		               ORDER BY r.id DESC
		               LIMIT 5
		           ) rv
		       ) AS reviews,
		       (
		           SELECT COALESCE(json_agg(av), '[]'::json)
		           FROM (
		               SELECT to_char(a.available_date, 'YYYY-MM-DD') AS available_date,
		                      a.start_time, a.end_time
		               FROM availability a
		               WHERE a.doctor_id = d.id AND a.available_date >= CURRENT_DATE
		               ORDER BY a.available_date ASC
		               LIMIT 5
		           ) av
		       ) AS availability
		FROM doctors d
		LEFT JOIN doctor_specialties ds ON d.id = ds.doctor_id
		LEFT JOIN specialties s ON ds.specialty_id = s.id
		WHERE d.id = $1
		GROUP BY d.id
	`

	var row doctorDetailRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}

	detail := &model.DoctorDetail{Doctor: row.Doctor}
	if err := json.Unmarshal(row.Clinics, &detail.Clinics); err != nil {
		return nil, fmt.Errorf("failed to decode clinics: %w", err)
	}
	if err := json.Unmarshal(row.Reviews, &detail.Reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	if err := json.Unmarshal(row.Availability, &detail.Availability); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return detail, nil
}
