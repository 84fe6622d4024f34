package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/careconnect-api/internal/model"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/security"
)

type mockPatientRepo struct {
	patients []*model.Patient
	err      error
	created  *model.Patient
	nextID   int64
}

func (m *mockPatientRepo) Create(_ context.Context, patient *model.Patient) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.created = patient
	return m.nextID, nil
}

func (m *mockPatientRepo) GetByEmail(_ context.Context, _ string) ([]*model.Patient, error) {
	return m.patients, m.err
}

var hasher = security.NewBcryptHasher(4)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	return hash
}

func TestSignupHashesPassword(t *testing.T) {
	repo := &mockPatientRepo{nextID: 7}
	svc := NewService(repo, hasher)

	id, err := svc.Signup(context.Background(), &model.SignupRequest{
		Username: "Jordan Smith",
		Password: "hunter2hunter2",
		DOB:      "1990-01-01",
		Email:    "jordan@example.com",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, id)

	require.NotNil(t, repo.created)
	assert.NotEqual(t, "hunter2hunter2", repo.created.PasswordHash)
	assert.NoError(t, hasher.Compare(repo.created.PasswordHash, "hunter2hunter2"))
}

func TestSignupRejectsShortPassword(t *testing.T) {
	repo := &mockPatientRepo{}
	svc := NewService(repo, hasher)

	_, err := svc.Signup(context.Background(), &model.SignupRequest{
		Username: "Jordan Smith",
		Password: "short",
		DOB:      "1990-01-01",
		Email:    "jordan@example.com",
	})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	assert.Nil(t, repo.created)
}

func TestLoginSuccess(t *testing.T) {
	repo := &mockPatientRepo{patients: []*model.Patient{
		{ID: 42, Email: "jordan@example.com", PasswordHash: hashOf(t, "hunter2hunter2")},
	}}
	svc := NewService(repo, hasher)

	id, err := svc.Login(context.Background(), "jordan@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockPatientRepo{patients: []*model.Patient{
		{ID: 42, Email: "jordan@example.com", PasswordHash: hashOf(t, "hunter2hunter2")},
	}}
	svc := NewService(repo, hasher)

	_, err := svc.Login(context.Background(), "jordan@example.com", "wrong-password")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(&mockPatientRepo{}, hasher)

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever-pass")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}

func TestLoginAmbiguousIdentityNeverAuthenticates(t *testing.T) {
	// Two rows share an email; neither identity may log in.
	hash := hashOf(t, "hunter2hunter2")
	repo := &mockPatientRepo{patients: []*model.Patient{
		{ID: 1, Email: "dup@example.com", PasswordHash: hash},
		{ID: 2, Email: "dup@example.com", PasswordHash: hash},
	}}
	svc := NewService(repo, hasher)

	_, err := svc.Login(context.Background(), "dup@example.com", "hunter2hunter2")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}
