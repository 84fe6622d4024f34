package auth

import (
	"context"
	"fmt"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/repository"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
	"github.com/careconnect/careconnect-api/pkg/security"
)

// AuthService registers patients and verifies their credentials.
type AuthService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (int64, error)
	Login(ctx context.Context, email, password string) (int64, error)
}

type Service struct {
	repo   repository.PatientRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.PatientRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (int64, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if err == security.ErrTooShort {
			return 0, apperrors.BadRequest("password too short", err)
		}
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &model.Patient{
		Name:         req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		DateOfBirth:  req.DOB,
	}

	id, err := s.repo.Create(ctx, patient)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	return id, nil
}

// Login succeeds only when exactly one patient row matches the email
// and the password verifies against its hash. The store does not
// enforce email uniqueness, so an ambiguous identity never
// authenticates.
func (s *Service) Login(ctx context.Context, email, password string) (int64, error) {
	patients, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to look up patient: %w", err)
	}

	if len(patients) != 1 {
		return 0, apperrors.Unauthorized("Invalid credentials", nil)
	}

	patient := patients[0]
	if err := s.hasher.Compare(patient.PasswordHash, password); err != nil {
		return 0, apperrors.Unauthorized("Invalid credentials", err)
	}

	return patient.ID, nil
}
