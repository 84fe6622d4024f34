package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/careconnect/careconnect-api/internal/model"
	"github.com/careconnect/careconnect-api/internal/repository"
	apperrors "github.com/careconnect/careconnect-api/pkg/errors"
)

// DoctorService lists and inspects doctors.
type DoctorService interface {
	ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*model.DoctorDetail, error)
}

type Service struct {
	repo repository.DoctorRepository
}

func NewService(repo repository.DoctorRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context, filters *model.DoctorFilters) ([]*model.Doctor, error) {
	filters.Normalize()

	doctors, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id int64) (*model.DoctorDetail, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Doctor", err)
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}
