package freezer

import (
	"context"
	"strings"
	"time"

	"freezer-backend/domain"
	"freezer-backend/pkg/bootstrap"
)

type (
	FreezerService interface {
		GetFreezers(ctx context.Context, userID string) ([]domain.FreezerResponse, error)
		RenameFreezer(ctx context.Context, userID, freezerID string, req domain.RenameFreezerRequest) (domain.FreezerResponse, error)
	}

	freezerService struct {
		freezerRepository FreezerRepository
		bootstrapService  bootstrap.BootstrapService
	}
)

func NewFreezerService(freezerRepository FreezerRepository, bootstrapService bootstrap.BootstrapService) FreezerService {
	return &freezerService{
		freezerRepository: freezerRepository,
		bootstrapService:  bootstrapService,
	}
}

// GetFreezers bootstraps the caller if this is their first contact, so the
// default pair always exists by the time the list is read.
func (s *freezerService) GetFreezers(ctx context.Context, userID string) ([]domain.FreezerResponse, error) {
	if _, err := s.bootstrapService.EnsureUserInitialized(ctx, userID); err != nil {
		return nil, err
	}

	freezers, err := s.freezerRepository.GetFreezersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FreezerResponse, 0, len(freezers))
	for _, fz := range freezers {
		res = append(res, domain.FreezerResponse{ID: fz.FreezerID, Name: fz.Name})
	}
	return res, nil
}

func (s *freezerService) RenameFreezer(ctx context.Context, userID, freezerID string, req domain.RenameFreezerRequest) (domain.FreezerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FreezerResponse{}, domain.ErrFreezerNameRequired
	}

	if _, err := s.bootstrapService.EnsureUserInitialized(ctx, userID); err != nil {
		return domain.FreezerResponse{}, err
	}

	renamed, err := s.freezerRepository.RenameFreezer(ctx, userID, freezerID, name, time.Now())
	if err != nil {
		return domain.FreezerResponse{}, err
	}
	if !renamed {
		return domain.FreezerResponse{}, domain.ErrFreezerNotFound
	}

	return domain.FreezerResponse{ID: freezerID, Name: name}, nil
}
