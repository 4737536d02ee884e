package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/repositories"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type AdvanceServiceInterface interface {
	GetAdvances(ctx context.Context, userID uint64) ([]entities.Advance, error)
	FindAdvance(ctx context.Context, id uint64) (*entities.Advance, error)
	CreateAdvance(ctx context.Context, payload dto.CreateAdvanceDTO) (*entities.Advance, error)
	UpdateAdvance(ctx context.Context, id uint64, payload dto.UpdateAdvanceDTO) (*entities.Advance, error)
	DeleteAdvance(ctx context.Context, id uint64) error
}

type AdvanceService struct {
	advanceRepo repositories.AdvanceRepositoryInterface
	logger      *zap.Logger
}

func NewAdvanceService(advanceRepo repositories.AdvanceRepositoryInterface, logger *zap.Logger) AdvanceServiceInterface {
	return &AdvanceService{advanceRepo: advanceRepo, logger: logger}
}

func (s *AdvanceService) GetAdvances(ctx context.Context, userID uint64) ([]entities.Advance, error) {
	return s.advanceRepo.GetAdvances(ctx, userID)
}

func (s *AdvanceService) FindAdvance(ctx context.Context, id uint64) (*entities.Advance, error) {
	return s.advanceRepo.FindAdvance(ctx, id)
}

func (s *AdvanceService) CreateAdvance(ctx context.Context, payload dto.CreateAdvanceDTO) (*entities.Advance, error) {
	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		return nil, err
	}

	advance := &entities.Advance{
		Date:   date,
		Amount: *payload.Amount,
		UserID: null.Uint64FromPtr(payload.UserID),
	}
	return s.advanceRepo.CreateAdvance(ctx, advance)
}

// UpdateAdvance overwrites the whole record; there are no partial updates for
// advances, every field arrives in the payload.
func (s *AdvanceService) UpdateAdvance(ctx context.Context, id uint64, payload dto.UpdateAdvanceDTO) (*entities.Advance, error) {
	advance, err := s.advanceRepo.FindAdvance(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		return nil, err
	}

	advance.Date = date
	advance.Amount = *payload.Amount
	advance.UserID = null.Uint64FromPtr(payload.UserID)

	return s.advanceRepo.UpdateAdvance(ctx, advance)
}

func (s *AdvanceService) DeleteAdvance(ctx context.Context, id uint64) error {
	return s.advanceRepo.DeleteAdvance(ctx, id)
}
