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

type JobServiceInterface interface {
	GetJobs(ctx context.Context, filters map[string]string) ([]entities.Job, error)
	FindJob(ctx context.Context, id uint64) (*entities.Job, error)
	CreateJob(ctx context.Context, payload dto.CreateJobDTO) (*entities.Job, error)
	UpdateJob(ctx context.Context, id uint64, payload dto.UpdateJobDTO) (*entities.Job, error)
	DeleteJob(ctx context.Context, id uint64) error
}

type JobService struct {
	jobRepo repositories.JobRepositoryInterface
	logger  *zap.Logger
}

func NewJobService(jobRepo repositories.JobRepositoryInterface, logger *zap.Logger) JobServiceInterface {
	return &JobService{jobRepo: jobRepo, logger: logger}
}

func (s *JobService) GetJobs(ctx context.Context, filters map[string]string) ([]entities.Job, error) {
	return s.jobRepo.GetJobs(ctx, filters)
}

func (s *JobService) FindJob(ctx context.Context, id uint64) (*entities.Job, error) {
	return s.jobRepo.FindJob(ctx, id)
}

func (s *JobService) CreateJob(ctx context.Context, payload dto.CreateJobDTO) (*entities.Job, error) {
	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		return nil, err
	}

	job := &entities.Job{
		Date:        date,
		Quantity:    *payload.Quantity,
		Unit:        payload.Unit,
		UnitPrice:   *payload.UnitPrice,
		Description: null.StringFromPtr(payload.Description),
		Status:      null.StringFromPtr(payload.Status),
		ProjectName: null.StringFromPtr(payload.ProjectName),
		UserID:      null.Uint64FromPtr(payload.UserID),
	}
	job.TotalPrice = null.Float64From(job.Quantity * job.UnitPrice)

	return s.jobRepo.CreateJob(ctx, job)
}

// UpdateJob merges the payload into the stored record and always recomputes
// the derived total from the merged factors, so a single-factor update can
// never leave a stale total behind.
func (s *JobService) UpdateJob(ctx context.Context, id uint64, payload dto.UpdateJobDTO) (*entities.Job, error) {
	job, err := s.jobRepo.FindJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Date != nil {
		date, err := utils.ParseDate(*payload.Date)
		if err != nil {
			return nil, err
		}
		job.Date = date
	}
	if payload.Quantity != nil {
		job.Quantity = *payload.Quantity
	}
	if payload.Unit != nil {
		job.Unit = *payload.Unit
	}
	if payload.UnitPrice != nil {
		job.UnitPrice = *payload.UnitPrice
	}
	if payload.Description != nil {
		job.Description = null.StringFrom(*payload.Description)
	}
	if payload.Status != nil {
		job.Status = null.StringFrom(*payload.Status)
	}
	if payload.ProjectName != nil {
		job.ProjectName = null.StringFrom(*payload.ProjectName)
	}
	if payload.UserID != nil {
		job.UserID = null.Uint64From(*payload.UserID)
	}

	job.TotalPrice = null.Float64From(job.Quantity * job.UnitPrice)

	return s.jobRepo.UpdateJob(ctx, job)
}

func (s *JobService) DeleteJob(ctx context.Context, id uint64) error {
	return s.jobRepo.DeleteJob(ctx, id)
}
