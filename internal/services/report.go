package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/repositories"
)

type ReportServiceInterface interface {
	GetJobReport(ctx context.Context) ([]entities.JobReportItem, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

func (s *ReportService) GetJobReport(ctx context.Context) ([]entities.JobReportItem, error) {
	return s.reportRepo.GetJobReport(ctx)
}
