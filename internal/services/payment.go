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

type PaymentServiceInterface interface {
	GetPayments(ctx context.Context, includeUser bool) ([]entities.Payment, error)
	FindPayment(ctx context.Context, id uint64, includeUser bool) (*entities.Payment, error)
	CreatePayment(ctx context.Context, payload dto.CreatePaymentDTO) (*entities.Payment, error)
	UpdatePayment(ctx context.Context, id uint64, payload dto.UpdatePaymentDTO) (*entities.Payment, error)
	DeletePayment(ctx context.Context, id uint64) error
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepositoryInterface
	logger      *zap.Logger
}

func NewPaymentService(paymentRepo repositories.PaymentRepositoryInterface, logger *zap.Logger) PaymentServiceInterface {
	return &PaymentService{paymentRepo: paymentRepo, logger: logger}
}

func (s *PaymentService) GetPayments(ctx context.Context, includeUser bool) ([]entities.Payment, error) {
	return s.paymentRepo.GetPayments(ctx, includeUser)
}

func (s *PaymentService) FindPayment(ctx context.Context, id uint64, includeUser bool) (*entities.Payment, error) {
	return s.paymentRepo.FindPayment(ctx, id, includeUser)
}

func (s *PaymentService) CreatePayment(ctx context.Context, payload dto.CreatePaymentDTO) (*entities.Payment, error) {
	date, err := utils.ParseDate(payload.Date)
	if err != nil {
		return nil, err
	}

	kind := payload.PaymentKind
	if kind == "" {
		kind = entities.PaymentKindSalary
	}

	payment := &entities.Payment{
		Date:        date,
		Amount:      *payload.Amount,
		Description: null.StringFromPtr(payload.Description),
		PaymentKind: kind,
		PaymentType: null.StringFromPtr(payload.PaymentType),
		UserID:      null.Uint64FromPtr(payload.UserID),
	}
	return s.paymentRepo.CreatePayment(ctx, payment)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id uint64, payload dto.UpdatePaymentDTO) (*entities.Payment, error) {
	payment, err := s.paymentRepo.FindPayment(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if payload.Date != nil {
		date, err := utils.ParseDate(*payload.Date)
		if err != nil {
			return nil, err
		}
		payment.Date = date
	}
	if payload.Amount != nil {
		payment.Amount = *payload.Amount
	}
	if payload.Description != nil {
		payment.Description = null.StringFrom(*payload.Description)
	}
	if payload.PaymentKind != nil {
		payment.PaymentKind = *payload.PaymentKind
	}
	if payload.PaymentType != nil {
		payment.PaymentType = null.StringFrom(*payload.PaymentType)
	}
	if payload.UserID != nil {
		payment.UserID = null.Uint64From(*payload.UserID)
	}

	return s.paymentRepo.UpdatePayment(ctx, payment)
}

func (s *PaymentService) DeletePayment(ctx context.Context, id uint64) error {
	return s.paymentRepo.DeletePayment(ctx, id)
}
