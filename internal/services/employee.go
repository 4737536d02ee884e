package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/dto"
	"github.com/Trunday/kalfa-api/internal/entities"
	"github.com/Trunday/kalfa-api/internal/repositories"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
	"github.com/Trunday/kalfa-api/pkg/utils"
)

type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context) ([]entities.User, error)
	FindEmployee(ctx context.Context, id uint64) (*entities.User, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.User, error)
	UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.User, error)
	DeactivateEmployee(ctx context.Context, id uint64) error
}

type EmployeeService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewEmployeeService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) EmployeeServiceInterface {
	return &EmployeeService{userRepo: userRepo, logger: logger}
}

// GetEmployees lists active employee-role users only; deactivated rows stay
// in storage but drop out of this view.
func (s *EmployeeService) GetEmployees(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.GetUsers(ctx, entities.RoleEmployee, true)
}

func (s *EmployeeService) FindEmployee(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepo.FindUserByID(ctx, id)
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.User, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username: payload.Username,
		Password: hashed,
		Email:    null.StringFromPtr(payload.Email),
		Role:     entities.RoleEmployee,
		FullName: null.StringFromPtr(payload.FullName),
		Phone:    null.StringFromPtr(payload.Phone),
		Notes:    null.StringFromPtr(payload.Notes),
		Address:  null.StringFromPtr(payload.Address),
		Active:   true,
	}

	if payload.BirthDate != nil {
		birthDate, err := utils.ParseDate(*payload.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = null.TimeFrom(birthDate)
	}

	return s.userRepo.CreateUser(ctx, user)
}

// loadEmployeeForMutation re-checks the target role so the employee-scoped
// endpoints cannot touch an admin account.
func (s *EmployeeService) loadEmployeeForMutation(ctx context.Context, id uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role != entities.RoleEmployee {
		s.logger.Warn("employee endpoint refused non-employee target",
			zap.Uint64("id", id), zap.String("role", user.Role))
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint64, payload dto.UpdateEmployeeDTO) (*entities.User, error) {
	user, err := s.loadEmployeeForMutation(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Username != nil {
		user.Username = *payload.Username
	}
	if payload.Password != nil {
		hashed, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if payload.Email != nil {
		user.Email = null.StringFrom(*payload.Email)
	}
	if payload.FullName != nil {
		user.FullName = null.StringFrom(*payload.FullName)
	}
	if payload.Phone != nil {
		user.Phone = null.StringFrom(*payload.Phone)
	}
	if payload.Notes != nil {
		user.Notes = null.StringFrom(*payload.Notes)
	}
	if payload.Address != nil {
		user.Address = null.StringFrom(*payload.Address)
	}
	if payload.BirthDate != nil {
		birthDate, err := utils.ParseDate(*payload.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = null.TimeFrom(birthDate)
	}
	if payload.Active != nil {
		user.Active = *payload.Active
	}

	return s.userRepo.UpdateUser(ctx, user)
}

// DeactivateEmployee is the only "delete" for employees: active flips to
// false, the row is never removed.
func (s *EmployeeService) DeactivateEmployee(ctx context.Context, id uint64) error {
	if _, err := s.loadEmployeeForMutation(ctx, id); err != nil {
		return err
	}
	return s.userRepo.DeactivateUser(ctx, id)
}
