package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Trunday/kalfa-api/internal/entities"
	apperrors "github.com/Trunday/kalfa-api/pkg/errors"
)

const paymentTable = "odeme"
const paymentSelectFields = "p.id, p.date, p.amount, p.description, p.payment_kind, p.payment_type, p.user_id"

// paymentOwnerFields deliberately leaves out the password column so the owner
// is serialized sanitized.
const paymentOwnerFields = "u.id, u.username, u.email, u.role, u.full_name, u.active"

type PaymentRepositoryInterface interface {
	GetPayments(ctx context.Context, includeUser bool) ([]entities.Payment, error)
	FindPayment(ctx context.Context, id uint64, includeUser bool) (*entities.Payment, error)
	CreatePayment(ctx context.Context, entity *entities.Payment) (*entities.Payment, error)
	UpdatePayment(ctx context.Context, entity *entities.Payment) (*entities.Payment, error)
	DeletePayment(ctx context.Context, id uint64) error
}

type PaymentRepository struct {
	storage Database
	logger  *zap.Logger
}

func NewPaymentRepository(storage Database, logger *zap.Logger) PaymentRepositoryInterface {
	return &PaymentRepository{storage: storage, logger: logger}
}

func scanPayment(row pgx.Row) (*entities.Payment, error) {
	var payment entities.Payment
	err := row.Scan(
		&payment.ID, &payment.Date, &payment.Amount, &payment.Description,
		&payment.PaymentKind, &payment.PaymentType, &payment.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment row: %w", err)
	}
	return &payment, nil
}

// scanPaymentWithUser reads a payment joined with its (possibly absent) owner.
func scanPaymentWithUser(row pgx.Row) (*entities.Payment, error) {
	var payment entities.Payment
	var owner entities.User
	var ownerID *uint64
	var ownerUsername, ownerRole *string
	var ownerActive *bool

	err := row.Scan(
		&payment.ID, &payment.Date, &payment.Amount, &payment.Description,
		&payment.PaymentKind, &payment.PaymentType, &payment.UserID,
		&ownerID, &ownerUsername, &owner.Email, &ownerRole, &owner.FullName, &ownerActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment row: %w", err)
	}

	if ownerID != nil {
		owner.ID = *ownerID
		owner.Username = *ownerUsername
		owner.Role = *ownerRole
		owner.Active = *ownerActive
		payment.User = &owner
	}
	return &payment, nil
}

func mapPaymentForeignKeyError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return apperrors.NewBadRequestError("Geçersiz kullanıcı (user_id).")
	}
	return err
}

func (r *PaymentRepository) GetPayments(ctx context.Context, includeUser bool) ([]entities.Payment, error) {
	var query string
	scan := scanPayment
	if includeUser {
		query = fmt.Sprintf(`SELECT %s, %s FROM %s p LEFT JOIN users u ON p.user_id = u.id ORDER BY p.id`,
			paymentSelectFields, paymentOwnerFields, paymentTable)
		scan = scanPaymentWithUser
	} else {
		query = fmt.Sprintf(`SELECT %s FROM %s p ORDER BY p.id`, paymentSelectFields, paymentTable)
	}
	r.logger.Debug("executing payment list query", zap.String("query", query))

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := make([]entities.Payment, 0)
	for rows.Next() {
		payment, err := scan(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) FindPayment(ctx context.Context, id uint64, includeUser bool) (*entities.Payment, error) {
	if includeUser {
		query := fmt.Sprintf(`SELECT %s, %s FROM %s p LEFT JOIN users u ON p.user_id = u.id WHERE p.id = $1`,
			paymentSelectFields, paymentOwnerFields, paymentTable)
		return scanPaymentWithUser(r.storage.QueryRow(ctx, query, id))
	}
	query := fmt.Sprintf(`SELECT %s FROM %s p WHERE p.id = $1`, paymentSelectFields, paymentTable)
	return scanPayment(r.storage.QueryRow(ctx, query, id))
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, entity *entities.Payment) (*entities.Payment, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (date, amount, description, payment_kind, payment_type, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s`, paymentTable, "id, date, amount, description, payment_kind, payment_type, user_id")

	row := r.storage.QueryRow(ctx, query,
		entity.Date, entity.Amount, entity.Description,
		entity.PaymentKind, entity.PaymentType, entity.UserID,
	)

	created, err := scanPayment(row)
	if err != nil {
		return nil, mapPaymentForeignKeyError(err)
	}
	return created, nil
}

func (r *PaymentRepository) UpdatePayment(ctx context.Context, entity *entities.Payment) (*entities.Payment, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET date = $1, amount = $2, description = $3, payment_kind = $4, payment_type = $5, user_id = $6
		WHERE id = $7
		RETURNING %s`, paymentTable, "id, date, amount, description, payment_kind, payment_type, user_id")

	row := r.storage.QueryRow(ctx, query,
		entity.Date, entity.Amount, entity.Description,
		entity.PaymentKind, entity.PaymentType, entity.UserID, entity.ID,
	)

	updated, err := scanPayment(row)
	if err != nil {
		return nil, mapPaymentForeignKeyError(err)
	}
	return updated, nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM odeme WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
