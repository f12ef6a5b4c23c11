package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// AccountRepository defines the interface for identity-provider account operations.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	ctx, span := observability.StartStoreSpan(ctx, "create", "accounts")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		observability.RecordError(ctx, err)
		return models.NewInternalError(err)
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, span := observability.StartStoreSpan(ctx, "get", "accounts")
	defer span.End()

	var account models.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil for not found, not an error
		}
		observability.RecordError(ctx, err)
		return nil, models.NewInternalError(err)
	}
	return &account, nil
}
