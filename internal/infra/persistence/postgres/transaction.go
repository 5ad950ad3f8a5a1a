// Package postgres persists users, businesses and promotions in PostgreSQL through GORM and the generated query builder.
package postgres

import (
	"context"

	"dealfinder/internal/domain/repository"
	"dealfinder/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager provides the repository.TransactionManager used by the
// cascading deletes and the business create and status flows.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewBusinessRepository() repository.BusinessRepository {
	return NewBusinessRepository(f.tx)
}

func (f txRepositories) NewPromotionRepository() repository.PromotionRepository {
	return NewPromotionRepository(f.tx)
}

// Execute runs fn inside one transaction. An error from fn rolls back and is
// returned unchanged so callers can still match domain errors; a panic rolls
// back and propagates. Failures to begin or commit are wrapped.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "postgres transaction failed")
	}

	return nil
}
