package postgres

import (
	"context"
	"testing"

	"dealfinder/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsRepositoryWork(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(exactSQL(recountSQL)).
		WithArgs(id.String(), id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactionManager(db).Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		return repos.NewBusinessRepository().RecountPromotions(context.Background(), id)
	})

	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		return repository.ErrBusinessNotFound
	})

	assert.Same(t, repository.ErrBusinessNotFound, err)
}

func TestTransactionManager_WrapsCommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	commitErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(commitErr)

	err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, commitErr)
	assert.Contains(t, err.Error(), "postgres transaction failed")
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
}
