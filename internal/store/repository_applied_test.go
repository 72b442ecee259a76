package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronin/go-sync-keeper/internal/logger"
)

func newTestAppliedRepo(t *testing.T) (*appliedRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &appliedRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestAppliedRepository_IsApplied(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "already applied", count: 1, want: true},
		{name: "never seen", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestAppliedRepo(t)
			defer db.Close()

			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applied_messages`).
				WithArgs("msg-1").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.IsApplied(context.Background(), "msg-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppliedRepository_MarkApplied_Success(t *testing.T) {
	repo, mock, db := newTestAppliedRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO applied_messages").
		WithArgs("msg-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.MarkApplied(context.Background(), "msg-1")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Повторная пометка того же message_id не должна падать: ON CONFLICT DO NOTHING.
func TestAppliedRepository_MarkApplied_DuplicateIsNoop(t *testing.T) {
	repo, mock, db := newTestAppliedRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO applied_messages").
		WithArgs("msg-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkApplied(context.Background(), "msg-1")

	require.NoError(t, err)
}
