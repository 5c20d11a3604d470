package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokeshare/src/core/domain"
)

const testJokeID = "0b9d7c52-3f0e-4a4c-8d0b-5d9a1e7f2c33"

func jokeColumns() []string {
	return []string{"id", "jokester_id", "name", "content", "created_at", "updated_at"}
}

func newJokeRepo(t *testing.T) (*JokeRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return NewJokeRepository(mock, discardLogger()), mock
}

func TestJokeRepository_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantName  string
		wantErr   func(error) bool
	}{
		{
			name: "found",
			id:   testJokeID,
			setupMock: func(mock pgxmock.PgxPoolIface) {
				now := time.Now()
				mock.ExpectQuery(`FROM jokes\s+WHERE id = \$1`).
					WithArgs(testJokeID).
					WillReturnRows(pgxmock.NewRows(jokeColumns()).
						AddRow(testJokeID, testUserID, "Frisbee", "I was wondering why the frisbee was getting bigger", now, now))
			},
			wantName: "Frisbee",
		},
		{
			name: "no rows",
			id:   testJokeID,
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM jokes\s+WHERE id = \$1`).
					WithArgs(testJokeID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.IsNotFound,
		},
		{
			name:      "malformed id never reaches the database",
			id:        "banana",
			setupMock: func(pgxmock.PgxPoolIface) {},
			wantErr:   domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newJokeRepo(t)
			tt.setupMock(mock)

			got, err := repo.FindByID(context.Background(), tt.id)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
				assert.Equal(t, testUserID, got.JokesterID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJokeRepository_FindMany(t *testing.T) {
	repo, mock := newJokeRepo(t)

	now := time.Now()
	mock.ExpectQuery(`FROM jokes\s+ORDER BY created_at ASC, id ASC\s+LIMIT \$1 OFFSET \$2`).
		WithArgs(1, 2).
		WillReturnRows(pgxmock.NewRows(jokeColumns()).
			AddRow(testJokeID, testUserID, "Road worker", "I never wanted to believe that my Dad was stealing", now, now))

	got, err := repo.FindMany(context.Background(), 1, 2)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Road worker", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJokeRepository_FindMany_Empty(t *testing.T) {
	repo, mock := newJokeRepo(t)

	mock.ExpectQuery(`FROM jokes`).
		WithArgs(1, 5).
		WillReturnRows(pgxmock.NewRows(jokeColumns()))

	got, err := repo.FindMany(context.Background(), 1, 5)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJokeRepository_Count(t *testing.T) {
	repo, mock := newJokeRepo(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM jokes`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJokeRepository_Create(t *testing.T) {
	t.Run("inserts", func(t *testing.T) {
		repo, mock := newJokeRepo(t)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO jokes`).
			WithArgs(pgxmock.AnyArg(), testUserID, "Skeletons", "Why don't skeletons ride roller coasters?").
			WillReturnRows(pgxmock.NewRows(jokeColumns()).
				AddRow(testJokeID, testUserID, "Skeletons", "Why don't skeletons ride roller coasters?", now, now))

		got, err := repo.Create(context.Background(), domain.NewJoke{
			JokesterID: testUserID,
			Name:       "Skeletons",
			Content:    "Why don't skeletons ride roller coasters?",
		})

		require.NoError(t, err)
		assert.Equal(t, testJokeID, got.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown jokester", func(t *testing.T) {
		repo, mock := newJokeRepo(t)

		mock.ExpectQuery(`INSERT INTO jokes`).
			WithArgs(pgxmock.AnyArg(), testUserID, "Skeletons", "Why don't skeletons ride roller coasters?").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		_, err := repo.Create(context.Background(), domain.NewJoke{
			JokesterID: testUserID,
			Name:       "Skeletons",
			Content:    "Why don't skeletons ride roller coasters?",
		})

		assert.True(t, domain.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJokeRepository_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   func(error) bool
	}{
		{
			name: "deleted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM jokes WHERE id = \$1`).
					WithArgs(testJokeID).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "nothing deleted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM jokes WHERE id = \$1`).
					WithArgs(testJokeID).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: domain.IsNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM jokes`).
					WithArgs(testJokeID).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: func(err error) bool { return err != nil && !domain.IsNotFound(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newJokeRepo(t)
			tt.setupMock(mock)

			err := repo.Delete(context.Background(), testJokeID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
