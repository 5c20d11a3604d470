package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"jokeshare/src/core/domain"
)

// UserRepository implements ports.UserRepository using pgx.
type UserRepository struct {
	db  DBTX
	log *slog.Logger
}

// NewUserRepository constructs a user repository backed by Postgres.
func NewUserRepository(db DBTX, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Health(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, q, username))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	userID, ok := parseID(id)
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}

	const q = `
		SELECT id::text, username, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, q, userID))
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	const q = `
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id::text, username, password_hash, created_at, updated_at
	`
	user, err := r.scanOne(r.db.QueryRow(ctx, q, uuid.NewString(), username, passwordHash))
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warn("username taken at insert time", "username", username)
			return nil, domain.NewConflictError("username already taken")
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, err
	}
	return &u, nil
}
