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

// JokeRepository implements ports.JokeRepository using pgx.
type JokeRepository struct {
	db  DBTX
	log *slog.Logger
}

// NewJokeRepository constructs a joke repository backed by Postgres.
func NewJokeRepository(db DBTX, log *slog.Logger) *JokeRepository {
	return &JokeRepository{
		db:  db,
		log: log,
	}
}

func (r *JokeRepository) Health(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *JokeRepository) FindByID(ctx context.Context, id string) (*domain.Joke, error) {
	jokeID, ok := parseID(id)
	if !ok {
		return nil, domain.NewNotFoundError("joke")
	}

	const q = `
		SELECT id::text, jokester_id::text, name, content, created_at, updated_at
		FROM jokes
		WHERE id = $1
	`
	var j domain.Joke
	err := r.db.QueryRow(ctx, q, jokeID).Scan(&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("joke")
		}
		return nil, err
	}
	return &j, nil
}

// FindMany pages through jokes ordered by creation time, id breaking ties,
// so an offset points at the same row as long as the table is unchanged.
func (r *JokeRepository) FindMany(ctx context.Context, take, skip int) ([]domain.Joke, error) {
	const q = `
		SELECT id::text, jokester_id::text, name, content, created_at, updated_at
		FROM jokes
		ORDER BY created_at ASC, id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, q, take, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jokes := make([]domain.Joke, 0, take)
	for rows.Next() {
		var j domain.Joke
		if err := rows.Scan(&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		jokes = append(jokes, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jokes, nil
}

func (r *JokeRepository) Count(ctx context.Context) (int, error) {
	const q = `SELECT count(*) FROM jokes`
	var n int64
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *JokeRepository) Create(ctx context.Context, joke domain.NewJoke) (*domain.Joke, error) {
	jokesterID, ok := parseID(joke.JokesterID)
	if !ok {
		return nil, domain.NewNotFoundError("jokester")
	}

	const q = `
		INSERT INTO jokes (id, jokester_id, name, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, jokester_id::text, name, content, created_at, updated_at
	`
	var j domain.Joke
	err := r.db.QueryRow(ctx, q, uuid.NewString(), jokesterID, joke.Name, joke.Content).
		Scan(&j.ID, &j.JokesterID, &j.Name, &j.Content, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.NewNotFoundError("jokester")
		}
		return nil, fmt.Errorf("insert joke: %w", err)
	}
	return &j, nil
}

func (r *JokeRepository) Delete(ctx context.Context, id string) error {
	jokeID, ok := parseID(id)
	if !ok {
		return domain.NewNotFoundError("joke")
	}

	const q = `DELETE FROM jokes WHERE id = $1`
	res, err := r.db.Exec(ctx, q, jokeID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("joke")
	}
	return nil
}
