// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"jokeshare/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// UserRepository persists user records. Lookups of missing users return a
// domain not-found error.
type UserRepository interface {
	Repository

	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create fails with a domain conflict error when the username is taken.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
}

// JokeRepository persists jokes.
type JokeRepository interface {
	Repository

	FindByID(ctx context.Context, id string) (*domain.Joke, error)
	// FindMany returns up to take jokes after skipping skip rows, in a stable
	// order (oldest first).
	FindMany(ctx context.Context, take, skip int) ([]domain.Joke, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, joke domain.NewJoke) (*domain.Joke, error)
	Delete(ctx context.Context, id string) error
}
