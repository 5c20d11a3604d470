package usecase

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"jokeshare/src/core/domain"
	"jokeshare/src/core/ports"
)

// JokeService handles reading, posting and deleting jokes.
type JokeService struct {
	jokes ports.JokeRepository
	log   *slog.Logger

	// intN picks the random row offset; replaced in tests.
	intN func(n int) int
}

// NewJokeService creates a new JokeService.
func NewJokeService(jokes ports.JokeRepository, log *slog.Logger) *JokeService {
	return &JokeService{
		jokes: jokes,
		log:   log,
		intN:  rand.IntN,
	}
}

// Random returns a joke picked by a uniform random row offset.
//
// The count and the fetch are separate queries, so an insert or delete in
// between can skew the pick or make the fetch come back empty. An empty
// fetch is reported as not found.
func (s *JokeService) Random(ctx context.Context) (*domain.Joke, error) {
	count, err := s.jokes.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.NewNotFoundError("no random joke found")
	}

	jokes, err := s.jokes.FindMany(ctx, 1, s.intN(count))
	if err != nil {
		return nil, err
	}
	if len(jokes) == 0 {
		return nil, domain.NewNotFoundError("no random joke found")
	}
	return &jokes[0], nil
}

// Get returns the joke with the given id.
func (s *JokeService) Get(ctx context.Context, id string) (*domain.Joke, error) {
	return s.jokes.FindByID(ctx, id)
}

// Create posts a joke for jokesterID. Name and content are expected to be
// whitespace-normalised already; values that fail validation are refused.
func (s *JokeService) Create(ctx context.Context, jokesterID, name, content string) (*domain.Joke, error) {
	if msg := domain.ValidateJokeName(name); msg != "" {
		return nil, domain.NewValidationError("name", msg)
	}
	if msg := domain.ValidateJokeContent(content); msg != "" {
		return nil, domain.NewValidationError("content", msg)
	}

	joke, err := s.jokes.Create(ctx, domain.NewJoke{
		JokesterID: jokesterID,
		Name:       name,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("joke created", "joke_id", joke.ID, "jokester_id", jokesterID)
	return joke, nil
}

// Delete removes a joke on behalf of requesterID, who must be its jokester.
// A mismatch is an unauthorized error, not a not-found.
func (s *JokeService) Delete(ctx context.Context, id, requesterID string) error {
	joke, err := s.jokes.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.NewNotFoundError("can't delete what does not exist")
		}
		return err
	}
	if !joke.OwnedBy(requesterID) {
		s.log.Warn("joke delete refused", "joke_id", id, "requester_id", requesterID)
		return domain.NewUnauthorizedError("pssh, nice try. that's not your joke")
	}

	if err := s.jokes.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("joke deleted", "joke_id", id)
	return nil
}
