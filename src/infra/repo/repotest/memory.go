// Package repotest provides in-memory repositories for tests that need a
// working store without Postgres.
package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"jokeshare/src/core/domain"
)

// Users is an in-memory ports.UserRepository.
type Users struct {
	mu          sync.Mutex
	byID        map[string]domain.User
	fault       error
	createFault error
}

// NewUsers returns an empty user store.
func NewUsers() *Users {
	return &Users{byID: make(map[string]domain.User)}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *Users) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = err
}

// FailCreateWith makes Create return err while lookups keep working.
func (s *Users) FailCreateWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createFault = err
}

func (s *Users) Health(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fault
}

func (s *Users) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	for _, u := range s.byID {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (s *Users) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("user")
	}
	return &u, nil
}

func (s *Users) Create(_ context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	if s.createFault != nil {
		return nil, s.createFault
	}
	for _, u := range s.byID {
		if u.Username == username {
			return nil, domain.NewConflictError("username already taken")
		}
	}
	now := time.Now()
	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byID[u.ID] = u
	return &u, nil
}

// Jokes is an in-memory ports.JokeRepository keeping insertion order.
type Jokes struct {
	mu    sync.Mutex
	jokes []domain.Joke
	fault error
}

// NewJokes returns a joke store holding seed, in order.
func NewJokes(seed ...domain.Joke) *Jokes {
	return &Jokes{jokes: append([]domain.Joke(nil), seed...)}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *Jokes) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = err
}

func (s *Jokes) Health(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fault
}

func (s *Jokes) FindByID(_ context.Context, id string) (*domain.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	for _, j := range s.jokes {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (s *Jokes) FindMany(_ context.Context, take, skip int) ([]domain.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	if skip >= len(s.jokes) {
		return []domain.Joke{}, nil
	}
	end := min(skip+take, len(s.jokes))
	return append([]domain.Joke(nil), s.jokes[skip:end]...), nil
}

func (s *Jokes) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return 0, s.fault
	}
	return len(s.jokes), nil
}

func (s *Jokes) Create(_ context.Context, joke domain.NewJoke) (*domain.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return nil, s.fault
	}
	now := time.Now()
	j := domain.Joke{
		ID:         uuid.NewString(),
		JokesterID: joke.JokesterID,
		Name:       joke.Name,
		Content:    joke.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.jokes = append(s.jokes, j)
	return &j, nil
}

func (s *Jokes) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return s.fault
	}
	for i, j := range s.jokes {
		if j.ID == id {
			s.jokes = append(s.jokes[:i], s.jokes[i+1:]...)
			return nil
		}
	}
	return domain.NewNotFoundError("joke")
}
