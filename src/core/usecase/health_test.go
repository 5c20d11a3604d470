package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"jokeshare/src/core/ports"
	"jokeshare/src/infra/repo/repotest"
)

func TestHealthService_Check(t *testing.T) {
	users := repotest.NewUsers()
	jokes := repotest.NewJokes()
	svc := NewHealthService(discardLogger(), map[string]ports.Repository{
		"users": users,
		"jokes": jokes,
	})

	status := svc.Check(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "healthy", status.Components["users"].Status)

	jokes.FailWith(errors.New("down"))
	status = svc.Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "unhealthy", status.Components["jokes"].Status)
	assert.Equal(t, "healthy", status.Components["users"].Status)
}
