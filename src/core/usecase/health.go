package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"jokeshare/src/core/ports"
)

// healthCheckTimeout bounds each component ping.
const healthCheckTimeout = 2 * time.Second

// HealthService pings the stores the application depends on.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.Repository
}

func NewHealthService(log *slog.Logger, components map[string]ports.Repository) *HealthService {
	return &HealthService{log: log, components: components}
}

type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check pings every component concurrently. One failure marks the whole
// status "degraded"; error details stay in the log.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	var (
		mu     sync.Mutex
		status = &HealthStatus{Status: "ok", Components: make(map[string]ComponentHealth, len(s.components))}
	)

	var g errgroup.Group
	for name, component := range s.components {
		g.Go(func() error {
			pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
			defer cancel()

			result := ComponentHealth{Status: "healthy"}
			if err := component.Health(pingCtx); err != nil {
				s.log.WarnContext(ctx, "health check failed", "component", name, "error", err)
				result = ComponentHealth{Status: "unhealthy", Message: "unreachable"}
			}

			mu.Lock()
			defer mu.Unlock()
			status.Components[name] = result
			if result.Status != "healthy" {
				status.Status = "degraded"
			}
			return nil
		})
	}
	_ = g.Wait()

	return status
}
