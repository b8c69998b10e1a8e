package application

import (
	"context"
	"time"

	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

// HealthState is the overall state reported by HealthService.
type HealthState string

// Health states.
const (
	HealthOK       HealthState = "ok"
	HealthDegraded HealthState = "degraded"
)

// HealthReport is the result of a single health check.
type HealthReport struct {
	State     HealthState
	Storage   string
	CheckedAt time.Time
}

// Healthy reports whether every dependency answered.
func (r HealthReport) Healthy() bool {
	return r.State == HealthOK
}

// HealthService checks the dependencies the password service needs. It
// depends only on port interfaces.
type HealthService struct {
	storage driven.StorageProbe
	timeout time.Duration
	now     func() time.Time
}

// NewHealthService creates a HealthService probing storage.
func NewHealthService(storage driven.StorageProbe) *HealthService {
	return &HealthService{
		storage: storage,
		timeout: 2 * time.Second,
		now:     time.Now,
	}
}

// Check probes storage with a bounded timeout. A failing probe degrades the
// report; the underlying error text is kept out of it.
func (s *HealthService) Check(ctx context.Context) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report := HealthReport{
		State:     HealthOK,
		Storage:   "ok",
		CheckedAt: s.now().UTC(),
	}

	if err := s.storage.Ping(ctx); err != nil {
		report.State = HealthDegraded
		report.Storage = "unavailable"
	}

	return report
}
