package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/seedpass/internal/domain/port/driven"
)

type mockStorageProbe struct {
	err      error
	deadline bool
}

func (m *mockStorageProbe) Ping(ctx context.Context) error {
	_, m.deadline = ctx.Deadline()
	return m.err
}

func TestHealthService_Check(t *testing.T) {
	fixed := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		probeErr    error
		wantState   HealthState
		wantStorage string
	}{
		{name: "storage reachable", wantState: HealthOK, wantStorage: "ok"},
		{
			name:        "storage unavailable",
			probeErr:    fmt.Errorf("ping writer: %w: %w", driven.ErrStorageUnavailable, errors.New("database is locked")),
			wantState:   HealthDegraded,
			wantStorage: "unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &mockStorageProbe{err: tt.probeErr}
			svc := NewHealthService(probe)
			svc.now = func() time.Time { return fixed }

			report := svc.Check(context.Background())

			assert.Equal(t, tt.wantState, report.State)
			assert.Equal(t, tt.wantStorage, report.Storage)
			assert.Equal(t, tt.wantState == HealthOK, report.Healthy())
			assert.Equal(t, fixed, report.CheckedAt)
			assert.True(t, probe.deadline, "probe should run with a deadline")
		})
	}
}
