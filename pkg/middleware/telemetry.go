package middleware

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type StageStatistics struct {
	Runs     int64
	Failures int64
	Duration time.Duration
}

// Telemetry is shared by concurrent analyses.
type Telemetry struct {
	logger *zap.Logger

	mu     sync.Mutex
	stages map[string]*StageStatistics
}

func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
		stages: make(map[string]*StageStatistics),
	}
}

func (t *Telemetry) WithStage(handler StageHandler) StageHandler {
	return func(ctx context.Context, stage string) error {
		startTime := time.Now()
		err := handler(ctx, stage)
		elapsed := time.Since(startTime)

		t.mu.Lock()
		defer t.mu.Unlock()

		stats, ok := t.stages[stage]
		if !ok {
			stats = &StageStatistics{}
			t.stages[stage] = stats
		}
		stats.Runs++
		stats.Duration += elapsed
		if err != nil {
			stats.Failures++
		}
		return err
	}
}

func (t *Telemetry) Statistics(stage string) StageStatistics {
	t.mu.Lock()
	defer t.mu.Unlock()

	if stats, ok := t.stages[stage]; ok {
		return *stats
	}
	return StageStatistics{}
}

func (t *Telemetry) PrintStatistics() {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.stages))
	for name := range t.stages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stats := t.stages[name]
		t.logger.Info("stage statistics",
			zap.String("stage", name),
			zap.Int64("runs", stats.Runs),
			zap.Int64("failures", stats.Failures),
			zap.Duration("total_duration", stats.Duration))
	}
}
