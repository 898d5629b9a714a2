package middleware

import (
	"context"

	"go.uber.org/zap"
)

type MonitorFlags uint16

//goland:noinspection GoUnusedConst
const (
	MonitorNone MonitorFlags = 1 << iota
	MonitorAll
	MonitorLoad
	MonitorFit
	MonitorInference
	MonitorDiagnostics
	MonitorBootstrap
	MonitorFailures
)

var stageFlags = map[string]MonitorFlags{
	StageLoad:        MonitorLoad,
	StageFit:         MonitorFit,
	StageInference:   MonitorInference,
	StageDiagnostics: MonitorDiagnostics,
	StageBootstrap:   MonitorBootstrap,
}

type Monitor struct {
	logger *zap.Logger
	flags  MonitorFlags
}

func NewMonitor(logger *zap.Logger, flags MonitorFlags) *Monitor {
	return &Monitor{
		logger: logger,
		flags:  flags,
	}
}

func (m *Monitor) WithStage(handler StageHandler) StageHandler {
	return func(ctx context.Context, stage string) error {
		watched := m.flags&stageFlags[stage] != 0 || m.flags&MonitorAll != 0
		if watched {
			m.logger.Debug("stage started", zap.String("stage", stage))
		}

		err := handler(ctx, stage)

		if err != nil && (watched || m.flags&MonitorFailures != 0) {
			m.logger.Warn("stage failed", zap.String("stage", stage), zap.Error(err))
		} else if watched {
			m.logger.Debug("stage finished", zap.String("stage", stage))
		}
		return err
	}
}
