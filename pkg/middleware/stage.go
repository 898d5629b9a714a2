package middleware

import "context"

// StageHandler runs one named step of an analysis.
type StageHandler func(ctx context.Context, stage string) error

const (
	StageLoad        = "load"
	StageFit         = "fit"
	StageInference   = "inference"
	StageDiagnostics = "diagnostics"
	StageBootstrap   = "bootstrap"
)
