package host

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LogProgress is a Progress scope that logs the label and duration of the
// wrapped operation. The standalone host has no spinner surface to attach to.
type LogProgress struct {
	log *zap.Logger
}

// NewLogProgress returns a logging progress scope.
func NewLogProgress(log *zap.Logger) *LogProgress {
	return &LogProgress{log: log}
}

func (p *LogProgress) Run(ctx context.Context, label string, fn func(context.Context) error) error {
	start := time.Now()
	p.log.Debug("progress begin", zap.String("label", label))
	err := fn(ctx)
	p.log.Debug("progress end", zap.String("label", label), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	return err
}
