// Package quip turns diagnostics into the display strings the engine renders.
// Resolution is two-tiered: a static per-code table answers instantly and
// deterministically; everything else goes to the remote text-generation
// service with a persona prompt, degrading to a fixed fallback line on any
// failure. A remote miss is never cached, so a transient outage cannot poison
// future lookups for the same key.
package quip

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"menhera/internal/diagnostic"
	"menhera/internal/host"
	"menhera/internal/locale"
)

// Generator is the remote text-generation service. Every call is
// at-most-once: no retry contract, unbounded latency, any error is terminal
// for that call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Resolver maps one diagnostic to one display string.
type Resolver struct {
	bundle   *locale.Bundle
	gen      Generator
	progress host.Progress
	log      *zap.Logger
}

// NewResolver builds a resolver over the given bundle and generator. A nil
// generator disables the remote tier; misses then resolve to the fallback
// line immediately.
func NewResolver(bundle *locale.Bundle, gen Generator, progress host.Progress, log *zap.Logger) *Resolver {
	return &Resolver{bundle: bundle, gen: gen, progress: progress, log: log}
}

// Resolve returns the display string for sig. It never returns an error and
// never blocks beyond the single remote call it may issue.
func (r *Resolver) Resolve(ctx context.Context, sig diagnostic.Signal) string {
	key := sig.Key()
	if msg, ok := r.bundle.Responses[key]; ok {
		return msg
	}
	if r.gen == nil {
		return r.bundle.Fallback
	}

	prompt := r.bundle.Prompt + "\n\n" + sig.Message
	var text string
	run := func(ctx context.Context) error {
		out, err := r.gen.Generate(ctx, prompt)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(out)
		return nil
	}

	var err error
	if r.progress != nil {
		err = r.progress.Run(ctx, r.bundle.Progress, run)
	} else {
		err = run(ctx)
	}
	if err != nil || text == "" {
		r.log.Debug("remote resolution failed, using fallback",
			zap.String("key", key), zap.Error(err))
		return r.bundle.Fallback
	}
	return text
}

// ResolveAll resolves every signal concurrently and returns the messages in
// input order. Concurrency is deliberately uncapped: calls are independent
// and results attach to their own lines, so completion order is irrelevant.
func (r *Resolver) ResolveAll(ctx context.Context, sigs []diagnostic.Signal) []string {
	msgs := make([]string, len(sigs))
	g, ctx := errgroup.WithContext(ctx)
	for i, sig := range sigs {
		g.Go(func() error {
			msgs[i] = r.Resolve(ctx, sig)
			return nil
		})
	}
	_ = g.Wait() // Resolve never errors.
	return msgs
}
