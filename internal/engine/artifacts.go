package engine

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// letterSlot addresses the two artifact slots: 0 = first letter, 1 = second.
func (e *Engine) letter(slot int) (filename, content string) {
	l := e.bundle.Letter1
	if slot == 1 {
		l = e.bundle.Letter2
	}
	return l.Filename, l.Content
}

// createLetter materializes a punishment artifact: check-then-create, open in
// the editor, then fill it with the typewriter effect and save. At most one
// instance per slot can exist; re-entering punishment while the letter is
// still around must not duplicate it. File-system failures are logged and
// swallowed; the punishment flags are already set and stay set.
func (e *Engine) createLetter(slot int) {
	filename, content := e.letter(slot)
	path := e.deps.Files.Resolve(filename)

	if e.deps.Editor.IsOpen(path) || e.deps.Files.Exists(path) {
		e.log.Debug("letter already exists, not recreating", zap.String("path", path))
		return
	}
	if err := e.deps.Files.Write(path, nil); err != nil {
		e.log.Warn("failed to create letter", zap.String("path", path), zap.Error(err))
		return
	}
	if err := e.deps.Editor.OpenDocument(path); err != nil {
		e.log.Warn("failed to open letter", zap.String("path", path), zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.mu.Lock()
	if prev := e.typists[slot]; prev != nil {
		prev()
	}
	e.typists[slot] = cancel
	sync := e.syncTypewriter
	e.mu.Unlock()

	if sync {
		e.typewrite(ctx, path, content)
	} else {
		go e.typewrite(ctx, path, content)
	}
}

// typewrite inserts the content one character at a time with a randomized
// delay per character, then saves. Cancellation stops mid-word without
// touching the file further.
func (e *Engine) typewrite(ctx context.Context, path, content string) {
	esc := e.cfg().Escalation
	minDelay := time.Duration(esc.TypeDelayMinMS) * time.Millisecond
	maxDelay := time.Duration(esc.TypeDelayMaxMS) * time.Millisecond

	for _, r := range content {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if err := e.deps.Editor.InsertText(path, string(r)); err != nil {
			e.log.Warn("typewriter insert failed", zap.String("path", path), zap.Error(err))
			return
		}
		if d := randomDelay(minDelay, maxDelay); d > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(d):
			}
		}
	}
	if err := e.deps.Editor.SaveDocument(path); err != nil {
		e.log.Warn("failed to save letter", zap.String("path", path), zap.Error(err))
	}
}

func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// deleteLetters closes and removes both artifacts. Already-absent files are
// an expected race and ignored.
func (e *Engine) deleteLetters() {
	for slot := 0; slot < 2; slot++ {
		filename, _ := e.letter(slot)
		path := e.deps.Files.Resolve(filename)

		if err := e.deps.Editor.CloseDocument(path); err != nil {
			e.log.Debug("failed to close letter tab", zap.String("path", path), zap.Error(err))
		}
		if err := e.deps.Files.Delete(path, true); err != nil {
			e.log.Warn("failed to delete letter", zap.String("path", path), zap.Error(err))
		}
	}
}

// stopTypistsLocked cancels any in-flight typewriter goroutines. Caller holds
// e.mu.
func (e *Engine) stopTypistsLocked() {
	for i, cancel := range e.typists {
		if cancel != nil {
			cancel()
			e.typists[i] = nil
		}
	}
}
