package pagesnap

import (
	"context"
	"time"
)

// Default ScrollStabilizer tuning.
const (
	DefaultStabilizeTimeout = 15 * time.Second
	DefaultSettleInterval   = 500 * time.Millisecond
)

const (
	scrollToBottomJS = "window.scrollTo(0, document.body.scrollHeight)"
	scrollHeightJS   = "Math.max(document.body.scrollHeight, document.documentElement.scrollHeight)"
)

// ScrollStabilizer drives a page to reveal lazily-loaded content. It
// repeatedly scrolls to the bottom of the document, waits a settle
// interval, and reads the total scrollable height, until two consecutive
// readings are equal or the timeout elapses.
//
// Stabilization never fails: a timeout is a normal exit, and the caller
// proceeds with whatever content has loaded. Script errors on individual
// polls are ignored for the same reason.
type ScrollStabilizer struct {
	// Timeout bounds the whole loop. Defaults to DefaultStabilizeTimeout.
	Timeout time.Duration

	// Settle is the pause between a scroll and the following height
	// reading. Defaults to DefaultSettleInterval.
	Settle time.Duration
}

// Stabilize blocks until the page height stops changing or the timeout
// elapses. It always returns within Timeout plus one settle interval.
func (s *ScrollStabilizer) Stabilize(ctx context.Context, page PageHandle) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultStabilizeTimeout
	}
	settle := s.Settle
	if settle <= 0 {
		settle = DefaultSettleInterval
	}

	deadline := time.Now().Add(timeout)
	lastHeight := -1.0

	for {
		_ = page.Eval(ctx, scrollToBottomJS)

		time.Sleep(settle)

		height, err := page.EvalNumber(ctx, scrollHeightJS)
		if err == nil {
			if height == lastHeight {
				return
			}
			lastHeight = height
		}

		if time.Now().After(deadline) {
			return
		}
	}
}
