package pagesnap_test

import (
	"context"
	"testing"
	"time"

	"github.com/pagesnap/pagesnap"
	"github.com/pagesnap/pagesnap/mock"
	"github.com/stretchr/testify/assert"
)

func TestScrollStabilizer_Stabilize(t *testing.T) {
	t.Parallel()

	t.Run("returns after two equal height readings", func(t *testing.T) {
		t.Parallel()

		heights := []float64{100, 100}
		var scrolls, polls int

		page := &mock.PageHandle{
			EvalFn: func(_ context.Context, js string) error {
				scrolls++
				return nil
			},
			EvalNumberFn: func(_ context.Context, js string) (float64, error) {
				h := heights[0]
				if len(heights) > 1 {
					heights = heights[1:]
				}
				polls++
				return h, nil
			},
		}

		s := &pagesnap.ScrollStabilizer{Timeout: time.Second, Settle: time.Millisecond}
		s.Stabilize(context.Background(), page)

		assert.Equal(t, 2, polls)
		assert.Equal(t, 2, scrolls)
	})

	t.Run("keeps polling while the height grows", func(t *testing.T) {
		t.Parallel()

		heights := []float64{100, 200, 300, 300}
		var polls int

		page := &mock.PageHandle{
			EvalNumberFn: func(_ context.Context, js string) (float64, error) {
				h := heights[0]
				if len(heights) > 1 {
					heights = heights[1:]
				}
				polls++
				return h, nil
			},
		}

		s := &pagesnap.ScrollStabilizer{Timeout: time.Second, Settle: time.Millisecond}
		s.Stabilize(context.Background(), page)

		assert.Equal(t, 4, polls)
	})

	t.Run("gives up at the timeout when the height never settles", func(t *testing.T) {
		t.Parallel()

		var height float64
		page := &mock.PageHandle{
			EvalNumberFn: func(_ context.Context, js string) (float64, error) {
				height += 100
				return height, nil
			},
		}

		s := &pagesnap.ScrollStabilizer{Timeout: 50 * time.Millisecond, Settle: time.Millisecond}

		start := time.Now()
		s.Stabilize(context.Background(), page)
		elapsed := time.Since(start)

		assert.Less(t, elapsed, time.Second)
	})

	t.Run("tolerates script errors", func(t *testing.T) {
		t.Parallel()

		page := &mock.PageHandle{
			EvalFn: func(_ context.Context, js string) error {
				return pagesnap.Errorf(pagesnap.EINTERNAL, "script failed")
			},
			EvalNumberFn: func(_ context.Context, js string) (float64, error) {
				return 0, pagesnap.Errorf(pagesnap.EINTERNAL, "script failed")
			},
		}

		s := &pagesnap.ScrollStabilizer{Timeout: 20 * time.Millisecond, Settle: time.Millisecond}

		done := make(chan struct{})
		go func() {
			s.Stabilize(context.Background(), page)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("Stabilize did not return after the timeout")
		}
	})
}
