package async

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/danlock/collections/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMapKeepsInputOrder(t *testing.T) {
	in := []int{5, 1, 4, 2, 3}
	out, err := Map(t.Context(), slices.Values(in), func(_ context.Context, i int) (string, error) {
		// later elements finish first
		time.Sleep(time.Duration(i) * time.Millisecond)
		return strconv.Itoa(i * 10), nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"50", "10", "40", "20", "30"}, out)
}

func TestMapEmpty(t *testing.T) {
	out, err := Map(t.Context(), slices.Values([]int{}), func(context.Context, int) (int, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	require.NoError(t, err)
	require.Empty(t, out)
}

var errBoom = fmt.Errorf("boom")

func TestMapFailsOnFirstError(t *testing.T) {
	ctx := errors.AddMetaToCtx(t.Context(), slog.String("job", "resize"))

	var cancelled atomic.Int32
	out, err := Map(ctx, slices.Values([]int{0, 1, 2, 3}), func(ctx context.Context, i int) (int, error) {
		// the failure is last so every sibling has started before ctx is cancelled
		if i == 3 {
			return 0, errBoom
		}
		<-ctx.Done()
		cancelled.Add(1)
		return i, nil
	})
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, out)
	require.Equal(t, int32(3), cancelled.Load(), "siblings should see ctx cancelled")

	idx, ok := errors.MetaValue(err, IndexKey)
	require.True(t, ok)
	require.Equal(t, int64(3), idx.Int64())

	job, ok := errors.MetaValue(err, "job")
	require.True(t, ok)
	require.Equal(t, "resize", job.String())
}

func TestMapLimit(t *testing.T) {
	var running, peak atomic.Int32
	in := make([]int, 20)
	for i := range in {
		in[i] = i
	}

	out, err := MapLimit(t.Context(), slices.Values(in), 3, func(_ context.Context, i int) (int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		running.Add(-1)
		return i * i, nil
	})
	require.NoError(t, err)
	require.LessOrEqual(t, peak.Load(), int32(3))
	for i, v := range out {
		require.Equal(t, i*i, v)
	}

	_, err = MapLimit(t.Context(), slices.Values(in), 0, func(_ context.Context, i int) (int, error) { return i, nil })
	require.Error(t, err)
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var calls atomic.Int32
	_, err := Map(ctx, slices.Values([]int{1, 2, 3}), func(context.Context, int) (int, error) {
		calls.Add(1)
		return 0, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int32(0), calls.Load())
}
