// Package throttle enforces a config.Speed on byte streams.
package throttle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/iobench/iobench/internal/config"
)

const (
	histMinMicros  = 1
	histMaxMicros  = int64(time.Hour / time.Microsecond)
	histSigFigures = 3
)

// Limiter implements the leaky bucket algorithm for byte rates.
//
// The bucket keeps a virtual "drip" time: the moment every byte reserved so
// far has drained at the configured rate. Reserve(n) hands out the current
// drip time and pushes it forward by n/rate. A caller that is behind schedule
// gets a time in the past and proceeds immediately. Idle time does not turn
// into credit beyond the configured burst.
//
// # Thread Safety
//
// Limiter is safe for concurrent use from multiple goroutines.
//
// # Example
//
//	lim := throttle.NewLimiter(config.MustParseSpeed("8MBps"))
//	for chunk := range chunks {
//	    if err := lim.WaitN(ctx, len(chunk)); err != nil {
//	        return err
//	    }
//	    send(chunk)
//	}
type Limiter struct {
	speed     config.Speed
	rate      float64 // bytes per second, 0 means nothing may flow
	unlimited bool
	burst     time.Duration

	mu       sync.Mutex
	drip     time.Time
	waitHist *hdrhistogram.Histogram
	now      func() time.Time

	totalBytes   atomic.Int64
	reservations atomic.Int64
	totalWait    atomic.Int64 // nanoseconds
}

// NewLimiter creates a limiter with no burst allowance.
func NewLimiter(speed config.Speed) *Limiter {
	return NewLimiterWithBurst(speed, 0)
}

// NewLimiterWithBurst creates a limiter that lets up to burstBytes of unused
// capacity accumulate while the stream is idle.
func NewLimiterWithBurst(speed config.Speed, burstBytes int) *Limiter {
	l := &Limiter{
		speed:    speed,
		waitHist: hdrhistogram.New(histMinMicros, histMaxMicros, histSigFigures),
		now:      time.Now,
	}

	bps, capped := speed.BytesPerSecond()
	switch {
	case !capped:
		l.unlimited = true
	case bps > 0:
		l.rate = float64(bps)
		if burstBytes > 0 {
			l.burst = l.bytesToDuration(burstBytes)
		}
	}
	l.drip = l.now()
	return l
}

// Speed returns the cap the limiter enforces.
func (l *Limiter) Speed() config.Speed {
	return l.speed
}

// Reserve claims n bytes and returns when they may start to flow.
//
// ok is false when the limiter is Bps(0): the bytes may never flow and
// nothing is reserved.
func (l *Limiter) Reserve(n int) (start time.Time, ok bool) {
	if n < 0 {
		n = 0
	}

	if l.unlimited {
		l.totalBytes.Add(int64(n))
		l.reservations.Add(1)
		return l.now(), true
	}
	if l.rate == 0 {
		return time.Time{}, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	// Idle time only counts up to the burst allowance.
	if floor := now.Add(-l.burst); l.drip.Before(floor) {
		l.drip = floor
	}

	start = l.drip
	l.drip = l.drip.Add(l.bytesToDuration(n))

	wait := start.Sub(now)
	if wait < 0 {
		wait = 0
	}

	l.totalBytes.Add(int64(n))
	l.reservations.Add(1)
	l.totalWait.Add(int64(wait))
	micros := int64(wait / time.Microsecond)
	if hi := l.waitHist.HighestTrackableValue(); micros > hi {
		micros = hi
	}
	_ = l.waitHist.RecordValue(micros)

	return start, true
}

// WaitN blocks until n bytes may flow.
//
// Returns:
//   - nil if the wait completed successfully
//   - ctx.Err() if the context was cancelled first, which always happens
//     for a Bps(0) limiter
func (l *Limiter) WaitN(ctx context.Context, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start, ok := l.Reserve(n)
	if !ok {
		<-ctx.Done()
		return ctx.Err()
	}

	wait := start.Sub(l.now())
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Stats is a snapshot of limiter activity.
type Stats struct {
	Bytes        int64
	Reservations int64
	TotalWait    time.Duration

	WaitP50 time.Duration
	WaitP99 time.Duration
	WaitMax time.Duration
}

// Stats returns counters and wait-time percentiles. Percentiles are zero
// for a PassThrough limiter, which never waits, and saturate at one hour;
// TotalWait is exact.
func (l *Limiter) Stats() Stats {
	s := Stats{
		Bytes:        l.totalBytes.Load(),
		Reservations: l.reservations.Load(),
		TotalWait:    time.Duration(l.totalWait.Load()),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// NOTE: hdrhistogram is not thread-safe, reads share the lock with RecordValue.
	if l.waitHist.TotalCount() > 0 {
		s.WaitP50 = time.Duration(l.waitHist.ValueAtQuantile(50)) * time.Microsecond
		s.WaitP99 = time.Duration(l.waitHist.ValueAtQuantile(99)) * time.Microsecond
		s.WaitMax = time.Duration(l.waitHist.Max()) * time.Microsecond
	}
	return s
}

func (l *Limiter) bytesToDuration(n int) time.Duration {
	return time.Duration(float64(n) / l.rate * float64(time.Second))
}
