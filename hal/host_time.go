//go:build !tinygo

package hal

import "time"

// hostTickDur is the length of one host tick.
const hostTickDur = time.Millisecond

type hostTime struct {
	ch    chan uint64
	seq   uint64
	clock func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(clock func() time.Time) *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), clock: clock}
}

func (t *hostTime) Ticks() <-chan uint64        { return t.ch }
func (t *hostTime) TickDuration() time.Duration { return hostTickDur }

// step publishes one tick per elapsed millisecond since the previous call.
// The first call publishes a single tick.
func (t *hostTime) step() {
	now := t.clock()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.publish(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / hostTickDur)
	if ticks == 0 {
		return
	}
	t.acc %= hostTickDur
	t.publish(ticks)
}

// publish advances the sequence by n. Ticks that do not fit in the channel
// are dropped; the sequence number still advances so readers see the gap.
func (t *hostTime) publish(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
