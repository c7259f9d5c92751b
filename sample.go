package gesture

import (
	"fmt"
	"time"
)

// DefaultBufferSize is the number of samples a Pointer keeps for velocity.
const DefaultBufferSize = 2

// Sample is a pointer position recorded at a monotonic time offset.
type Sample struct {
	Pos  Vec2
	Time time.Duration
}

// SampleBuffer is a fixed-capacity FIFO of samples with strictly increasing
// timestamps. The oldest sample is evicted when a push would exceed capacity.
type SampleBuffer struct {
	data []Sample
	pos  int // index of the next write
	n    int
}

// NewSampleBuffer creates a buffer holding at most capacity samples.
// Capacities below 2 are raised to 2 so a velocity can always be formed.
func NewSampleBuffer(capacity int) *SampleBuffer {
	if capacity < 2 {
		capacity = 2
	}
	return &SampleBuffer{data: make([]Sample, capacity)}
}

// Cap returns the buffer capacity.
func (b *SampleBuffer) Cap() int { return len(b.data) }

// Len returns the number of buffered samples.
func (b *SampleBuffer) Len() int { return b.n }

// Reset drops all samples.
func (b *SampleBuffer) Reset() {
	b.pos = 0
	b.n = 0
}

// Push appends s. A sample with the same timestamp as the newest replaces it;
// an older one is rejected with ErrSampleOrder.
func (b *SampleBuffer) Push(s Sample) error {
	if b.n > 0 {
		newest := b.Newest()
		if s.Time == newest.Time {
			b.data[b.index(b.n-1)] = s
			return nil
		}
		if s.Time < newest.Time {
			return fmt.Errorf("gesture: push sample at %v after %v: %w", s.Time, newest.Time, ErrSampleOrder)
		}
	}
	b.data[b.pos] = s
	b.pos = (b.pos + 1) % len(b.data)
	if b.n < len(b.data) {
		b.n++
	}
	return nil
}

// index maps an insertion-order position (0 = oldest) to a slot.
func (b *SampleBuffer) index(i int) int {
	start := b.pos - b.n
	if start < 0 {
		start += len(b.data)
	}
	return (start + i) % len(b.data)
}

// At returns the i-th sample in insertion order, 0 being the oldest.
func (b *SampleBuffer) At(i int) Sample {
	if i < 0 || i >= b.n {
		return Sample{}
	}
	return b.data[b.index(i)]
}

// Newest returns the most recent sample, or the zero Sample when empty.
func (b *SampleBuffer) Newest() Sample {
	return b.At(b.n - 1)
}

// Oldest returns the oldest buffered sample, or the zero Sample when empty.
func (b *SampleBuffer) Oldest() Sample {
	return b.At(0)
}

// Samples returns the buffered samples in insertion order.
func (b *SampleBuffer) Samples() []Sample {
	out := make([]Sample, b.n)
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Velocity returns the instantaneous velocity between the two most recent
// samples, or zero when fewer than two samples are held.
func (b *SampleBuffer) Velocity() Vec2 {
	if b.n < 2 {
		return Vec2{}
	}
	return VelocityBetween(b.At(b.n-1), b.At(b.n-2))
}

// WindowVelocity returns the average velocity across the whole buffer.
func (b *SampleBuffer) WindowVelocity() Vec2 {
	if b.n < 2 {
		return Vec2{}
	}
	return VelocityBetween(b.Newest(), b.Oldest())
}

// VelocityBetween returns (newest.Pos - oldest.Pos) / (newest.Time - oldest.Time)
// per axis in units per millisecond. A non-positive time difference yields
// the zero vector.
func VelocityBetween(newest, oldest Sample) Vec2 {
	dt := float64(newest.Time-oldest.Time) / float64(time.Millisecond)
	if dt <= 0 {
		return Vec2{}
	}
	d := newest.Pos.Sub(oldest.Pos)
	return Vec2{d.X / dt, d.Y / dt}
}
