package gesture

import (
	"errors"
	"testing"

	"github.com/tanema/gween/ease"
)

func newTestCarousel(t *testing.T, loop bool) (*Pointer, *Carousel, *[][2]int) {
	t.Helper()
	p := newTestPointer(t, AxisX)
	c, err := NewCarousel(p, CarouselConfig{Slides: 3, SlideWidth: 100, Loop: loop, Duration: 0.2, Ease: ease.Linear})
	if err != nil {
		t.Fatalf("NewCarousel: %v", err)
	}
	var changes [][2]int
	c.OnChange(func(from, to int) { changes = append(changes, [2]int{from, to}) })
	return p, c, &changes
}

func drag(t *testing.T, p *Pointer, fromX, toX, startMs, durMs float64) {
	t.Helper()
	send(t, p, InputDown, fromX, 0, startMs)
	send(t, p, InputMove, toX, 0, startMs+durMs)
	send(t, p, InputUp, toX, 0, startMs+durMs)
}

func TestCarouselSwipeAdvances(t *testing.T) {
	p, c, changes := newTestCarousel(t, false)

	send(t, p, InputDown, 200, 0, 0)
	send(t, p, InputMove, 160, 0, 40)
	if !c.Dragging() || c.Offset() != -40 {
		t.Fatalf("dragging=%v offset=%v", c.Dragging(), c.Offset())
	}
	send(t, p, InputUp, 160, 0, 40)

	if c.Index() != 1 {
		t.Fatalf("index = %d, want 1", c.Index())
	}
	if !c.Settling() {
		t.Error("snap animation should be running")
	}
	c.Update(1)
	if c.Offset() != -100 || c.Settling() {
		t.Errorf("offset = %v settling=%v", c.Offset(), c.Settling())
	}
	if len(*changes) != 1 || (*changes)[0] != [2]int{0, 1} {
		t.Errorf("changes = %v", *changes)
	}
}

func TestCarouselSlowDragSnaps(t *testing.T) {
	tests := []struct {
		name string
		toX  float64
		want int
	}{
		{"past half", 440, 1},
		{"short of half", 470, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, c, _ := newTestCarousel(t, false)
			drag(t, p, 500, tt.toX, 0, 1000)
			if c.Index() != tt.want {
				t.Errorf("index = %d, want %d", c.Index(), tt.want)
			}
			c.Update(1)
			if c.Offset() != -100*float64(tt.want) {
				t.Errorf("offset = %v", c.Offset())
			}
		})
	}
}

func TestCarouselClampsWithoutLoop(t *testing.T) {
	p, c, changes := newTestCarousel(t, false)

	send(t, p, InputDown, 0, 0, 0)
	send(t, p, InputMove, 80, 0, 50)
	if c.Offset() != 0 {
		t.Errorf("offset past the first slide = %v", c.Offset())
	}
	send(t, p, InputUp, 80, 0, 50)
	if c.Index() != 0 || len(*changes) != 0 {
		t.Errorf("index = %d changes = %v", c.Index(), *changes)
	}

	c.GoTo(10)
	if c.Index() != 2 {
		t.Errorf("GoTo(10) = %d, want 2", c.Index())
	}
}

func TestCarouselLoop(t *testing.T) {
	_, c, changes := newTestCarousel(t, true)
	c.Prev()
	if c.Index() != 2 {
		t.Fatalf("Prev from 0 = %d, want 2", c.Index())
	}
	c.Next()
	if c.Index() != 0 {
		t.Fatalf("Next from 2 = %d, want 0", c.Index())
	}
	if len(*changes) != 2 || (*changes)[1] != [2]int{2, 0} {
		t.Errorf("changes = %v", *changes)
	}
}

func TestCarouselCancelStays(t *testing.T) {
	p, c, changes := newTestCarousel(t, false)
	send(t, p, InputDown, 300, 0, 0)
	send(t, p, InputMove, 100, 0, 100)
	if err := p.Handle(InputEvent{Kind: InputCancel, Time: ms(100)}); err != nil {
		t.Fatal(err)
	}
	if c.Index() != 0 || len(*changes) != 0 {
		t.Errorf("index = %d after cancel", c.Index())
	}
	c.Update(1)
	if c.Offset() != 0 {
		t.Errorf("offset = %v after cancel", c.Offset())
	}
}

func TestCarouselDetach(t *testing.T) {
	p, c, _ := newTestCarousel(t, false)
	c.Detach()
	drag(t, p, 300, 0, 0, 100)
	if c.Index() != 0 || c.Offset() != 0 {
		t.Errorf("detached carousel moved: index=%d offset=%v", c.Index(), c.Offset())
	}
}

func TestNewCarouselInvalid(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		cfg  CarouselConfig
	}{
		{"vertical pointer", AxisY, CarouselConfig{Slides: 3, SlideWidth: 100}},
		{"no slides", AxisX, CarouselConfig{SlideWidth: 100}},
		{"zero width", AxisX, CarouselConfig{Slides: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPointer(t, tt.axis)
			if _, err := NewCarousel(p, tt.cfg); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("err = %v, want ErrInvalidOptions", err)
			}
		})
	}
}
