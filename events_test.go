package gesture

import (
	"reflect"
	"testing"
)

func TestEmitter_RegistrationOrder(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	var order []int
	for i := 0; i < 4; i++ {
		p.OnStart(func(Event) { order = append(order, i) })
	}
	send(t, p, InputDown, 0, 0, 0)
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestEmitter_Remove(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	var a, b int
	ha := p.OnMove(func(Event) { a++ })
	p.OnMove(func(Event) { b++ })

	send(t, p, InputDown, 0, 0, 0)
	send(t, p, InputMove, 5, 0, 10)
	ha.Remove()
	ha.Remove() // second remove is a no-op
	send(t, p, InputMove, 10, 0, 20)

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 and 2", a, b)
	}
}

func TestEmitter_Off(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	other := newTestPointer(t, AxisBoth)
	n := 0
	h := p.OnStart(func(Event) { n++ })

	other.Off(h) // handle belongs to p; ignored
	send(t, p, InputDown, 0, 0, 0)
	send(t, p, InputUp, 0, 0, 1)
	p.Off(h)
	send(t, p, InputDown, 0, 0, 2)

	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestEmitter_RemoveDuringEmit(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	var calls []string
	var hb CallbackHandle
	p.OnStart(func(Event) {
		calls = append(calls, "a")
		hb.Remove()
	})
	hb = p.OnStart(func(Event) { calls = append(calls, "b") })

	send(t, p, InputDown, 0, 0, 0)
	send(t, p, InputUp, 0, 0, 1)
	send(t, p, InputDown, 0, 0, 2)

	// b still runs during the emit that removed it, then never again.
	if want := []string{"a", "b", "a"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestEmitter_AddDuringEmit(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	added := 0
	p.OnStart(func(Event) {
		p.OnStart(func(Event) { added++ })
	})
	send(t, p, InputDown, 0, 0, 0)
	if added != 0 {
		t.Errorf("handler added during emit ran in the same emit")
	}
	send(t, p, InputUp, 0, 0, 1)
	send(t, p, InputDown, 0, 0, 2)
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
}

func TestEmitter_NilHandlerIgnored(t *testing.T) {
	p := newTestPointer(t, AxisBoth)
	h := p.OnStart(nil)
	h.Remove()
	send(t, p, InputDown, 0, 0, 0)
}

func TestEmitter_PayloadFields(t *testing.T) {
	el := HitRect{Width: 500, Height: 500}
	child := HitCircle{CenterX: 5, CenterY: 5, Radius: 5}
	p, err := NewPointer(el, DefaultOptions().WithAxis(AxisY))
	if err != nil {
		t.Fatal(err)
	}
	events := record(p)
	if err := p.Handle(InputEvent{Kind: InputDown, PointerID: 3, Target: child, Client: &Vec2{5, 5}}); err != nil {
		t.Fatal(err)
	}
	if err := p.Handle(InputEvent{Kind: InputMove, PointerID: 3, Time: ms(50), Client: &Vec2{8, 105}}); err != nil {
		t.Fatal(err)
	}
	ev := (*events)[1]
	if ev.Type != EventMove || ev.PointerID != 3 {
		t.Fatalf("event = %v from pointer %d", ev.Type, ev.PointerID)
	}
	if ev.Target != Element(child) || ev.CurrentTarget != Element(el) {
		t.Errorf("targets: %v / %v", ev.Target, ev.CurrentTarget)
	}
	if !ev.Start.Equals(Vec2{5, 5}) || !ev.End.Equals(Vec2{8, 105}) || !ev.Delta.Equals(Vec2{3, 100}) {
		t.Errorf("positions: start=%v end=%v delta=%v", ev.Start, ev.End, ev.Delta)
	}
	if ev.DeltaTime != ms(50) {
		t.Errorf("deltaTime = %v", ev.DeltaTime)
	}
	if ev.Velocity.Y != 2 || ev.CurrentVelocity.Y != 2 {
		t.Errorf("velocity = %v / %v", ev.Velocity, ev.CurrentVelocity)
	}
	if ev.Direction != DirectionDown || ev.AxisDirection != DirectionDown || !ev.IsDirectionOnAxis || !ev.DidMoveOnAxis {
		t.Errorf("classification: %+v", ev)
	}
}
