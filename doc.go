// Package gesture tracks single-pointer drag and swipe gestures.
//
// A [Pointer] is bound to an [Element] and fed native input events. It turns
// each pointer-down, move and up (or cancel) into START, MOVE and END
// [Event] values carrying the start and current position, elapsed time,
// delta, distance, instantaneous and smoothed velocity (units per
// millisecond), and the classified direction, both unconstrained and
// restricted to the pointer's [Axis].
//
// # Quick start
//
// Bind a pointer directly and feed it events yourself:
//
//	p, err := gesture.NewPointer(gesture.HitRect{Width: 320, Height: 480},
//		gesture.DefaultOptions().WithAxis(gesture.AxisX))
//	if err != nil {
//		log.Fatal(err)
//	}
//	p.OnEnd(func(ev gesture.Event) {
//		if p.HasVelocity(ev.CurrentVelocity) {
//			fmt.Println("swipe", ev.AxisDirection)
//		}
//	})
//	p.Handle(gesture.At(gesture.InputDown, 0, 0, 0))
//
// Or let a [Surface] route input to the topmost bound element, and poll
// Ebitengine from your game's Update:
//
//	surface := gesture.NewSurface()
//	p, _ := surface.Add(card, gesture.DefaultOptions().WithAxis(gesture.AxisX))
//	src := gesture.NewEbitenSource(surface)
//
//	func (g *Game) Update() error { return g.src.Update() }
//
// # Velocity
//
// [Event.Velocity] is measured between the two most recent samples.
// [Event.CurrentVelocity] is an exponentially weighted average of it, so a
// single jittery frame does not decide a swipe. Releasing the pointer after
// holding it still for longer than [Options.RestTimeout] zeroes both.
//
// # Helpers
//
// [Draggable], [Carousel], [Camera] and [OnSwipe] build common interactions
// on top of a Pointer; animations run through [Tween] (via [gween]).
// [Injector] and [Script] synthesize input for tests and replays, the term
// subpackage reads terminal mice through tcell, and gesture/ecs publishes
// events into a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package gesture
