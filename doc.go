// Package ycanvas is a small retained-mode drawing engine for a 2D canvas.
//
// Callers create shapes, hand them to an [Engine] for rendering and attach
// pointer-event callbacks to individual shapes. The engine does two things
// that make this more than a loop over draw calls:
//
//   - it coalesces any number of [Engine.Render], [Engine.Clear] and
//     [Engine.ModifyLayer] calls made within one frame into a single
//     repaint, painted in declared z-order;
//   - it turns each raw pointer event into at most one callback, on the
//     topmost shape whose region contains the pointer.
//
// # Quick start
//
//	canvas := ycanvas.NewCanvas(640, 480)
//	engine, err := ycanvas.New(canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	box := ycanvas.NewRect(ycanvas.RectOptions{X: 20, Y: 20, W: 100, H: 60, ZIndex: 1})
//	engine.Render(box, ycanvas.RenderOptions{Color: "#e05050"})
//	engine.AddEventListener(box, ycanvas.EventClick, func(ev ycanvas.PointerEvent) {
//		fmt.Println("clicked at", ev.ClientX, ev.ClientY)
//	})
//
//	// Once per frame, after delivering input:
//	if err := engine.Tick(); err != nil {
//		log.Print(err)
//	}
//
// The host package runs an engine inside an [Ebitengine] window and feeds
// it mouse input.
//
// # Scheduling
//
// Mutations only mark the engine dirty. The repaint runs on the next
// [Engine.Tick] (or [Engine.FlushPendingRepaint], or through a hook installed
// with [WithScheduler]). A repaint clears the surface, stable-sorts the draw
// queue by (ZIndex, insertion order) and paints each entry, stamping it with
// a paint-order value that only ever grows. Errors from paint routines are
// returned by the flush, not by the call that queued the shape.
//
// # Event dispatch
//
// Each event kind has its own registration table. An event is hit-tested
// against every registered shape (fill or stroke predicate, following the
// shape's [PaintMode]) and only the match with the highest paint-order
// stamp is invoked. Dispatch uses the stamps of the last completed repaint.
//
// [Ebitengine]: https://ebitengine.org
package ycanvas
