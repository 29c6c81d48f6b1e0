package main

import (
	"log"
	"slices"
)

// Interaction edits Bézier control points from pointer events. It is Idle
// or Dragging one control point; other families are display only. It never
// changes curve state itself and returns parameter updates instead.
type Interaction struct {
	dragging int
}

func newInteraction() *Interaction {
	return &Interaction{dragging: -1}
}

// Dragging returns the index of the point being dragged.
func (ic *Interaction) Dragging() (int, bool) {
	return ic.dragging, ic.dragging >= 0
}

// Reset drops any drag in progress.
func (ic *Interaction) Reset() {
	ic.dragging = -1
}

// Handle processes one pointer event against the current state. The
// transform must describe the surface the event coordinates refer to.
func (ic *Interaction) Handle(ev PointerEvent, state CurveState, tr Transform) PointerResult {
	bez := state.Params.Bezier
	if state.Active != FamilyBezier || bez == nil {
		ic.Reset()
		return PointerResult{}
	}

	switch ev.Kind {
	case PointerRelease, PointerLeave:
		ic.Reset()
		return PointerResult{}
	}

	if !tr.Valid() {
		return PointerResult{Consumed: ev.Kind == PointerContextMenu}
	}
	at := tr.ToMath(ev.At)

	switch ev.Kind {
	case PointerPress:
		if _, ok := ic.Dragging(); ok {
			return PointerResult{}
		}
		if i := hitAt(ev, at, bez.ControlPoints, tr); i >= 0 {
			ic.dragging = i
			return PointerResult{Consumed: true}
		}

	case PointerMove:
		i, ok := ic.Dragging()
		if !ok {
			return PointerResult{}
		}
		if i >= len(bez.ControlPoints) {
			ic.Reset()
			return PointerResult{}
		}
		pts := slices.Clone(bez.ControlPoints)
		pts[i] = at
		return bezierUpdate(*bez, pts)

	case PointerDoubleClick:
		if _, ok := ic.Dragging(); ok {
			return PointerResult{}
		}
		pts := slices.Insert(slices.Clone(bez.ControlPoints), insertionIndex(at, bez.ControlPoints), at)
		return bezierUpdate(*bez, pts)

	case PointerContextMenu:
		if _, ok := ic.Dragging(); ok {
			return PointerResult{Consumed: true}
		}
		i := hitAt(ev, at, bez.ControlPoints, tr)
		if i < 0 {
			return PointerResult{Consumed: true}
		}
		if len(bez.ControlPoints) <= minControlPts {
			log.Printf("refusing to delete control point %d: curve needs %d points", i, minControlPts)
			return PointerResult{Consumed: true}
		}
		return bezierUpdate(*bez, slices.Delete(slices.Clone(bez.ControlPoints), i, i+1))
	}
	return PointerResult{}
}

// hitAt returns the first control point within hitRadius of at, or whose
// pixel lies inside the area the event covers.
func hitAt(ev PointerEvent, at Point, pts []Point, tr Transform) int {
	for i, p := range pts {
		if at.Distance(p) < hitRadius {
			return i
		}
		px := tr.ToPixel(p)
		if px.X >= ev.At.X-ev.Slop.X && px.X < ev.At.X+ev.Slop.X &&
			px.Y >= ev.At.Y-ev.Slop.Y && px.Y < ev.At.Y+ev.Slop.Y {
			return i
		}
	}
	return -1
}

func bezierUpdate(bez BezierParams, pts []Point) PointerResult {
	bez.ControlPoints = pts
	return PointerResult{
		Update:   &Parameters{Bezier: &bez},
		Consumed: true,
	}
}
