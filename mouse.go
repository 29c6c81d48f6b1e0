package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pointerAdapter turns terminal mouse reports into pointer events. Terminals
// report no double clicks, so two left presses on the same cell within
// doubleClickMillis become one PointerDoubleClick.
type pointerAdapter struct {
	now       func() time.Time
	lastPress time.Time
	lastX     int
	lastY     int
	armed     bool
}

func newPointerAdapter() *pointerAdapter {
	return &pointerAdapter{now: time.Now}
}

// cellCenter returns the pixel at the centre of a terminal cell.
func cellCenter(x, y int) Pixel {
	return Pixel{
		X: (float64(x) + 0.5) * cellWidth,
		Y: (float64(y) + 0.5) * cellHeight,
	}
}

// translate maps msg onto a canvas of cols x rows cells anchored at the top
// left of the terminal. ok is false for reports that mean nothing to the
// canvas.
func (a *pointerAdapter) translate(msg tea.MouseMsg, cols, rows int, dragging bool) (PointerEvent, bool) {
	inside := msg.X >= 0 && msg.X < cols && msg.Y >= 0 && msg.Y < rows
	ev := PointerEvent{
		At:   cellCenter(msg.X, msg.Y),
		Slop: Pixel{X: cellWidth / 2, Y: cellHeight / 2},
	}

	switch msg.Type {
	case tea.MouseLeft:
		if dragging {
			// some terminals report drags as repeated presses
			ev.Kind = PointerMove
			if !inside {
				ev.Kind = PointerLeave
			}
			return ev, true
		}
		if !inside {
			return ev, false
		}
		now := a.now()
		if a.armed && msg.X == a.lastX && msg.Y == a.lastY &&
			now.Sub(a.lastPress) <= doubleClickMillis*time.Millisecond {
			a.armed = false
			ev.Kind = PointerDoubleClick
			return ev, true
		}
		a.armed = true
		a.lastX, a.lastY, a.lastPress = msg.X, msg.Y, now
		ev.Kind = PointerPress
		return ev, true

	case tea.MouseMotion:
		if !dragging {
			return ev, false
		}
		ev.Kind = PointerMove
		if !inside {
			ev.Kind = PointerLeave
		}
		return ev, true

	case tea.MouseRelease:
		ev.Kind = PointerRelease
		return ev, true

	case tea.MouseRight:
		if !inside {
			return ev, false
		}
		ev.Kind = PointerContextMenu
		return ev, true
	}
	return ev, false
}
