// Package policy evaluates wall-clock hour windows in a fixed civil
// time zone, independent of the host zone.
package policy

import "time"

// Clock supplies the current instant. Injectable so window decisions
// are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Window is a half-open hour interval [Start, End) evaluated in Location.
type Window struct {
	Start    int // inclusive, 0..23
	End      int // exclusive
	Location *time.Location
}

// NewWindow builds a window over the given civil zone.
func NewWindow(start, end int, loc *time.Location) Window {
	return Window{Start: start, End: end, Location: loc}
}

// Contains reports whether t falls inside the window, judged by the
// hour of t converted to the window's zone.
func (w Window) Contains(t time.Time) bool {
	h := t.In(w.Location).Hour()
	return h >= w.Start && h < w.End
}

// Open reports whether the clock's current instant is inside the window.
func (w Window) Open(clock Clock) bool {
	return w.Contains(clock.Now())
}
