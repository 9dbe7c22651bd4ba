// Package anim drives the enter transition played when a project, column
// or card first appears on the board. It only affects rendering.
package anim

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Frames is how many ticks a fade-in takes
	Frames = 8

	// FrameInterval is the delay between ticks
	FrameInterval = 40 * time.Millisecond
)

// FrameMsg advances every running fade by one frame.
type FrameMsg struct{}

// Tick schedules the next frame.
func Tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// Tracker remembers which ids have been seen and how far along each
// running fade is.
type Tracker struct {
	enabled bool
	seen    map[string]struct{}
	frames  map[string]int
	ticking bool
}

// NewTracker creates a tracker. A disabled tracker reports every id as
// fully visible and never schedules ticks.
func NewTracker(enabled bool) *Tracker {
	return &Tracker{
		enabled: enabled,
		seen:    make(map[string]struct{}),
		frames:  make(map[string]int),
	}
}

// Enabled reports whether fades play.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// Observe records the ids present in the latest snapshot. Ids seen for
// the first time start fading in. It returns a tick command when a fade
// was started and no tick is already pending.
func (t *Tracker) Observe(ids []string) tea.Cmd {
	started := false
	for _, id := range ids {
		if _, ok := t.seen[id]; ok {
			continue
		}
		t.seen[id] = struct{}{}
		if t.enabled {
			t.frames[id] = 0
			started = true
		}
	}

	if !started || t.ticking {
		return nil
	}
	t.ticking = true
	return Tick()
}

// Advance moves every running fade one frame forward and returns the
// next tick while any fade is still running.
func (t *Tracker) Advance() tea.Cmd {
	for id, frame := range t.frames {
		if frame+1 >= Frames {
			delete(t.frames, id)
			continue
		}
		t.frames[id] = frame + 1
	}

	if len(t.frames) == 0 {
		t.ticking = false
		return nil
	}
	return Tick()
}

// Running reports how many fades are in progress.
func (t *Tracker) Running() int {
	return len(t.frames)
}

// Opacity returns how visible id is, from 0 (just mounted) to 1.
func (t *Tracker) Opacity(id string) float64 {
	frame, ok := t.frames[id]
	if !ok {
		return 1
	}
	return float64(frame+1) / float64(Frames)
}

// Fade blends target toward background by the remaining transparency.
// Colors that are not hex strings are returned unchanged.
func Fade(target, background string, opacity float64) string {
	if opacity >= 1 {
		return target
	}

	to, err := colorful.Hex(target)
	if err != nil {
		return target
	}
	from, err := colorful.Hex(background)
	if err != nil {
		return target
	}

	return from.BlendLab(to, max(opacity, 0)).Clamped().Hex()
}
