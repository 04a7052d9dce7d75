package wm

import (
	"math/rand"
	"testing"
	"time"

	"distortion-os/audio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	played []audio.Effect
}

func (r *recordingPlayer) Play(e audio.Effect) { r.played = append(r.played, e) }

var testSpecs = []Spec{
	{ID: "win-a", Title: "a", DefaultSize: Size{Width: 40, Height: 10}},
	{ID: "win-b", Title: "b", DefaultSize: Size{Width: 50, Height: 12}},
	{ID: "win-c", Title: "c", DefaultSize: Size{Width: 30, Height: 8}},
}

func newTestManager(opts ...Option) *Manager {
	return New(testSpecs, append([]Option{WithViewport(120, 40)}, opts...)...)
}

func mustWindow(t *testing.T, m *Manager, id string) Window {
	t.Helper()
	w, ok := m.Window(id)
	require.True(t, ok, "window %s", id)
	return w
}

func activeCount(m *Manager) int {
	n := 0
	for _, w := range m.Windows() {
		if w.Active {
			n++
		}
	}
	return n
}

func TestOpenRaisesAndActivates(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Open("win-b")

	a, b := mustWindow(t, m, "win-a"), mustWindow(t, m, "win-b")
	assert.Greater(t, b.Z, a.Z)
	assert.True(t, b.Active)
	assert.False(t, a.Active)
	assert.Equal(t, StateOpen, a.State())
	assert.Equal(t, PhaseOpen, a.Phase, "transitions complete at once without a scheduler")

	id, ok := m.Active()
	assert.True(t, ok)
	assert.Equal(t, "win-b", id)
}

func TestClickingHeaderRaisesOlderWindow(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Open("win-b")

	b, _ := m.Bounds("win-a")
	p := Point{X: b.X + 1, Y: b.Y}
	require.True(t, m.InHeader("win-a", p))
	m.BeginDrag("win-a", p)
	m.EndDrag()

	a, bw := mustWindow(t, m, "win-a"), mustWindow(t, m, "win-b")
	assert.Greater(t, a.Z, bw.Z)
	assert.True(t, a.Active)
	assert.False(t, bw.Active)
}

func TestUnknownIDsAreIgnored(t *testing.T) {
	player := &recordingPlayer{}
	m := newTestManager(WithPlayer(player))
	m.Open("win-a")
	before := m.Windows()
	played := len(player.played)

	assert.NotPanics(t, func() {
		m.Close("win-x")
		m.Open("win-x")
		m.Minimize("win-x")
		m.ToggleMaximize("win-x")
		m.BringToFront("win-x")
		assert.False(t, m.BeginDrag("win-x", Point{}))
		assert.False(t, m.Advance("win-x", 1))
	})

	assert.Equal(t, before, m.Windows())
	assert.Len(t, player.played, played)
	_, ok := m.Bounds("win-x")
	assert.False(t, ok)
	assert.Equal(t, ControlNone, m.ControlAt("win-x", Point{}))
	assert.False(t, m.InHeader("win-x", Point{}))

	m.BringToFront("win-b")
	assert.Equal(t, mustWindow(t, m, "win-a").Z+1, mustWindow(t, m, "win-b").Z, "the z counter was not consumed")
}

func TestAtMostOneActiveWindow(t *testing.T) {
	m := newTestManager(WithScheduler(&Queue{}))
	ids := []string{"win-a", "win-b", "win-c", "win-x"}
	ops := []func(string){m.Open, m.Close, m.Minimize, m.ToggleMaximize, m.BringToFront}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		ops[r.Intn(len(ops))](ids[r.Intn(len(ids))])
		require.LessOrEqual(t, activeCount(m), 1, "step %d", i)
	}
}

func TestBringToFrontStrictlyIncreases(t *testing.T) {
	m := newTestManager()
	seen := map[int]bool{}
	last := 0
	for i := 0; i < 20; i++ {
		id := testSpecs[i%len(testSpecs)].ID
		m.BringToFront(id)
		z := mustWindow(t, m, id).Z
		assert.Greater(t, z, last)
		assert.False(t, seen[z], "z %d reused", z)
		seen[z] = true
		last = z
	}
	assert.Len(t, seen, 20)
}

func TestMaximizeRoundTripRestoresSnapshot(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")

	b, _ := m.Bounds("win-a")
	m.BeginDrag("win-a", Point{X: b.X + 1, Y: b.Y})
	m.DragTo(Point{X: 31, Y: 10})
	m.EndDrag()
	before := mustWindow(t, m, "win-a")
	require.Equal(t, &Point{X: 30, Y: 10}, before.Position)

	m.ToggleMaximize("win-a")
	maxed := mustWindow(t, m, "win-a")
	assert.Equal(t, StateMaximized, maxed.State())
	got, _ := m.Bounds("win-a")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 120, Height: 38}, got)

	m.ToggleMaximize("win-a")
	after := mustWindow(t, m, "win-a")
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Size, after.Size)
	assert.False(t, after.Maximized)
	assert.Greater(t, after.Z, maxed.Z, "toggling raises the window")
}

func TestMaximizeRoundTripKeepsCentering(t *testing.T) {
	m := newTestManager()
	m.Open("win-b")
	centered, _ := m.Bounds("win-b")

	m.ToggleMaximize("win-b")
	m.ToggleMaximize("win-b")

	w := mustWindow(t, m, "win-b")
	assert.Nil(t, w.Position)
	assert.Nil(t, w.Size)
	got, _ := m.Bounds("win-b")
	assert.Equal(t, centered, got)
}

func TestUnmaximizeWithoutSnapshotUsesFallback(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.windows["win-a"].Maximized = true

	m.ToggleMaximize("win-a")

	got, _ := m.Bounds("win-a")
	assert.Equal(t, Rect{X: 12, Y: 4, Width: 60, Height: 20}, got)
}

func TestViewportChangeRepinsMaximized(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.ToggleMaximize("win-a")

	m.SetViewport(100, 30)

	got, _ := m.Bounds("win-a")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 100, Height: 28}, got)
}

func TestMobileLayout(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	b, _ := m.Bounds("win-a")
	m.BeginDrag("win-a", Point{X: b.X + 1, Y: b.Y})
	m.DragTo(Point{X: 10, Y: 5})
	m.EndDrag()
	m.Close("win-a")

	m.SetMobile(true)
	assert.True(t, m.Mobile())

	m.Open("win-a")
	w := mustWindow(t, m, "win-a")
	assert.Nil(t, w.Position, "mobile clears position overrides")
	assert.Nil(t, w.Size)

	m.ToggleMaximize("win-a")
	assert.False(t, mustWindow(t, m, "win-a").Maximized, "maximize is disabled on mobile")

	got, _ := m.Bounds("win-a")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 120, Height: 38}, got)

	m.SetMobile(false)
	m.SetViewport(50, 30)
	assert.True(t, m.Mobile(), "narrow viewports are mobile")
}

func TestMobileWidthFollowsSetting(t *testing.T) {
	m := newTestManager()
	assert.False(t, m.Mobile())

	m.SetMobileWidth(150)
	assert.True(t, m.Mobile(), "120 columns is below the new breakpoint")

	m.SetMobileWidth(0)
	assert.False(t, m.Mobile(), "zero restores the default breakpoint")
}

func TestWindowQueriesOnCopies(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Minimize("win-a")

	for _, w := range m.Windows() {
		if w.ID != "win-a" {
			assert.False(t, w.Displayed())
			continue
		}
		assert.Equal(t, StateMinimized, w.State())
		assert.True(t, w.Displayed())
		assert.False(t, w.Visible())
	}
}

func TestSmartPositioning(t *testing.T) {
	tests := []struct {
		name     string
		pos      Point
		viewport [2]int
		keep     bool
	}{
		{name: "on screen", pos: Point{X: 10, Y: 5}, viewport: [2]int{120, 40}, keep: true},
		{name: "slightly off the left edge", pos: Point{X: -20, Y: 5}, viewport: [2]int{120, 40}, keep: true},
		{name: "too far left", pos: Point{X: -21, Y: 5}, viewport: [2]int{120, 40}},
		{name: "above the top", pos: Point{X: 10, Y: -1}, viewport: [2]int{120, 40}},
		{name: "below the bottom", pos: Point{X: 10, Y: 39}, viewport: [2]int{80, 30}},
		{name: "past the right edge after shrink", pos: Point{X: 100, Y: 5}, viewport: [2]int{80, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			pos := tt.pos
			m.windows["win-a"].Position = &pos
			m.SetViewport(tt.viewport[0], tt.viewport[1])

			m.Open("win-a")

			w := mustWindow(t, m, "win-a")
			if tt.keep {
				assert.Equal(t, &tt.pos, w.Position)
			} else {
				assert.Nil(t, w.Position, "re-centered")
			}
		})
	}
}

func TestCloseIsDeferred(t *testing.T) {
	q := &Queue{}
	m := newTestManager(WithScheduler(q))

	m.Open("win-a")
	pending := q.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, 16*time.Millisecond, pending[0].After)
	assert.Equal(t, PhaseOpening, mustWindow(t, m, "win-a").Phase)
	assert.True(t, m.Advance(pending[0].ID, pending[0].Seq))
	assert.Equal(t, PhaseOpen, mustWindow(t, m, "win-a").Phase)

	m.Close("win-a")
	w := mustWindow(t, m, "win-a")
	assert.Equal(t, StateClosed, w.State(), "flags change at once")
	assert.False(t, w.Active)
	assert.True(t, w.Displayed(), "still drawn while the exit animation plays")

	pending = q.Drain()
	require.Len(t, pending, 1)
	assert.Equal(t, 300*time.Millisecond, pending[0].After)
	assert.True(t, m.Advance(pending[0].ID, pending[0].Seq))
	assert.False(t, mustWindow(t, m, "win-a").Displayed())
}

func TestReopenCancelsPendingHide(t *testing.T) {
	q := &Queue{}
	m := newTestManager(WithScheduler(q))

	m.Open("win-a")
	m.Close("win-a")
	m.Open("win-a")
	pending := q.Drain()
	require.Len(t, pending, 3)

	for _, tr := range pending {
		m.Advance(tr.ID, tr.Seq)
	}

	w := mustWindow(t, m, "win-a")
	assert.Equal(t, PhaseOpen, w.Phase, "the stale hide did not fire")
	assert.False(t, m.Advance(pending[1].ID, pending[1].Seq))
}

func TestCloseTwiceIsQuiet(t *testing.T) {
	q := &Queue{}
	player := &recordingPlayer{}
	m := newTestManager(WithScheduler(q), WithPlayer(player))
	var events []Event
	m.Bus().Subscribe(func(e Event) { events = append(events, e) })

	m.Open("win-a")
	m.Close("win-a")
	m.Close("win-a")

	assert.Equal(t, []Event{{Kind: Opened, ID: "win-a"}, {Kind: Closed, ID: "win-a"}}, events)
	assert.Equal(t, []audio.Effect{audio.Click, audio.Click}, player.played)
}

func TestMinimizeKeepsZAndPosition(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Open("win-b")
	before := mustWindow(t, m, "win-b")

	m.Minimize("win-b")

	after := mustWindow(t, m, "win-b")
	assert.Equal(t, before.Z, after.Z)
	assert.Equal(t, before.Position, after.Position)
	assert.True(t, after.Minimized)
	assert.False(t, after.Active)
	assert.Equal(t, StateMinimized, after.State())

	stack := m.Stack()
	require.Len(t, stack, 1)
	assert.Equal(t, "win-a", stack[0].ID)

	m.Open("win-b")
	assert.False(t, mustWindow(t, m, "win-b").Minimized)
}

func TestShowDesktop(t *testing.T) {
	q := &Queue{}
	player := &recordingPlayer{}
	m := newTestManager(WithScheduler(q), WithPlayer(player))
	m.Open("win-a")
	m.Open("win-b")
	q.Drain()
	player.played = nil

	m.ShowDesktop()

	for _, w := range m.Windows() {
		assert.Equal(t, StateClosed, w.State(), w.ID)
	}
	assert.Len(t, q.Drain(), 2, "one deferred hide per displayed window")
	assert.Equal(t, []audio.Effect{audio.Click}, player.played)
	_, ok := m.Active()
	assert.False(t, ok)
}

func TestResetLayout(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Open("win-b")
	b, _ := m.Bounds("win-a")
	m.BeginDrag("win-a", Point{X: b.X + 1, Y: b.Y})
	m.DragTo(Point{X: 3, Y: 3})
	m.ToggleMaximize("win-b")

	m.ResetLayout()

	for _, w := range m.Windows() {
		assert.Nil(t, w.Position, w.ID)
		assert.Nil(t, w.Size, w.ID)
		assert.False(t, w.Maximized, w.ID)
	}
	_, dragging := m.Dragging()
	assert.False(t, dragging)
}

func TestBusPublishesOpenAndClose(t *testing.T) {
	m := newTestManager()
	var got []Event
	unsubscribe := m.Bus().Subscribe(func(e Event) { got = append(got, e) })

	m.Open("win-c")
	m.Close("win-c")
	unsubscribe()
	m.Open("win-a")

	assert.Equal(t, []Event{{Kind: Opened, ID: "win-c"}, {Kind: Closed, ID: "win-c"}}, got)
	assert.Equal(t, "window-opened", Opened.String())
}

func TestHitTesting(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.Open("win-b")

	a, _ := m.Bounds("win-a")
	require.Equal(t, Rect{X: 40, Y: 15, Width: 40, Height: 10}, a)
	b, _ := m.Bounds("win-b")
	require.Equal(t, Rect{X: 35, Y: 14, Width: 50, Height: 12}, b)

	id, ok := m.WindowAt(Point{X: 45, Y: 16})
	assert.True(t, ok)
	assert.Equal(t, "win-b", id, "topmost wins where windows overlap")

	_, ok = m.WindowAt(Point{X: 0, Y: 0})
	assert.False(t, ok)

	tests := []struct {
		x    int
		want Control
	}{
		{x: 75, want: ControlNone},
		{x: 76, want: ControlMinimize},
		{x: 78, want: ControlMinimize},
		{x: 79, want: ControlMaximize},
		{x: 82, want: ControlClose},
		{x: 84, want: ControlClose},
		{x: 85, want: ControlNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.ControlAt("win-b", Point{X: tt.x, Y: 14}), "x=%d", tt.x)
	}
	assert.Equal(t, ControlNone, m.ControlAt("win-b", Point{X: 84, Y: 15}), "buttons live on the header row")

	assert.True(t, m.InHeader("win-b", Point{X: 40, Y: 14}))
	assert.False(t, m.InHeader("win-b", Point{X: 80, Y: 14}), "buttons are not draggable")
	assert.False(t, m.InHeader("win-b", Point{X: 40, Y: 15}))
}

func TestWindowCopiesAreDetached(t *testing.T) {
	m := newTestManager()
	m.Open("win-a")
	m.ToggleMaximize("win-a")

	w := mustWindow(t, m, "win-a")
	w.Position.X = 99

	got, _ := m.Bounds("win-a")
	assert.Equal(t, 0, got.X)
}

func TestOversizedWindowsFitTheWorkArea(t *testing.T) {
	m := New([]Spec{{ID: "big", DefaultSize: Size{Width: 200, Height: 80}}}, WithViewport(100, 30))
	m.Open("big")

	got, _ := m.Bounds("big")
	assert.Equal(t, Rect{X: 0, Y: 1, Width: 100, Height: 28}, got)
}

func TestDuplicateSpecsKeepFirst(t *testing.T) {
	m := New([]Spec{
		{ID: "dup", Title: "first"},
		{ID: "dup", Title: "second"},
	})
	ws := m.Windows()
	require.Len(t, ws, 1)
	assert.Equal(t, "first", ws[0].Title)
}
