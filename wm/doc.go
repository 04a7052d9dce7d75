/*
Package wm is the desktop's window manager.

It owns the stacking and visibility state of a fixed set of window panels:
which windows are open, minimized or maximized, where they sit, which one is
active and in which order they are drawn. The manager is the source of truth;
the renderer draws a projection of it after every mutation.

Windows are declared once and never destroyed. Closing a window keeps its
record, so it reopens where it was left unless that spot is no longer on
screen. Every operation taking a window id ignores ids it does not know.

Deferred visual effects (the fade-in after open, the exit animation before a
closed window disappears) are phase transitions handed to a Scheduler. Each
transition carries a sequence number; a transition superseded by a later open
or close is ignored when it fires.

Example usage:

	q := &wm.Queue{}
	m := wm.New(specs, wm.WithScheduler(q), wm.WithViewport(120, 40))
	m.Open("win-overview")
	for _, t := range q.Drain() {
		// fire t after t.After, then:
		m.Advance(t.ID, t.Seq)
	}
*/
package wm
