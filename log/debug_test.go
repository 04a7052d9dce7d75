package log

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withDebug(t *testing.T) {
	t.Helper()
	DebugEnabled = true
	profiler.Reset()
	t.Cleanup(func() { DebugEnabled = false })
}

func TestDebugDisabledByDefault(t *testing.T) {
	t.Setenv("DOS_DEBUG", "")
	InitDebug()

	assert.False(t, DebugEnabled)
	assert.NotNil(t, DebugLog, "a disabled debug log still discards")
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	t.Setenv("DOS_DEBUG", "1")
	InitDebug()
	t.Cleanup(func() {
		CloseDebug()
		DebugEnabled = false
	})

	assert.True(t, DebugEnabled)
}

func TestTracesNeverPanic(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		DebugEnabled = enabled
		DebugLog = nil

		Debug("boot %d", 1)
		Tracef(TopicInput, "press %d,%d", 3, 4)
		Tracef(TopicTransition, "%s %s", "win-shop", "open")
		profiler.RecordFrame(time.Second)
	}
	DebugEnabled = false
}

func TestProfilerOffRecordsNothing(t *testing.T) {
	DebugEnabled = false
	profiler.Reset()

	profiler.StartRender("win-viewer")()
	profiler.StartFrame()()

	assert.Empty(t, profiler.windows)
	assert.Zero(t, profiler.frames)
	assert.Empty(t, profiler.Stats())
}

func TestWindowRendersAccumulate(t *testing.T) {
	withDebug(t)

	for i := 0; i < 3; i++ {
		done := profiler.StartRender("win-archive")
		time.Sleep(time.Millisecond)
		done()
	}

	c := profiler.windows["win-archive"]
	require.NotNil(t, c)
	assert.EqualValues(t, 3, c.Renders)
	assert.GreaterOrEqual(t, c.Max, time.Millisecond)
}

func TestRecordFrameKeepsRollingWindow(t *testing.T) {
	withDebug(t)

	for i := 0; i < frameWindow+30; i++ {
		profiler.RecordFrame(time.Millisecond)
	}
	profiler.RecordFrame(2 * frameBudget)

	assert.EqualValues(t, frameWindow+31, profiler.frames)
	assert.Len(t, profiler.recent, frameWindow)
	assert.Equal(t, 2*frameBudget, profiler.recent[frameWindow-1])
	assert.EqualValues(t, 1, profiler.slow)
}

func TestStatsOrdersWindowsByCost(t *testing.T) {
	withDebug(t)

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.recordWindow("win-comm", time.Millisecond)
	profiler.recordWindow("win-viewer", 5*time.Millisecond)

	stats := profiler.Stats()
	assert.Contains(t, stats, "render profile: 1 frames, 0 over 16ms")
	viewer, comm := strings.Index(stats, "win-viewer"), strings.Index(stats, "win-comm")
	require.True(t, viewer >= 0 && comm >= 0)
	assert.Less(t, viewer, comm, "costliest window first")
}

func TestEvery(t *testing.T) {
	e := NewEvery(time.Hour)
	assert.True(t, e.ShouldLog(), "first call logs")
	assert.False(t, e.ShouldLog(), "second call within the timeout does not")
}

func TestLoggersDiscardBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		InfoLog.Printf("before initialize")
		WarningLog.Printf("before initialize")
		ErrorLog.Printf("before initialize")
	})
}
