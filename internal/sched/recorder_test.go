package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAveragesUndefinedUntilFirstCompletion(t *testing.T) {
	ass := assert.New(t)

	s, err := New([]ProcessDef{{ID: "P1", Burst: 3, Arrival: 0}}, 2)
	ass.NoError(err)
	rec := NewRecorder(s)

	_, ok := rec.AvgTurnaround()
	ass.False(ok)
	_, ok = rec.AvgWaiting()
	ass.False(ok)

	s.Tick()
	_, ok = rec.AvgWaiting()
	ass.False(ok, "nothing finished after one tick")
}

func TestAverages(t *testing.T) {
	ass := assert.New(t)

	s, err := New([]ProcessDef{
		{ID: "P1", Burst: 3, Arrival: 0},
		{ID: "P2", Burst: 2, Arrival: 1},
	}, 2)
	ass.NoError(err)
	rec := NewRecorder(s)

	runToCompletion(t, s)

	// turnarounds 5 and 3, waits 2 and 1
	avgT, ok := rec.AvgTurnaround()
	ass.True(ok)
	ass.InDelta(4.0, avgT, 1e-9)

	avgW, ok := rec.AvgWaiting()
	ass.True(ok)
	ass.InDelta(1.5, avgW, 1e-9)

	finished := rec.Finished()
	ass.Len(finished, 2)
	ass.Equal(ProcID("P2"), finished[0].ID, "completion order, not declaration order")
}

func TestLogClearedOnReset(t *testing.T) {
	ass := assert.New(t)

	defs := []ProcessDef{{ID: "P1", Burst: 2, Arrival: 0}}
	s, err := New(defs, 2)
	ass.NoError(err)
	rec := NewRecorder(s)

	runToCompletion(t, s)
	ass.NotEmpty(rec.Log())
	ass.NotEmpty(rec.Finished())

	ass.NoError(s.Reset(defs, 2))
	ass.Empty(rec.Log())
	ass.Empty(rec.Finished())
}

func TestCSVLogging(t *testing.T) {
	ass := assert.New(t)

	s, err := New([]ProcessDef{{ID: "P1", Burst: 2, Arrival: 0}}, 2)
	ass.NoError(err)
	rec := NewRecorder(s)

	path := filepath.Join(t.TempDir(), "events.csv")
	ass.NoError(rec.EnableCSVLogging(path))

	runToCompletion(t, s)
	ass.NoError(rec.Close())

	data, err := os.ReadFile(path)
	ass.NoError(err)

	want := "tick,event,process\n" +
		"0,Arrived,P1\n" +
		"0,Dispatched,P1\n" +
		"2,Finished,P1\n" +
		"2,Complete,\n"
	ass.Equal(want, string(data))
}
