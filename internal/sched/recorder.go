// internal/sched/recorder.go

package sched

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"
)

// LogEntry is one line of the simulation's event log.
type LogEntry struct {
	Tick    int
	Kind    EventKind
	Proc    ProcID
	Message string
}

// Recorder derives timing metrics and keeps the chronological event log.
// It subscribes to a Scheduler and reacts to its transitions; it has no
// influence on scheduling decisions.
type Recorder struct {
	NopListener

	sched    *Scheduler
	entries  []LogEntry
	finished []*Process

	// CSV logging, optional
	csvFile   *os.File
	csvWriter *csv.Writer
}

// NewRecorder creates a Recorder and subscribes it to the scheduler.
func NewRecorder(s *Scheduler) *Recorder {
	r := &Recorder{sched: s}
	s.Subscribe(r)
	return r
}

// EnableCSVLogging opens the given file path for CSV logging of events.
// Each log entry is streamed as a row as it happens.
func (r *Recorder) EnableCSVLogging(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"tick", "event", "process"})
	w.Flush()
	r.csvFile = f
	r.csvWriter = w
	return nil
}

// Close flushes and closes the CSV log, if one was enabled.
func (r *Recorder) Close() error {
	if r.csvFile == nil {
		return nil
	}
	r.csvWriter.Flush()
	err := r.csvFile.Close()
	r.csvFile = nil
	r.csvWriter = nil
	return err
}

func (r *Recorder) OnReset() {
	r.entries = nil
	r.finished = nil
}

func (r *Recorder) OnArrived(p *Process) {
	r.record(EventArrived, p.ID, fmt.Sprintf("%s arrived, entered ready queue", p.ID))
}

func (r *Recorder) OnDispatched(p *Process) {
	r.record(EventDispatched, p.ID, fmt.Sprintf("%s dispatched to CPU", p.ID))
}

func (r *Recorder) OnPreempted(p *Process) {
	r.record(EventPreempted, p.ID, fmt.Sprintf("%s quantum expired, requeued", p.ID))
}

func (r *Recorder) OnFinished(p *Process, completedAt int) {
	r.finished = append(r.finished, p)
	r.record(EventFinished, p.ID, fmt.Sprintf("%s finished at tick %d", p.ID, completedAt))
}

func (r *Recorder) OnSimulationComplete() {
	r.record(EventComplete, "", "all processes finished")
}

func (r *Recorder) record(kind EventKind, id ProcID, msg string) {
	e := LogEntry{Tick: r.sched.Clock(), Kind: kind, Proc: id, Message: msg}
	r.entries = append(r.entries, e)

	if r.csvWriter != nil {
		r.csvWriter.Write([]string{
			strconv.Itoa(e.Tick),
			e.Kind.String(),
			string(e.Proc),
		})
		r.csvWriter.Flush()
	}
}

// Log returns the event log so far, oldest first.
func (r *Recorder) Log() []LogEntry { return r.entries }

// Finished returns the processes that have completed, in completion order.
func (r *Recorder) Finished() []*Process { return r.finished }

// AvgTurnaround returns the mean turnaround time over finished processes.
// ok is false until at least one process has finished.
func (r *Recorder) AvgTurnaround() (float64, bool) {
	return r.mean(func(p *Process) (int, bool) { return p.Turnaround() })
}

// AvgWaiting returns the mean waiting time over finished processes.
// ok is false until at least one process has finished.
func (r *Recorder) AvgWaiting() (float64, bool) {
	return r.mean(func(p *Process) (int, bool) { return p.Waiting, true })
}

func (r *Recorder) mean(value func(*Process) (int, bool)) (float64, bool) {
	if len(r.finished) == 0 {
		return 0, false
	}
	xs := make([]float64, 0, len(r.finished))
	for _, p := range r.finished {
		if v, ok := value(p); ok {
			xs = append(xs, float64(v))
		}
	}
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}
