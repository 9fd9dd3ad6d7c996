package sched

import "github.com/markphelps/optional"

// ProcID uniquely identifies a process in the simulation.
type ProcID string

// ProcessDef is the static definition of a process, as given by configuration.
type ProcessDef struct {
	ID      ProcID `yaml:"id"`
	Burst   int    `yaml:"burst"`   // total CPU units required, > 0
	Arrival int    `yaml:"arrival"` // tick at which the process becomes eligible, >= 0
}

// Process is one simulated process: its definition plus the mutable
// bookkeeping the scheduler maintains while the run is in progress.
type Process struct {
	ID      ProcID
	Burst   int
	Arrival int

	Remaining int          // CPU units still needed; Burst down to 0
	Waiting   int          // ticks spent in the ready queue
	Completed optional.Int // clock value at completion; unset until Finished
	Arrived   bool
	Finished  bool
}

// newProcess builds a fresh Process from its definition with all
// simulation fields reinitialized.
func newProcess(def ProcessDef) *Process {
	return &Process{
		ID:        def.ID,
		Burst:     def.Burst,
		Arrival:   def.Arrival,
		Remaining: def.Burst,
	}
}

// Turnaround returns completion - arrival, valid only once finished.
func (p *Process) Turnaround() (int, bool) {
	done, err := p.Completed.Get()
	if err != nil {
		return 0, false
	}
	return done - p.Arrival, true
}
