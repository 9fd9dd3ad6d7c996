// internal/sched/scheduler.go

package sched

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/markphelps/optional"
)

// Scheduler implements a preemptive round-robin scheduler over a fixed set of
// processes, advancing one discrete time unit per Tick call.
//
// The scheduler is single-threaded and externally driven: it never spawns
// goroutines and holds no locks. Callers must serialize Tick and Reset
// themselves (Driver does this for interval-based runs).
type Scheduler struct {
	clock   int
	quantum int
	procs   []*Process // declaration order, fixed for the whole run
	ready   *linkedlistqueue.Queue
	running *Process
	// quantumRemaining is the slice budget captured at dispatch time.
	// SetQuantum never touches it, so a mid-run quantum change only
	// takes effect on the next dispatch.
	quantumRemaining int
	done             bool
	listeners        []Listener
}

// New creates a Scheduler initialized from the given process definitions and
// quantum. It rejects invalid configuration (see Reset).
func New(defs []ProcessDef, quantum int) (*Scheduler, error) {
	s := &Scheduler{ready: linkedlistqueue.New()}
	if err := s.Reset(defs, quantum); err != nil {
		return nil, err
	}
	return s, nil
}

// Subscribe registers a listener for state-change notifications.
func (s *Scheduler) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Reset rebuilds the simulation from scratch: clock to 0, empty ready queue
// and CPU slot, fresh process records with all mutable fields reinitialized.
// On configuration error the previous state is left unchanged.
func (s *Scheduler) Reset(defs []ProcessDef, quantum int) error {
	if err := validate(defs, quantum); err != nil {
		return err
	}

	procs := make([]*Process, len(defs))
	for i, def := range defs {
		procs[i] = newProcess(def)
	}

	s.clock = 0
	s.quantum = quantum
	s.procs = procs
	s.ready.Clear()
	s.running = nil
	s.quantumRemaining = 0
	s.done = false

	for _, l := range s.listeners {
		l.OnReset()
	}
	return nil
}

// SetQuantum changes the configured quantum. A process currently in the CPU
// slot keeps the slice budget it was given at dispatch; the new value applies
// from the next dispatch on.
func (s *Scheduler) SetQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", quantum)
	}
	s.quantum = quantum
	return nil
}

// Tick advances the simulation by exactly one time unit. Calling Tick after
// the simulation completed is a no-op. The sub-step order below is a
// contract: arrivals are scanned both before dispatch and again after the
// clock advances, so that a process arriving at the new clock value is
// queue-visible before the next tick's dispatch decision and before a
// preempted process re-enters the queue.
func (s *Scheduler) Tick() {
	if s.done {
		return
	}

	// 1) admit processes whose arrival time has been reached
	s.admitArrivals()

	// 2) dispatch the queue head if the CPU slot is free
	if s.running == nil {
		if v, ok := s.ready.Dequeue(); ok {
			s.running = v.(*Process)
			s.quantumRemaining = s.quantum
			s.emit(func(l Listener) { l.OnDispatched(s.running) })
		}
	}

	// 3) execute one unit; processes left in the queue accrue waiting time.
	//    With no eligible process this is an idle tick and only the clock moves.
	occupied := s.running != nil
	if occupied {
		for _, v := range s.ready.Values() {
			v.(*Process).Waiting++
		}
		if s.running.Remaining > 0 {
			s.running.Remaining--
		}
		if s.quantumRemaining > 0 {
			s.quantumRemaining--
		}
	}
	s.clock++

	// 4) second arrival scan against the new clock value
	s.admitArrivals()

	// 5) completion / quantum-expiry check for the process that just ran
	if occupied {
		p := s.running
		switch {
		case p.Remaining == 0:
			p.Finished = true
			p.Completed = optional.NewInt(s.clock)
			s.running = nil
			s.emit(func(l Listener) { l.OnFinished(p, s.clock) })
		case s.quantumRemaining == 0:
			s.running = nil
			s.ready.Enqueue(p)
			s.emit(func(l Listener) { l.OnPreempted(p) })
		}
	}

	s.emit(func(l Listener) { l.OnTick(s.clock) })

	// 6) termination check
	if s.allFinished() {
		s.done = true
		s.emit(func(l Listener) { l.OnSimulationComplete() })
	}
}

// admitArrivals scans the process set in declaration order, so processes with
// equal arrival times enter the queue in their original list order.
func (s *Scheduler) admitArrivals() {
	for _, p := range s.procs {
		if !p.Arrived && p.Arrival <= s.clock {
			p.Arrived = true
			s.ready.Enqueue(p)
			proc := p
			s.emit(func(l Listener) { l.OnArrived(proc) })
		}
	}
}

func (s *Scheduler) allFinished() bool {
	for _, p := range s.procs {
		if !p.Finished {
			return false
		}
	}
	return true
}

func (s *Scheduler) emit(fn func(Listener)) {
	for _, l := range s.listeners {
		fn(l)
	}
}

// Clock returns the current simulation time.
func (s *Scheduler) Clock() int { return s.clock }

// Quantum returns the currently configured quantum.
func (s *Scheduler) Quantum() int { return s.quantum }

// Done reports whether every process has finished.
func (s *Scheduler) Done() bool { return s.done }

// Running returns the process occupying the CPU slot, if any.
func (s *Scheduler) Running() (*Process, bool) {
	return s.running, s.running != nil
}

// ReadyProcesses returns the ready queue contents in FIFO order.
func (s *Scheduler) ReadyProcesses() []*Process {
	vals := s.ready.Values()
	procs := make([]*Process, len(vals))
	for i, v := range vals {
		procs[i] = v.(*Process)
	}
	return procs
}

// Processes returns the full process set in declaration order.
func (s *Scheduler) Processes() []*Process { return s.procs }

// validate checks a scenario configuration: unique ids, positive bursts,
// non-negative arrivals, positive quantum, at least one process.
func validate(defs []ProcessDef, quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", quantum)
	}
	if len(defs) == 0 {
		return fmt.Errorf("no processes defined")
	}
	seen := make(map[ProcID]struct{}, len(defs))
	for _, def := range defs {
		if def.ID == "" {
			return fmt.Errorf("process with empty id")
		}
		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("duplicate process id %q", def.ID)
		}
		seen[def.ID] = struct{}{}
		if def.Burst <= 0 {
			return fmt.Errorf("process %q: burst must be positive, got %d", def.ID, def.Burst)
		}
		if def.Arrival < 0 {
			return fmt.Errorf("process %q: arrival must be non-negative, got %d", def.ID, def.Arrival)
		}
	}
	return nil
}
