// internal/sched/event.go

package sched

// EventKind represents the type of scheduler event.
type EventKind int

const (
	EventArrived EventKind = iota
	EventDispatched
	EventPreempted
	EventFinished
	EventTick
	EventComplete
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "Arrived"
	case EventDispatched:
		return "Dispatched"
	case EventPreempted:
		return "QuantumExpired"
	case EventFinished:
		return "Finished"
	case EventTick:
		return "Tick"
	case EventComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Listener receives scheduler state changes. All callbacks run synchronously
// inside Tick or Reset, so a listener may read the scheduler's accessors and
// will observe the state as of the transition.
type Listener interface {
	// OnReset fires after the scheduler rebuilt its state from a new configuration.
	OnReset()
	// OnArrived fires when a process enters the ready queue.
	OnArrived(p *Process)
	// OnDispatched fires when a process enters the CPU slot.
	OnDispatched(p *Process)
	// OnPreempted fires when a process returns to the ready queue tail
	// after its quantum expired.
	OnPreempted(p *Process)
	// OnFinished fires when a process completes, with the clock value at completion.
	OnFinished(p *Process, completedAt int)
	// OnTick fires once per Tick call that advanced the clock.
	OnTick(now int)
	// OnSimulationComplete fires once, when every process has finished.
	OnSimulationComplete()
}

// NopListener implements Listener with no-ops so collaborators can embed it
// and override only the callbacks they care about.
type NopListener struct{}

func (NopListener) OnReset()                 {}
func (NopListener) OnArrived(*Process)       {}
func (NopListener) OnDispatched(*Process)    {}
func (NopListener) OnPreempted(*Process)     {}
func (NopListener) OnFinished(*Process, int) {}
func (NopListener) OnTick(int)               {}
func (NopListener) OnSimulationComplete()    {}
