package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"rrsim/internal/sched"
)

// consoleListener streams scheduler transitions through slog.
type consoleListener struct {
	sched.NopListener
	s   *sched.Scheduler
	log *slog.Logger
}

func (c *consoleListener) OnArrived(p *sched.Process) {
	c.log.Info("arrived", "tick", c.s.Clock(), "proc", p.ID)
}

func (c *consoleListener) OnDispatched(p *sched.Process) {
	c.log.Info("dispatched", "tick", c.s.Clock(), "proc", p.ID, "remaining", p.Remaining)
}

func (c *consoleListener) OnPreempted(p *sched.Process) {
	c.log.Info("quantum expired", "tick", c.s.Clock(), "proc", p.ID, "remaining", p.Remaining)
}

func (c *consoleListener) OnFinished(p *sched.Process, completedAt int) {
	c.log.Info("finished", "tick", completedAt, "proc", p.ID, "waited", p.Waiting)
}

func (c *consoleListener) OnSimulationComplete() {
	c.log.Info("simulation complete", "tick", c.s.Clock())
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}

func main() {
	cfgPath := flag.String("config", "config.yml", "scenario config file")
	csvPath := flag.String("csv", "", "CSV event-log path (overrides config)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log := newLogger(*logLevel)

	cfg := sched.Load(*cfgPath)
	log.Info("loaded config", "path", *cfgPath, "quantum", cfg.Quantum, "procs", len(cfg.Processes))

	s, err := sched.New(cfg.Processes, cfg.Quantum)
	if err != nil {
		log.Error("invalid scenario", "error", err)
		os.Exit(1)
	}

	rec := sched.NewRecorder(s)
	csv := cfg.CSVLog
	if *csvPath != "" {
		csv = *csvPath
	}
	if csv != "" {
		if err := rec.EnableCSVLogging(csv); err != nil {
			log.Error("cannot open CSV log", "path", csv, "error", err)
			os.Exit(1)
		}
		defer rec.Close()
	}

	s.Subscribe(&consoleListener{s: s, log: log})

	driver := sched.NewDriver(s, time.Duration(cfg.TickMS)*time.Millisecond)
	if err := driver.Run(context.Background()); err != nil {
		log.Error("run aborted", "error", err)
		os.Exit(1)
	}

	printSummary(s, rec)
}

func printSummary(s *sched.Scheduler, rec *sched.Recorder) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tARRIVAL\tBURST\tCOMPLETION\tTURNAROUND\tWAITING")
	for _, p := range s.Processes() {
		turnaround, _ := p.Turnaround()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			p.ID, p.Arrival, p.Burst, p.Completed.OrElse(0), turnaround, p.Waiting)
	}
	w.Flush()

	if avgT, ok := rec.AvgTurnaround(); ok {
		avgW, _ := rec.AvgWaiting()
		fmt.Printf("\navg turnaround: %.2f  avg waiting: %.2f  (over %d ticks)\n",
			avgT, avgW, s.Clock())
	}
}
