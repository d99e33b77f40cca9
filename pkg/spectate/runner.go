package spectate

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/golangdaddy/dispatcher/pkg/sim"
)

// maxStep caps dt after a stall so timers do not leap ahead.
const maxStep = 0.25

// Runner owns the simulation. Commands arrive on a channel and are applied
// between frames, so the simulation is only ever touched by Run's goroutine.
type Runner struct {
	sim      *sim.Simulation
	hub      *Hub
	logger   *log.Logger
	commands chan string
	interval time.Duration
}

// NewRunner steps s every interval and broadcasts through hub. commands is
// the queue the hub feeds.
func NewRunner(s *sim.Simulation, hub *Hub, commands chan string, interval time.Duration, logger *log.Logger) *Runner {
	return &Runner{sim: s, hub: hub, logger: logger, commands: commands, interval: interval}
}

// Run ticks until ctx is cancelled and returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxStep)
			last = now
			r.Step(dt)
		}
	}
}

// Step applies queued commands, advances one frame and broadcasts the
// resulting snapshot.
func (r *Runner) Step(dt float64) {
	for drained := false; !drained; {
		select {
		case cmd := <-r.commands:
			r.apply(cmd)
		default:
			drained = true
		}
	}

	r.sim.Advance(dt)
	if err := r.hub.Broadcast(MsgSnapshot, r.sim.Snapshot()); err != nil {
		r.logger.Error("broadcast failed", "err", err)
	}
}

func (r *Runner) apply(cmd string) {
	switch cmd {
	case CmdDispatchAmbulance:
		r.sim.DispatchAmbulance()
	case CmdDispatchTow:
		r.sim.DispatchTow()
	case CmdDispatchSchoolBus:
		r.sim.DispatchSchoolBus()
	case CmdTriggerAccident:
		r.sim.TriggerAccidentNow()
	case CmdReset:
		r.sim.Reset()
	default:
		r.logger.Debug("unknown command", "command", cmd)
	}
}
