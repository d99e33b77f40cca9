package sim

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// AccidentState is the lifecycle of the single accident slot.
type AccidentState int

const (
	AccidentNone AccidentState = iota
	// AccidentPending means a reckless car is closing on its target.
	AccidentPending
	// AccidentActive means the two cars have collided.
	AccidentActive
)

func (a AccidentState) String() string {
	switch a {
	case AccidentNone:
		return "none"
	case AccidentPending:
		return "pending"
	case AccidentActive:
		return "active"
	}
	return "unknown"
}

// Trigger window for a pending accident, measured from the leading car to the
// trailing one.
const (
	triggerGapMin = 110.0
	triggerGapMax = 400.0
)

// Tow offsets for the leading and trailing wrecks.
const (
	LeadingTowOffset  = 100.0
	TrailingTowOffset = 200.0
)

// Accident is the record of at most one collision on the inbound roadway.
// Leading and Trailing are non-owning handles into the inbound collection.
type Accident struct {
	State    AccidentState
	ID       uuid.UUID
	X, Y     float64
	Leading  arena.Handle
	Trailing arena.Handle
}

func (s *Simulation) eligibleForAccident(v *vehicle.Vehicle) bool {
	return v.Role == vehicle.Car && v.Phase == vehicle.Normal && !v.IsOffscreen()
}

// triggerScan looks for a same-lane pair on the inbound roadway close enough
// to stage an accident and, if it finds one, makes it pending.
func (s *Simulation) triggerScan() bool {
	if s.waitingForTow || s.accident.State != AccidentNone {
		return false
	}
	busLaneY := road.Inbound.LaneY(road.LaneBus)
	candidates := lo.Filter(s.inbound.Entries(), func(e arena.Entry[*vehicle.Vehicle], _ int) bool {
		return s.eligibleForAccident(e.Value)
	})

	for _, trailing := range candidates {
		t := trailing.Value
		if road.SameLane(t.TargetY, busLaneY) {
			continue
		}
		for _, leading := range candidates {
			l := leading.Value
			if leading.Handle == trailing.Handle || !road.SameLane(t.TargetY, l.TargetY) {
				continue
			}
			gap := t.X - l.X
			if gap <= triggerGapMin || gap >= triggerGapMax {
				continue
			}
			if t.X >= road.WorldWidth-road.DrivableInset || l.X <= road.DrivableInset {
				continue
			}
			s.stageAccident(leading.Handle, trailing.Handle, l, t)
			return true
		}
	}
	return false
}

func (s *Simulation) stageAccident(lh, th arena.Handle, l, t *vehicle.Vehicle) {
	s.accident = Accident{
		State:    AccidentPending,
		ID:       uuid.New(),
		Leading:  lh,
		Trailing: th,
	}
	s.waitingForTow = true
	t.MakeReckless()
	l.MakeAccidentTarget()
	s.logger.Info("accident pending", "accident", s.accident.ID, "leading", l.ID, "trailing", t.ID,
		"gap", t.X-l.X)
	s.mission.raise(CallAmbulance, s.logger)
}

// participants resolves both accident handles.
func (s *Simulation) participants() (l, t *vehicle.Vehicle, ok bool) {
	l, okL := s.inbound.Get(s.accident.Leading)
	t, okT := s.inbound.Get(s.accident.Trailing)
	return l, t, okL && okT
}

// checkPending turns a pending accident into a collision once the two cars
// overlap, or abandons it when they can no longer meet.
func (s *Simulation) checkPending() {
	if s.accident.State != AccidentPending {
		return
	}
	l, t, ok := s.participants()
	if !ok {
		s.abandonAccident("participant gone")
		return
	}
	gap := t.X - l.X
	switch {
	case gap > -road.VehicleWidth && gap < road.VehicleWidth-10:
		s.activateAccident(l, t)
	case gap <= -road.VehicleWidth:
		s.abandonAccident("cars diverged")
	}
}

func (s *Simulation) activateAccident(l, t *vehicle.Vehicle) {
	l.Crash()
	t.Crash()
	s.accident.State = AccidentActive
	s.accident.X = l.X + road.VehicleWidth/2
	s.accident.Y = l.Y
	s.logger.Info("accident active", "accident", s.accident.ID, "x", s.accident.X, "y", s.accident.Y)

	for _, e := range s.inbound.Entries() {
		if v := e.Value; v.Role == vehicle.Ambulance {
			v.AssignAccident(s.accident.X, s.accident.Y)
			v.TargetY = s.accident.Y
		}
	}
}

// abandonAccident drops a pending accident whose cars never met. The cars keep
// their phase and drive off to be culled.
func (s *Simulation) abandonAccident(reason string) {
	s.logger.Info("accident abandoned", "accident", s.accident.ID, "reason", reason)
	s.accident = Accident{}
	s.waitingForTow = s.towTruckOut()
}

// resolveTow hooks both wrecks onto the tow truck once it has picked up.
func (s *Simulation) resolveTow(tow *arena.Entry[*vehicle.Vehicle]) {
	if tow == nil || !tow.Value.PickedUp() || s.accident.State != AccidentActive {
		return
	}
	l, t, ok := s.participants()
	if !ok {
		return
	}
	l.AttachTo(tow.Handle, LeadingTowOffset, tow.Value.Y)
	t.AttachTo(tow.Handle, TrailingTowOffset, tow.Value.Y)
	s.logger.Info("accident towed", "accident", s.accident.ID, "tow", tow.Value.ID)
	s.accident = Accident{}
}

// followTowers pins every towed vehicle behind its tow truck.
func (s *Simulation) followTowers() {
	for _, e := range s.inbound.Entries() {
		v := e.Value
		if v.Phase != vehicle.Towed {
			continue
		}
		if tower, ok := s.inbound.Get(v.Tower); ok {
			v.Follow(tower)
		}
	}
}
