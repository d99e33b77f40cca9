package sim

import (
	"github.com/samber/lo"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

const (
	// yieldDistance is how far behind an emergency vehicle is noticed.
	yieldDistance = 450.0
	// avoidDistance is how far ahead an active accident is noticed.
	avoidDistance = 300.0

	ambulanceFollowGap       = 10.0
	towFollowGap             = 250.0
	parkedAmbulanceFollowGap = 150.0
)

type entry = arena.Entry[*vehicle.Vehicle]

func hasRole(role vehicle.Role) func(entry) bool {
	return func(e entry) bool { return e.Value.Role == role }
}

func (s *Simulation) ambulanceOut() bool {
	return lo.ContainsBy(s.inbound.Entries(), hasRole(vehicle.Ambulance))
}

func (s *Simulation) towTruckOut() bool {
	return lo.ContainsBy(s.inbound.Entries(), hasRole(vehicle.TowTruck))
}

// emergencyVehicles returns the most recently dispatched ambulance and tow
// truck still on the inbound roadway.
func (s *Simulation) emergencyVehicles() (amb, tow *entry) {
	entries := s.inbound.Entries()
	if e, _, ok := lo.FindLastIndexOf(entries, hasRole(vehicle.Ambulance)); ok {
		amb = &e
	}
	if e, _, ok := lo.FindLastIndexOf(entries, hasRole(vehicle.TowTruck)); ok {
		tow = &e
	}
	return amb, tow
}

// expired decides whether an inbound vehicle leaves the world this frame.
func expired(v *vehicle.Vehicle) bool {
	switch {
	case v.Role == vehicle.TowTruck:
		return v.X < road.TowCullX
	case v.Role == vehicle.SchoolBus:
		return v.IsOffscreen()
	case v.Phase != vehicle.Normal:
		return v.X <= road.WreckCullX || v.Remove
	}
	return v.IsOffscreen() || v.Remove
}

// cull removes vehicles that have left the world and drops every reference
// that pointed at them.
func (s *Simulation) cull() {
	gone := s.outbound.RemoveFunc(func(_ arena.Handle, v *vehicle.Vehicle) bool {
		return v.IsOffscreen()
	})
	gone = append(gone, s.inbound.RemoveFunc(func(_ arena.Handle, v *vehicle.Vehicle) bool {
		return expired(v)
	})...)
	// towed vehicles go with their tow truck
	gone = append(gone, s.inbound.RemoveFunc(func(_ arena.Handle, v *vehicle.Vehicle) bool {
		return v.Phase == vehicle.Towed && !s.inbound.Contains(v.Tower)
	})...)

	for _, e := range gone {
		s.logger.Debug("vehicle removed", "id", e.Value.ID, "role", e.Value.Role, "x", e.Value.X)
	}

	if lo.ContainsBy(gone, hasRole(vehicle.TowTruck)) && s.accident.State == AccidentNone && !s.towTruckOut() {
		s.waitingForTow = false
	}

	if s.accident.State != AccidentNone &&
		(!s.inbound.Contains(s.accident.Leading) || !s.inbound.Contains(s.accident.Trailing)) {
		s.logger.Info("accident cleared", "accident", s.accident.ID, "reason", "participant removed")
		s.accident = Accident{}
		s.waitingForTow = s.towTruckOut()
	}
}

// steerAmbulance keeps the active ambulance in the right lane for its stage
// and asks for a tow once the casualties are on their way.
func (s *Simulation) steerAmbulance(amb, tow *entry) {
	if amb == nil {
		return
	}
	a := amb.Value
	switch a.Stage() {
	case vehicle.ToHospital:
		if s.accident.State == AccidentActive && tow == nil && !s.mission.Active() {
			s.mission.raise(CallTow, s.logger)
		}
		a.TargetY = road.Inbound.LaneY(road.LaneBus)
	case vehicle.ToAccident:
		if s.accident.State == AccidentActive {
			a.TargetY = s.accident.Y
		}
	}
}

// upstream returns how far other is behind v along v's direction of travel.
func upstream(v, other *vehicle.Vehicle) float64 {
	if v.Forward() {
		return v.X - other.X
	}
	return other.X - v.X
}

// downstream returns how far x is ahead of v along v's direction of travel.
func downstream(v *vehicle.Vehicle, x float64) float64 {
	if v.Forward() {
		return x - v.X
	}
	return v.X - x
}

func changeLane(v *vehicle.Vehicle) {
	v.TargetY = v.Roadway.NextLaneY(v.Y)
	v.ChangedLane = true
}

func canChangeLane(v *vehicle.Vehicle) bool {
	return v.Phase != vehicle.Reckless && !v.LaneLocked && !v.ChangedLane
}

// yield moves v out of the lane of an emergency vehicle closing in from
// behind.
func yield(v, em *vehicle.Vehicle) {
	if em == nil || em == v || !canChangeLane(v) || !road.SameLane(v.TargetY, em.TargetY) {
		return
	}
	if d := upstream(v, em); d > 0 && d < yieldDistance {
		changeLane(v)
	}
}

func followGap(v, ahead *vehicle.Vehicle) float64 {
	switch {
	case v.Role == vehicle.Ambulance:
		return ambulanceFollowGap
	case ahead.Role == vehicle.TowTruck:
		return towFollowGap
	case ahead.Role == vehicle.Ambulance && !ahead.Moving:
		return parkedAmbulanceFollowGap
	}
	return road.SafeDistance
}

// tooClose reports whether v must brake for a same-lane vehicle ahead of it.
func tooClose(self entry, entries []entry) bool {
	v := self.Value
	for _, o := range entries {
		other := o.Value
		if o.Handle == self.Handle || other.Phase == vehicle.Towed {
			continue
		}
		if v.Role == vehicle.TowTruck && (other.Phase == vehicle.Crashed || other.Phase == vehicle.AccidentTarget) {
			continue
		}
		if !road.SameLane(v.TargetY, other.TargetY) {
			continue
		}
		ahead := downstream(v, other.X)
		if ahead <= 0 {
			continue
		}
		if ahead-road.VehicleWidth < followGap(v, other) {
			return true
		}
	}
	return false
}

func (s *Simulation) redLightAhead(v *vehicle.Vehicle) bool {
	tl := s.light(v.Roadway)
	if !tl.IsRed() {
		return false
	}
	d := v.X - tl.StopLineX(!v.Forward())
	return d > -road.StopZone && d < road.StopZone
}

// passInbound decides stops, yields and lane changes for the inbound roadway
// and then updates every vehicle on it.
func (s *Simulation) passInbound(dt float64, amb, tow *entry) {
	var ambV, towV *vehicle.Vehicle
	if amb != nil {
		ambV = amb.Value
	}
	if tow != nil && tow.Value.Working() {
		towV = tow.Value
	}

	entries := s.inbound.Entries()
	for _, e := range entries {
		v := e.Value
		if v.Phase == vehicle.Crashed || v.Phase == vehicle.Towed {
			continue
		}
		if v.Phase == vehicle.Reckless {
			v.Update(dt, false)
			continue
		}

		yield(v, ambV)
		yield(v, towV)

		if s.accident.State == AccidentActive && canChangeLane(v) && road.SameLane(v.Y, s.accident.Y) {
			if d := downstream(v, s.accident.X); d > 0 && d < avoidDistance {
				changeLane(v)
			}
		}

		stop := v.Role != vehicle.Ambulance && s.redLightAhead(v)
		if !stop {
			stop = tooClose(e, entries)
		}
		v.Update(dt, stop)
	}
}

// passOutbound runs the outbound roadway, which only has lights and plain
// following.
func (s *Simulation) passOutbound(dt float64) {
	entries := s.outbound.Entries()
	for _, e := range entries {
		v := e.Value
		stop := s.redLightAhead(v)
		if !stop {
			stop = tooClose(e, entries)
		}
		v.Update(dt, stop)
	}
}
