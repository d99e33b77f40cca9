package sim

import (
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// DispatchAmbulance sends an ambulance down the inbound roadway. With no
// accident on the road it first tries to stage one; an active accident
// becomes the ambulance's destination.
func (s *Simulation) DispatchAmbulance() {
	if s.ignored("dispatch ambulance") {
		return
	}
	if s.accident.State == AccidentNone {
		s.triggerScan()
	}
	s.mission.resolve(CallAmbulance, s.logger)
	s.sounds.AmbulanceDispatched()

	amb := vehicle.NewAmbulance(0, road.Inbound)
	if s.accident.State == AccidentActive {
		amb.AssignAccident(s.accident.X, s.accident.Y)
		amb.TargetY = s.accident.Y
	}
	s.add(amb)
	s.logger.Info("ambulance dispatched", "id", amb.ID, "stage", amb.Stage())
}

// DispatchTow sends a tow truck to the active accident. Without one it does
// nothing.
func (s *Simulation) DispatchTow() {
	if s.ignored("dispatch tow") {
		return
	}
	if s.accident.State != AccidentActive {
		s.logger.Debug("tow not dispatched", "reason", "no active accident", "accident", s.accident.State)
		return
	}
	s.mission.resolve(CallTow, s.logger)
	tow := vehicle.NewTowTruck(0, road.Inbound, s.accident.Y, s.accident.X)
	s.add(tow)
	s.logger.Info("tow truck dispatched", "id", tow.ID, "accident", s.accident.ID)
}

func (s *Simulation) DispatchSchoolBus() {
	if s.ignored("dispatch school bus") {
		return
	}
	s.mission.resolve(CallBus, s.logger)
	bus := vehicle.NewSchoolBus(0, road.Inbound)
	s.add(bus)
	s.logger.Info("school bus dispatched", "id", bus.ID)
}

// TriggerAccidentNow runs the accident scan immediately.
func (s *Simulation) TriggerAccidentNow() {
	if s.ignored("trigger accident") {
		return
	}
	if !s.triggerScan() {
		s.logger.Debug("no accident staged", "accident", s.accident.State, "waiting_for_tow", s.waitingForTow)
	}
}

func (s *Simulation) ignored(cmd string) bool {
	if s.mission.GameOver {
		s.logger.Debug("command ignored after game over", "command", cmd)
		return true
	}
	return false
}
