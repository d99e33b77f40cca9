package vehicle

import "github.com/golangdaddy/dispatcher/pkg/road"

// AmbulanceStage is a step of an ambulance's run.
type AmbulanceStage int

const (
	Patrol AmbulanceStage = iota
	ToAccident
	WaitAtAccident
	ToHospital
	WaitAtHospital
	LeavingHospital
)

func (s AmbulanceStage) String() string {
	switch s {
	case Patrol:
		return "patrol"
	case ToAccident:
		return "to_accident"
	case WaitAtAccident:
		return "wait_at_accident"
	case ToHospital:
		return "to_hospital"
	case WaitAtHospital:
		return "wait_at_hospital"
	case LeavingHospital:
		return "leaving"
	}
	return "unknown"
}

const (
	// AmbulanceStandoff is how far short of the accident an ambulance parks.
	AmbulanceStandoff = 160.0
	AccidentDwell     = 5.0
	HospitalDwell     = 5.0
)

type AmbulanceState struct {
	Stage     AmbulanceStage
	Timer     float64
	AccidentX float64
	AccidentY float64
}

// NewAmbulance creates a patrolling ambulance at the roadway's spawn point in
// the middle lane.
func NewAmbulance(id uint64, rw road.Roadway) *Vehicle {
	v := newVehicle(id, rw, Ambulance, rw.SpawnX(), rw.LaneY(road.LaneMiddle), AmbulanceSpeed)
	v.Ambulance = &AmbulanceState{}
	return v
}

// AssignAccident sends the ambulance to the accident at (x, y). It has no
// effect on vehicles that are not ambulances.
func (v *Vehicle) AssignAccident(x, y float64) {
	if v.Ambulance == nil {
		return
	}
	v.Ambulance.AccidentX = x
	v.Ambulance.AccidentY = y
	v.Ambulance.Stage = ToAccident
}

// Stage returns the ambulance stage, or Patrol for other roles.
func (v *Vehicle) Stage() AmbulanceStage {
	if v.Ambulance == nil {
		return Patrol
	}
	return v.Ambulance.Stage
}

func (v *Vehicle) updateAmbulance(dt float64) {
	a := v.Ambulance
	switch a.Stage {
	case Patrol:
		v.drive()
		return
	case ToAccident:
		// ignores forced stops
		v.step()
		if mark := v.behind(a.AccidentX, AmbulanceStandoff); v.reached(mark) {
			v.X = mark
			v.Moving = false
			a.Stage = WaitAtAccident
			a.Timer = 0
		}
	case WaitAtAccident:
		v.Moving = false
		a.Timer += dt
		if a.Timer >= AccidentDwell {
			a.Stage = ToHospital
			v.Moving = true
		}
	case ToHospital:
		if !v.ForcedStop {
			if !v.reached(road.HospitalX) {
				v.step()
			} else {
				a.Stage = WaitAtHospital
				v.Moving = false
				a.Timer = 0
			}
		}
	case WaitAtHospital:
		v.Moving = false
		a.Timer += dt
		if a.Timer >= HospitalDwell {
			a.Stage = LeavingHospital
			v.Moving = true
		}
	case LeavingHospital:
		v.step()
	}
	v.ease()
}
