package vehicle

import "github.com/golangdaddy/dispatcher/pkg/road"

type BusStage int

const (
	ToSchool BusStage = iota
	WaitAtSchool
	LeavingSchool
)

func (s BusStage) String() string {
	switch s {
	case ToSchool:
		return "to_school"
	case WaitAtSchool:
		return "wait_at_school"
	case LeavingSchool:
		return "leaving"
	}
	return "unknown"
}

// BusDwell is how long a school bus waits at the school.
const BusDwell = 4.0

type BusState struct {
	Stage BusStage
	Timer float64
}

// NewSchoolBus creates a school bus at the roadway's spawn point in the bus
// lane.
func NewSchoolBus(id uint64, rw road.Roadway) *Vehicle {
	v := newVehicle(id, rw, SchoolBus, rw.SpawnX(), rw.LaneY(road.LaneBus), BusSpeed)
	v.Bus = &BusState{}
	return v
}

func (v *Vehicle) updateBus(dt float64) {
	b := v.Bus
	switch {
	case b.Stage == WaitAtSchool:
		b.Timer += dt
		if b.Timer >= BusDwell {
			b.Stage = LeavingSchool
		}
	case !v.ForcedStop && b.Stage == ToSchool:
		v.step()
		if v.reached(road.SchoolX) {
			v.X = road.SchoolX
			b.Stage = WaitAtSchool
			b.Timer = 0
		}
	case !v.ForcedStop && b.Stage == LeavingSchool:
		v.step()
	}
	v.ease()
}
