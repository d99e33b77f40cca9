package vehicle

import "github.com/golangdaddy/dispatcher/pkg/road"

const (
	// TowStandoff is how far past its target a tow truck stops to work.
	TowStandoff     = 120.0
	TowWorkDuration = 2.0
)

type TowState struct {
	PickedUp bool
	Working  bool
	TargetX  float64
	Timer    float64
}

// NewTowTruck creates a tow truck at the roadway's spawn point on lane y,
// heading for targetX.
func NewTowTruck(id uint64, rw road.Roadway, y, targetX float64) *Vehicle {
	v := newVehicle(id, rw, TowTruck, rw.SpawnX(), y, TowSpeed)
	v.Tow = &TowState{TargetX: targetX}
	return v
}

// PickedUp reports whether a tow truck has finished loading its wrecks.
func (v *Vehicle) PickedUp() bool {
	return v.Tow != nil && v.Tow.PickedUp
}

// Working reports whether a tow truck is parked and loading.
func (v *Vehicle) Working() bool {
	return v.Tow != nil && v.Tow.Working
}

func (v *Vehicle) updateTow(dt float64) {
	t := v.Tow
	if t.Working {
		v.Moving = false
		t.Timer += dt
		if t.Timer > TowWorkDuration {
			t.PickedUp = true
			t.Working = false
			v.Moving = true
		}
		return
	}
	// checked before moving so the truck never overshoots its work spot
	if !t.PickedUp && v.reached(v.ahead(t.TargetX, TowStandoff)) {
		t.Working = true
		v.Moving = false
		t.Timer = 0
		return
	}
	v.drive()
}
