package vehicle

import (
	"math"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/road"
)

// Role tags what kind of traffic participant a vehicle is.
type Role int

const (
	Car Role = iota
	Ambulance
	TowTruck
	SchoolBus
)

func (r Role) String() string {
	switch r {
	case Car:
		return "car"
	case Ambulance:
		return "ambulance"
	case TowTruck:
		return "tow_truck"
	case SchoolBus:
		return "school_bus"
	}
	return "unknown"
}

// Phase is the lifecycle phase of a vehicle. A vehicle is in exactly one.
type Phase int

const (
	Normal Phase = iota
	Reckless
	AccidentTarget
	Crashed
	Towed
)

func (p Phase) String() string {
	switch p {
	case Normal:
		return "normal"
	case Reckless:
		return "reckless"
	case AccidentTarget:
		return "accident_target"
	case Crashed:
		return "crashed"
	case Towed:
		return "towed"
	}
	return "unknown"
}

const (
	// LaneEase is the fraction of the remaining lateral gap closed per frame.
	LaneEase = 0.08
	// SnapEpsilon is the lateral gap below which y snaps to the target lane.
	SnapEpsilon = 0.5

	RecklessSpeedFactor = 2.8
	TargetSpeedFactor   = 0.4

	AmbulanceSpeed = 4.5
	TowSpeed       = 2.5
	BusSpeed       = 2.5
)

// Vehicle is a single traffic participant. Role specific state lives in
// exactly one of Ambulance, Tow or Bus; plain cars carry none.
type Vehicle struct {
	ID      uint64
	Roadway road.Roadway
	Role    Role
	Phase   Phase
	Variant int

	X, Y    float64
	TargetY float64
	Speed   float64

	Moving      bool
	LaneLocked  bool
	ChangedLane bool
	ForcedStop  bool
	Remove      bool

	// Tower and TowOffset are set while the vehicle is Towed.
	Tower     arena.Handle
	TowOffset float64

	Ambulance *AmbulanceState
	Tow       *TowState
	Bus       *BusState
}

func newVehicle(id uint64, rw road.Roadway, role Role, x, y, speed float64) *Vehicle {
	return &Vehicle{
		ID:      id,
		Roadway: rw,
		Role:    role,
		X:       x,
		Y:       y,
		TargetY: y,
		Speed:   speed,
		Moving:  true,
	}
}

// NewCar creates a car at the roadway's spawn point in the given lane.
func NewCar(id uint64, rw road.Roadway, lane int, speed float64, variant int) *Vehicle {
	v := newVehicle(id, rw, Car, rw.SpawnX(), rw.LaneY(lane), speed)
	v.Variant = variant
	return v
}

// Forward reports whether the vehicle travels toward increasing x.
func (v *Vehicle) Forward() bool { return v.Roadway.Forward() }

func (v *Vehicle) IsEmergency() bool {
	return v.Role == Ambulance || v.Role == TowTruck
}

func (v *Vehicle) IsOffscreen() bool {
	return road.IsOffscreen(v.X, v.Forward())
}

// Update advances the vehicle's own state machine by one frame. stop is the
// forced-stop decision computed for this frame.
func (v *Vehicle) Update(dt float64, stop bool) {
	if dt < 0 {
		dt = 0
	}
	if v.Phase == Reckless {
		stop = false
	}
	v.ForcedStop = stop

	switch v.Role {
	case Ambulance:
		v.updateAmbulance(dt)
	case TowTruck:
		v.updateTow(dt)
	case SchoolBus:
		v.updateBus(dt)
	default:
		v.drive()
	}
}

// drive is the motion shared by every role: advance along the roadway unless
// stopped, then ease toward the target lane.
func (v *Vehicle) drive() {
	if v.Phase == Crashed || v.Phase == Towed {
		return
	}
	if v.Moving && !v.ForcedStop {
		v.step()
	}
	v.ease()
}

func (v *Vehicle) step() {
	if v.Forward() {
		v.X += v.Speed
	} else {
		v.X -= v.Speed
	}
}

func (v *Vehicle) ease() {
	if math.Abs(v.TargetY-v.Y) > SnapEpsilon {
		v.Y += (v.TargetY - v.Y) * LaneEase
		return
	}
	v.Y = v.TargetY
}

// reached reports whether x has reached or passed mark in the direction of
// travel.
func (v *Vehicle) reached(mark float64) bool {
	if v.Forward() {
		return v.X >= mark
	}
	return v.X <= mark
}

// behind returns mark shifted back against the direction of travel by d.
func (v *Vehicle) behind(mark, d float64) float64 {
	if v.Forward() {
		return mark - d
	}
	return mark + d
}

// ahead returns mark shifted along the direction of travel by d.
func (v *Vehicle) ahead(mark, d float64) float64 {
	if v.Forward() {
		return mark + d
	}
	return mark - d
}

// MakeReckless turns the vehicle into the trailing party of a pending
// accident.
func (v *Vehicle) MakeReckless() {
	v.Phase = Reckless
	v.Speed *= RecklessSpeedFactor
	v.LaneLocked = true
}

// MakeAccidentTarget turns the vehicle into the leading party of a pending
// accident.
func (v *Vehicle) MakeAccidentTarget() {
	v.Phase = AccidentTarget
	v.Speed *= TargetSpeedFactor
	v.LaneLocked = true
}

// Crash freezes the vehicle in place.
func (v *Vehicle) Crash() {
	v.Phase = Crashed
	v.Moving = false
}

// AttachTo hooks the vehicle behind a tow truck.
func (v *Vehicle) AttachTo(tower arena.Handle, offset float64, towerY float64) {
	v.Phase = Towed
	v.Tower = tower
	v.TowOffset = offset
	v.Y = towerY
	v.TargetY = towerY
}

// Follow pins a towed vehicle to its tower's position.
func (v *Vehicle) Follow(tower *Vehicle) {
	v.X = tower.X + v.TowOffset
	v.Y = tower.Y
}
