package vehicle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/road"
)

const frame = 1.0 / 60

func TestCarDrivesInDirection(t *testing.T) {
	in := NewCar(1, road.Inbound, 0, 2, 0)
	in.X = 1000
	in.Update(frame, false)
	assert.Equal(t, 998.0, in.X)

	out := NewCar(2, road.Outbound, 0, 2, 0)
	out.Update(frame, false)
	assert.Equal(t, -1498.0, out.X)

	out.Update(frame, true)
	assert.Equal(t, -1498.0, out.X, "forced stop")
	assert.True(t, out.ForcedStop)
}

func TestLaneEaseConvergesMonotonically(t *testing.T) {
	v := NewCar(1, road.Inbound, 0, 2, 0)
	v.TargetY = road.Inbound.LaneY(2)

	prev := math.Abs(v.TargetY - v.Y)
	for i := 0; i < 200; i++ {
		v.Update(frame, false)
		gap := math.Abs(v.TargetY - v.Y)
		require.LessOrEqual(t, gap, prev, "frame %d", i)
		prev = gap
		if gap == 0 {
			break
		}
	}
	assert.Equal(t, v.TargetY, v.Y, "snapped")
}

func TestLaneEaseSnap(t *testing.T) {
	v := NewCar(1, road.Inbound, 0, 2, 0)
	v.TargetY = v.Y + 0.5
	v.Update(frame, false)
	assert.Equal(t, v.TargetY, v.Y)
}

func TestRecklessIgnoresStop(t *testing.T) {
	v := NewCar(1, road.Inbound, 0, 2, 0)
	v.X = 1000
	v.MakeReckless()
	assert.Equal(t, Reckless, v.Phase)
	assert.True(t, v.LaneLocked)
	assert.InDelta(t, 5.6, v.Speed, 1e-9)

	v.Update(frame, true)
	assert.InDelta(t, 994.4, v.X, 1e-9)
	assert.False(t, v.ForcedStop)
}

func TestCrashedAndTowedDoNotMove(t *testing.T) {
	v := NewCar(1, road.Inbound, 0, 2, 0)
	v.X = 1000
	v.TargetY = road.Inbound.LaneY(1)
	v.Crash()
	v.Update(frame, false)
	assert.Equal(t, 1000.0, v.X)
	assert.Equal(t, road.Inbound.LaneY(0), v.Y)

	tow := NewTowTruck(2, road.Inbound, v.Y, 1000)
	tow.X = 700
	v.AttachTo(arena.Handle{}, 100, tow.Y)
	assert.Equal(t, Towed, v.Phase)
	v.Update(frame, false)
	assert.Equal(t, 1000.0, v.X)
	v.Follow(tow)
	assert.Equal(t, 800.0, v.X)
}

func TestSchoolBus(t *testing.T) {
	b := NewSchoolBus(1, road.Inbound)
	assert.Equal(t, road.Inbound.LaneY(road.LaneBus), b.Y)
	b.X = road.SchoolX + 1

	b.Update(frame, true)
	assert.Equal(t, road.SchoolX+1, b.X, "stopped on the way")

	b.Update(frame, false)
	assert.Equal(t, road.SchoolX, b.X)
	assert.Equal(t, WaitAtSchool, b.Bus.Stage)

	for i := 0; i < 239; i++ {
		b.Update(frame, false)
	}
	assert.Equal(t, WaitAtSchool, b.Bus.Stage)
	b.Update(0.1, true)
	assert.Equal(t, LeavingSchool, b.Bus.Stage, "dwell ends even when stopped")
	assert.Equal(t, road.SchoolX, b.X)

	b.Update(frame, true)
	assert.Equal(t, road.SchoolX, b.X)
	b.Update(frame, false)
	assert.Equal(t, road.SchoolX-BusSpeed, b.X)
}

func TestAmbulanceRun(t *testing.T) {
	a := NewAmbulance(1, road.Inbound)
	assert.Equal(t, road.Inbound.LaneY(road.LaneMiddle), a.Y)
	assert.Equal(t, Patrol, a.Stage())

	a.X = 1500
	a.AssignAccident(1000, road.Inbound.LaneY(0))
	assert.Equal(t, ToAccident, a.Stage())

	// forced stops do not hold it back on the way in
	for a.Stage() == ToAccident {
		a.Update(frame, true)
	}
	assert.Equal(t, 1160.0, a.X)
	assert.False(t, a.Moving)
	assert.Equal(t, WaitAtAccident, a.Stage())

	a.Update(AccidentDwell, false)
	assert.Equal(t, ToHospital, a.Stage())
	assert.True(t, a.Moving)

	a.Update(frame, true)
	assert.Equal(t, 1160.0, a.X, "held by forced stop")

	a.X = road.HospitalX + 1
	a.Update(frame, false)
	assert.Equal(t, road.HospitalX+1-AmbulanceSpeed, a.X)
	a.Update(frame, false)
	assert.Equal(t, WaitAtHospital, a.Stage())

	a.Update(HospitalDwell, false)
	assert.Equal(t, LeavingHospital, a.Stage())
	x := a.X
	a.Update(frame, true)
	assert.Equal(t, x-AmbulanceSpeed, a.X, "leaving ignores forced stop")
}

func TestAssignAccidentIgnoredByCars(t *testing.T) {
	v := NewCar(1, road.Inbound, 0, 2, 0)
	v.AssignAccident(10, 10)
	assert.Nil(t, v.Ambulance)
	assert.Equal(t, Patrol, v.Stage())
}

func TestTowTruckWork(t *testing.T) {
	tow := NewTowTruck(1, road.Inbound, road.Inbound.LaneY(0), 1000)
	tow.X = 880 + TowSpeed

	tow.Update(frame, false)
	assert.Equal(t, 880.0, tow.X)
	assert.False(t, tow.Working())

	tow.Update(frame, false)
	assert.True(t, tow.Working(), "reached work spot")
	assert.Equal(t, 880.0, tow.X, "no motion on the arrival frame")

	tow.Update(TowWorkDuration, false)
	assert.False(t, tow.PickedUp(), "needs strictly more than the work duration")
	tow.Update(frame, false)
	assert.True(t, tow.PickedUp())
	assert.False(t, tow.Working())
	assert.True(t, tow.Moving)

	tow.Update(frame, false)
	assert.Equal(t, 880.0-TowSpeed, tow.X)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "tow_truck", TowTruck.String())
	assert.Equal(t, "accident_target", AccidentTarget.String())
	assert.Equal(t, "to_hospital", ToHospital.String())
	assert.Equal(t, "wait_at_school", WaitAtSchool.String())
}
