package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/config"
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

const frame = 1.0 / 60

// scriptedRand answers every roll through fn.
type scriptedRand struct {
	fn    func(min, max int) int
	calls int
}

func (r *scriptedRand) IntRange(min, max int) int {
	r.calls++
	return r.fn(min, max)
}

// maxRand always rolls the top of the range: cars every 7s in the bus lane,
// no random accidents and no bus missions.
func maxRand() *scriptedRand {
	return &scriptedRand{fn: func(_, max int) int { return max }}
}

type countingSounds struct{ ambulances int }

func (c *countingSounds) AmbulanceDispatched() { c.ambulances++ }

func newTestSim(opts ...Option) *Simulation {
	return New(config.Empty(), append([]Option{WithRand(maxRand())}, opts...)...)
}

func placeCar(s *Simulation, rw road.Roadway, lane int, x, speed float64) (arena.Handle, *vehicle.Vehicle) {
	v := vehicle.NewCar(0, rw, lane, speed, 0)
	v.X = x
	return s.add(v), v
}

// stageActiveAccident puts two cars in the inbound fast lane 250 apart, stages
// an accident between them and runs until they collide.
func stageActiveAccident(t *testing.T, s *Simulation) (lead, trail *vehicle.Vehicle) {
	t.Helper()
	_, lead = placeCar(s, road.Inbound, road.LaneFast, 2500, 2)
	_, trail = placeCar(s, road.Inbound, road.LaneFast, 2750, 2)
	s.TriggerAccidentNow()
	require.Equal(t, AccidentPending, s.accident.State)

	for i := 0; i < 200 && s.accident.State != AccidentActive; i++ {
		s.Advance(frame)
	}
	require.Equal(t, AccidentActive, s.accident.State)
	return lead, trail
}

func TestNewInitialState(t *testing.T) {
	s := newTestSim()
	snap := s.Snapshot()

	assert.Empty(t, snap.Vehicles)
	assert.Equal(t, "none", snap.Accident.State)
	assert.Empty(t, snap.Accident.ID)
	assert.Equal(t, "none", snap.Mission.Kind)
	assert.Equal(t, 3, snap.Lives)
	assert.False(t, snap.GameOver)
	assert.True(t, snap.InboundLight.Red)
	assert.Equal(t, 1810.0, snap.InboundLight.StopLineX)
	assert.Equal(t, 1980.0, snap.OutboundLight.StopLineX)
}

func TestNewDefaults(t *testing.T) {
	s := New(nil)
	require.NotNil(t, s.rng)
	require.NotNil(t, s.logger)
	assert.Equal(t, 3, s.mission.Lives)
	assert.Equal(t, 15.0, s.busCooldown)
	s.DispatchAmbulance() // silent sound hook
	assert.Equal(t, 1, s.inbound.Len())
}

func TestResetIdempotent(t *testing.T) {
	s := newTestSim()
	stageActiveAccident(t, s)
	s.DispatchTow()
	s.mission.raise(CallBus, s.logger)

	s.Reset()
	once := s.Snapshot()
	s.Reset()
	twice := s.Snapshot()

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("reset not idempotent (-once +twice):\n%s", diff)
	}
	assert.Empty(t, once.Vehicles)
	assert.Equal(t, "none", once.Accident.State)
	assert.Equal(t, "none", once.Mission.Kind)
	assert.Equal(t, 3, once.Lives)
	assert.False(t, once.GameOver)
	assert.False(t, s.waitingForTow)
}

func TestNegativeDeltaIsZero(t *testing.T) {
	build := func() *Simulation {
		s := newTestSim()
		placeCar(s, road.Inbound, road.LaneMiddle, 3000, 2)
		placeCar(s, road.Outbound, road.LaneFast, 500, 2)
		s.mission.raise(CallBus, s.logger)
		return s
	}
	neg, zero := build(), build()
	for i := 0; i < 10; i++ {
		neg.Advance(-1)
		zero.Advance(0)
	}

	if diff := cmp.Diff(zero.Snapshot(), neg.Snapshot()); diff != "" {
		t.Errorf("negative dt differs from zero dt:\n%s", diff)
	}
	assert.Equal(t, 8.0, neg.mission.Remaining)
}

func TestSpawnCadence(t *testing.T) {
	s := newTestSim()
	for i := 0; i < 6; i++ {
		s.Advance(1)
	}
	assert.Zero(t, s.inbound.Len())
	assert.Zero(t, s.outbound.Len())

	s.Advance(1)
	require.Equal(t, 1, s.inbound.Len())
	require.Equal(t, 1, s.outbound.Len())

	in := s.inbound.Entries()[0].Value
	assert.Equal(t, vehicle.Car, in.Role)
	assert.Equal(t, road.Inbound.LaneY(road.LaneBus), in.Y)
	assert.Equal(t, 2.5, in.Speed)
	assert.Equal(t, CarVariants-1, in.Variant)
	assert.Equal(t, road.Inbound.SpawnX()-2.5, in.X, "moved on its first frame")

	out := s.outbound.Entries()[0].Value
	assert.Equal(t, road.Outbound.SpawnX()+2.5, out.X)
	assert.NotEqual(t, in.ID, out.ID)
}

func TestCullOffscreen(t *testing.T) {
	s := newTestSim()
	placeCar(s, road.Inbound, road.LaneFast, -1501, 2)
	placeCar(s, road.Outbound, road.LaneFast, 5501, 2)
	_, keep := placeCar(s, road.Inbound, road.LaneFast, 3000, 2)
	_, marked := placeCar(s, road.Inbound, road.LaneMiddle, 3000, 2)
	marked.Remove = true

	s.Advance(frame)
	require.Equal(t, 1, s.inbound.Len())
	assert.Same(t, keep, s.inbound.Entries()[0].Value)
	assert.Zero(t, s.outbound.Len())
}

func TestAlertToggles(t *testing.T) {
	s := newTestSim()
	s.Advance(AlertPeriod)
	assert.False(t, s.Snapshot().Alert, "no ambulance")

	s.DispatchAmbulance()
	s.Advance(AlertPeriod)
	assert.True(t, s.Snapshot().Alert)
	s.Advance(AlertPeriod)
	assert.False(t, s.Snapshot().Alert)
	s.Advance(AlertPeriod)
	assert.True(t, s.Snapshot().Alert)
}

func TestSnapshotVehicles(t *testing.T) {
	s := newTestSim()
	placeCar(s, road.Outbound, road.LaneFast, 100, 2)
	s.DispatchSchoolBus()

	snap := s.Snapshot()
	require.Len(t, snap.Vehicles, 2)
	assert.Equal(t, "outbound", snap.Vehicles[0].Roadway)
	assert.True(t, snap.Vehicles[0].Forward)
	assert.Equal(t, "car", snap.Vehicles[0].Role)
	assert.Equal(t, "normal", snap.Vehicles[0].Phase)
	assert.Empty(t, snap.Vehicles[0].Stage)

	assert.Equal(t, "school_bus", snap.Vehicles[1].Role)
	assert.Equal(t, "to_school", snap.Vehicles[1].Stage)
	assert.False(t, snap.Vehicles[1].Forward)
}
