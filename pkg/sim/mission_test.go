package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

func failMission(s *Simulation) {
	s.mission.raise(CallBus, s.logger)
	for i := 0; i < 8; i++ {
		s.Advance(1)
	}
}

func TestMissionCountdownCostsALife(t *testing.T) {
	s := newTestSim()
	s.mission.raise(CallBus, s.logger)

	for i := 0; i < 7; i++ {
		s.Advance(1)
	}
	assert.Equal(t, CallBus, s.mission.Kind)
	assert.Equal(t, 3, s.mission.Lives)
	assert.InDelta(t, 1.0/8, s.Snapshot().Mission.RemainingRatio, 1e-9)

	s.Advance(1)
	assert.Equal(t, MissionNone, s.mission.Kind)
	assert.Equal(t, 2, s.mission.Lives)
	assert.False(t, s.GameOver())
	assert.Zero(t, s.Snapshot().Mission.RemainingRatio)
}

func TestThreeFailuresEndTheGame(t *testing.T) {
	s := newTestSim()
	failMission(s)
	failMission(s)
	assert.Equal(t, 1, s.mission.Lives)
	failMission(s)

	require.True(t, s.GameOver())
	assert.Zero(t, s.mission.Lives)
	assert.True(t, s.Snapshot().GameOver)

	before := s.Snapshot()
	s.Advance(1)
	s.DispatchAmbulance()
	s.DispatchSchoolBus()
	s.DispatchTow()
	s.TriggerAccidentNow()
	assert.Equal(t, before, s.Snapshot(), "frozen after game over")

	s.Reset()
	assert.False(t, s.GameOver())
	assert.Equal(t, 3, s.mission.Lives)
	s.DispatchSchoolBus()
	assert.Equal(t, 1, s.inbound.Len())
}

func TestDispatchResolvesMatchingMission(t *testing.T) {
	s := newTestSim()
	s.mission.raise(CallBus, s.logger)

	s.DispatchAmbulance()
	assert.Equal(t, CallBus, s.mission.Kind, "ambulance does not answer a bus call")

	s.DispatchSchoolBus()
	assert.Equal(t, MissionNone, s.mission.Kind)
	assert.Equal(t, 3, s.mission.Lives)
}

func TestBusMissionRoll(t *testing.T) {
	rng := &scriptedRand{fn: func(min, max int) int {
		if max == 100 {
			return 0
		}
		return max
	}}
	s := newTestSim(WithRand(rng))

	for i := 0; i < 14; i++ {
		s.Advance(1)
	}
	assert.Equal(t, MissionNone, s.mission.Kind, "cooldown still running")

	s.Advance(1)
	require.Equal(t, CallBus, s.mission.Kind)
	assert.Equal(t, 15.0, s.busCooldown)
	assert.Equal(t, 8.0, s.mission.Remaining)

	s.DispatchSchoolBus()
	assert.Equal(t, MissionNone, s.mission.Kind)
	last := s.inbound.Entries()[s.inbound.Len()-1].Value
	assert.Equal(t, vehicle.SchoolBus, last.Role)
	assert.Equal(t, road.Inbound.LaneY(road.LaneBus), last.Y)
}

func TestBusRollWaitsForFreeMissionSlot(t *testing.T) {
	rng := &scriptedRand{fn: func(min, max int) int {
		if max == 100 {
			return 0
		}
		return max
	}}
	s := newTestSim(WithRand(rng))
	s.busCooldown = 0
	s.mission.raise(CallTow, s.logger)

	s.Advance(frame)
	assert.Equal(t, CallTow, s.mission.Kind)
	assert.Less(t, s.busCooldown, 0.0)
}

func TestCallTowRaisedOnWayToHospital(t *testing.T) {
	s := newTestSim()
	stageActiveAccident(t, s)
	s.DispatchAmbulance()
	require.Equal(t, MissionNone, s.mission.Kind)

	amb := s.inbound.Entries()[2].Value
	require.Equal(t, vehicle.ToAccident, amb.Stage())
	amb.Ambulance.Stage = vehicle.ToHospital

	s.Advance(frame)
	assert.Equal(t, CallTow, s.mission.Kind)
	assert.Equal(t, road.Inbound.LaneY(road.LaneBus), amb.TargetY)

	s.DispatchTow()
	assert.Equal(t, MissionNone, s.mission.Kind)
	s.Advance(frame)
	assert.Equal(t, MissionNone, s.mission.Kind, "tow already on the road")
}

func TestMissionRemainingRatio(t *testing.T) {
	m := newMission(8, 3)
	assert.Zero(t, m.RemainingRatio())
	m.Kind = CallTow
	m.Remaining = 4
	assert.Equal(t, 0.5, m.RemainingRatio())
	m.Remaining = 20
	assert.Equal(t, 1.0, m.RemainingRatio())
	assert.Equal(t, "call_tow", m.Kind.String())
}
