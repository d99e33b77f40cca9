// Package sim runs the dispatcher world: two one-way roadways with their
// traffic lights, the accident lifecycle on the inbound roadway and the
// mission and lives bookkeeping that turns it into a game.
//
// A Simulation is single threaded. Advance, the dispatch commands, Reset and
// Snapshot must be called from one goroutine.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/golangdaddy/dispatcher/pkg/arena"
	"github.com/golangdaddy/dispatcher/pkg/config"
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// AlertPeriod is how often the screen alert flips while an ambulance is out.
const AlertPeriod = 0.5

type Option func(*Simulation)

// WithRand replaces the default PCG source.
func WithRand(r Rand) Option {
	return func(s *Simulation) { s.rng = r }
}

// WithSounds installs the audio cue hook.
func WithSounds(snd Sounds) Option {
	return func(s *Simulation) { s.sounds = snd }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

type Simulation struct {
	cfg    *config.Tuning
	rng    Rand
	sounds Sounds
	logger *log.Logger

	outbound *arena.Arena[*vehicle.Vehicle]
	inbound  *arena.Arena[*vehicle.Vehicle]

	outboundLight *road.TrafficLight
	inboundLight  *road.TrafficLight

	accident Accident
	mission  Mission

	// waitingForTow holds back new accidents from the moment one is
	// triggered until its tow truck has left the world.
	waitingForTow bool

	spawnTimer    [2]float64
	spawnInterval [2]float64
	busCooldown   float64

	alert      bool
	alertTimer float64

	frame  uint64
	nextID uint64
}

// New builds a simulation in its initial state. A nil cfg uses defaults.
func New(cfg *config.Tuning, opts ...Option) *Simulation {
	if cfg == nil {
		cfg = config.Empty()
	}
	s := &Simulation{
		cfg:      cfg,
		sounds:   silent{},
		logger:   log.New(io.Discard),
		outbound: arena.New[*vehicle.Vehicle](),
		inbound:  arena.New[*vehicle.Vehicle](),
	}
	s.outboundLight, s.inboundLight = road.Lights(cfg.GetLightCycle())
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(cfg.GetSeed())
	}
	s.reset()
	return s
}

// Reset clears all vehicles, the accident, the mission, lives and cooldowns.
func (s *Simulation) Reset() {
	s.reset()
	s.logger.Info("simulation reset", "lives", s.mission.Lives)
}

func (s *Simulation) reset() {
	s.outbound.Clear()
	s.inbound.Clear()
	s.outboundLight.Reset()
	s.inboundLight.Reset()
	s.accident = Accident{}
	s.mission = newMission(s.cfg.GetMissionMax(), s.cfg.GetStartingLives())
	s.waitingForTow = false
	s.spawnTimer = [2]float64{}
	s.spawnInterval = [2]float64{}
	s.busCooldown = s.cfg.GetBusCooldown()
	s.alert = false
	s.alertTimer = 0
	s.frame = 0
	s.nextID = 0
}

// GameOver reports whether the lives have run out.
func (s *Simulation) GameOver() bool { return s.mission.GameOver }

// Advance runs one frame. Its phases run in a fixed order: timers and lights,
// spawns and random rolls, culling, the pending accident check, emergency
// assignment and towing, then the stop decisions and every vehicle's own
// update. Negative dt is treated as zero. Nothing happens after game over.
func (s *Simulation) Advance(dt float64) {
	if dt < 0 {
		s.logger.Debug("negative frame delta clamped", "dt", dt)
		dt = 0
	}
	if s.mission.GameOver {
		return
	}
	s.frame++

	s.advanceTimers(dt)
	if s.mission.GameOver {
		return
	}
	s.spawnTraffic(dt)
	s.rollEvents(dt)
	s.cull()
	s.checkPending()
	amb, tow := s.emergencyVehicles()
	s.resolveTow(tow)
	s.steerAmbulance(amb, tow)
	s.passInbound(dt, amb, tow)
	s.passOutbound(dt)
	s.followTowers()
}

func (s *Simulation) advanceTimers(dt float64) {
	s.mission.tick(dt, s.logger)
	s.outboundLight.Advance(dt)
	s.inboundLight.Advance(dt)

	if !s.ambulanceOut() {
		s.alert = false
		s.alertTimer = 0
		return
	}
	s.alertTimer += dt
	if s.alertTimer >= AlertPeriod {
		s.alert = !s.alert
		s.alertTimer = 0
	}
}

func (s *Simulation) rollEvents(dt float64) {
	if s.rng.IntRange(0, 1000) < s.cfg.GetAccidentChancePerMille() {
		s.triggerScan()
	}

	s.busCooldown -= dt
	if s.busCooldown <= 0 && !s.mission.Active() {
		if s.rng.IntRange(0, 100) < s.cfg.GetBusChancePercent() {
			s.mission.raise(CallBus, s.logger)
			s.busCooldown = s.cfg.GetBusCooldown()
		}
	}
}

func (s *Simulation) collection(rw road.Roadway) *arena.Arena[*vehicle.Vehicle] {
	if rw == road.Outbound {
		return s.outbound
	}
	return s.inbound
}

func (s *Simulation) light(rw road.Roadway) *road.TrafficLight {
	if rw == road.Outbound {
		return s.outboundLight
	}
	return s.inboundLight
}

// add gives v a fresh id and hands it to its roadway's collection.
func (s *Simulation) add(v *vehicle.Vehicle) arena.Handle {
	s.nextID++
	v.ID = s.nextID
	return s.collection(v.Roadway).Insert(v)
}
