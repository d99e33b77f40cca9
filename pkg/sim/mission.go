package sim

import "github.com/charmbracelet/log"

// MissionKind is the player objective currently on screen.
type MissionKind int

const (
	MissionNone MissionKind = iota
	CallAmbulance
	CallTow
	CallBus
)

func (k MissionKind) String() string {
	switch k {
	case MissionNone:
		return "none"
	case CallAmbulance:
		return "call_ambulance"
	case CallTow:
		return "call_tow"
	case CallBus:
		return "call_bus"
	}
	return "unknown"
}

// Mission tracks the active objective, its countdown and the lives left.
// Remaining is only meaningful while Kind is not MissionNone.
type Mission struct {
	Kind      MissionKind
	Remaining float64
	Max       float64
	Lives     int
	GameOver  bool
}

func newMission(max float64, lives int) Mission {
	return Mission{Max: max, Lives: lives}
}

// Active reports whether an objective is running.
func (m *Mission) Active() bool { return m.Kind != MissionNone }

// RemainingRatio is the fraction of the countdown left, in [0, 1].
func (m *Mission) RemainingRatio() float64 {
	if !m.Active() || m.Max <= 0 {
		return 0
	}
	r := m.Remaining / m.Max
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (m *Mission) raise(kind MissionKind, logger *log.Logger) {
	m.Kind = kind
	m.Remaining = m.Max
	logger.Info("mission raised", "mission", kind, "seconds", m.Max)
}

// resolve clears the mission if it matches kind.
func (m *Mission) resolve(kind MissionKind, logger *log.Logger) bool {
	if m.Kind != kind {
		return false
	}
	logger.Info("mission resolved", "mission", kind, "remaining", m.Remaining)
	m.Kind = MissionNone
	m.Remaining = 0
	return true
}

// tick counts the active mission down. When it runs out a life is lost.
func (m *Mission) tick(dt float64, logger *log.Logger) {
	if !m.Active() {
		return
	}
	m.Remaining -= dt
	if m.Remaining > 0 {
		return
	}
	logger.Warn("mission failed", "mission", m.Kind, "lives", m.Lives-1)
	m.Kind = MissionNone
	m.Remaining = 0
	if m.Lives > 0 {
		m.Lives--
	}
	if m.Lives <= 0 {
		m.GameOver = true
		logger.Warn("game over")
	}
}
