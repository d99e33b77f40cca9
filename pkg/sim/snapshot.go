package sim

import (
	"github.com/samber/lo"

	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// VehicleSnapshot is the render view of one vehicle.
type VehicleSnapshot struct {
	ID       uint64  `json:"id"`
	Roadway  string  `json:"roadway"`
	Role     string  `json:"role"`
	Phase    string  `json:"phase"`
	Stage    string  `json:"stage,omitempty"`
	Variant  int     `json:"variant"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Forward  bool    `json:"forward"`
	Moving   bool    `json:"moving"`
	Crashed  bool    `json:"crashed"`
	Towed    bool    `json:"towed"`
	Reckless bool    `json:"reckless"`
}

type LightSnapshot struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Red       bool    `json:"red"`
	StopLineX float64 `json:"stop_line_x"`
}

type AccidentSnapshot struct {
	State string  `json:"state"`
	ID    string  `json:"id,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type MissionSnapshot struct {
	Kind           string  `json:"kind"`
	Remaining      float64 `json:"remaining"`
	RemainingRatio float64 `json:"remaining_ratio"`
}

// Snapshot is a read-only copy of everything the render layer draws.
type Snapshot struct {
	Frame         uint64            `json:"frame"`
	Vehicles      []VehicleSnapshot `json:"vehicles"`
	OutboundLight LightSnapshot     `json:"outbound_light"`
	InboundLight  LightSnapshot     `json:"inbound_light"`
	Accident      AccidentSnapshot  `json:"accident"`
	Mission       MissionSnapshot   `json:"mission"`
	Lives         int               `json:"lives"`
	GameOver      bool              `json:"game_over"`
	Alert         bool              `json:"alert"`
}

func (s *Simulation) Snapshot() Snapshot {
	vehicles := make([]VehicleSnapshot, 0, s.outbound.Len()+s.inbound.Len())
	vehicles = append(vehicles, lo.Map(s.outbound.Entries(), snapshotEntry)...)
	vehicles = append(vehicles, lo.Map(s.inbound.Entries(), snapshotEntry)...)

	acc := AccidentSnapshot{State: s.accident.State.String()}
	if s.accident.State != AccidentNone {
		acc.ID = s.accident.ID.String()
		acc.X = s.accident.X
		acc.Y = s.accident.Y
	}

	return Snapshot{
		Frame:         s.frame,
		Vehicles:      vehicles,
		OutboundLight: snapshotLight(s.outboundLight, false),
		InboundLight:  snapshotLight(s.inboundLight, true),
		Accident:      acc,
		Mission: MissionSnapshot{
			Kind:           s.mission.Kind.String(),
			Remaining:      lo.Ternary(s.mission.Active(), s.mission.Remaining, 0),
			RemainingRatio: s.mission.RemainingRatio(),
		},
		Lives:    s.mission.Lives,
		GameOver: s.mission.GameOver,
		Alert:    s.alert,
	}
}

func snapshotEntry(e entry, _ int) VehicleSnapshot {
	v := e.Value
	vs := VehicleSnapshot{
		ID:       v.ID,
		Roadway:  v.Roadway.String(),
		Role:     v.Role.String(),
		Phase:    v.Phase.String(),
		Variant:  v.Variant,
		X:        v.X,
		Y:        v.Y,
		Forward:  v.Forward(),
		Moving:   v.Moving && !v.ForcedStop,
		Crashed:  v.Phase == vehicle.Crashed,
		Towed:    v.Phase == vehicle.Towed,
		Reckless: v.Phase == vehicle.Reckless,
	}
	switch {
	case v.Ambulance != nil:
		vs.Stage = v.Ambulance.Stage.String()
	case v.Bus != nil:
		vs.Stage = v.Bus.Stage.String()
	case v.Tow != nil:
		vs.Stage = lo.Ternary(v.Tow.PickedUp, "loaded", lo.Ternary(v.Tow.Working, "working", "en_route"))
	}
	return vs
}

func snapshotLight(tl *road.TrafficLight, facingLeftward bool) LightSnapshot {
	return LightSnapshot{
		X:         tl.X,
		Y:         tl.Y,
		Red:       tl.IsRed(),
		StopLineX: tl.StopLineX(facingLeftward),
	}
}
