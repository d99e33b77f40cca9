package sim

import (
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// CarVariants is the number of car body styles.
const CarVariants = 5

var roadways = [...]road.Roadway{road.Outbound, road.Inbound}

func (s *Simulation) spawnTraffic(dt float64) {
	for _, rw := range roadways {
		if s.spawnInterval[rw] == 0 {
			s.spawnInterval[rw] = s.rollSpawnInterval()
		}
		s.spawnTimer[rw] += dt
		if s.spawnTimer[rw] < s.spawnInterval[rw] {
			continue
		}
		s.spawnTimer[rw] = 0
		s.spawnCar(rw)
		s.spawnInterval[rw] = s.rollSpawnInterval()
	}
}

// rollSpawnInterval picks the wait before the next car, in tenths of a
// second within the configured window.
func (s *Simulation) rollSpawnInterval() float64 {
	low := int(s.cfg.GetSpawnIntervalMin() * 10)
	high := int(s.cfg.GetSpawnIntervalMax() * 10)
	if iv := float64(s.rng.IntRange(low, high)) / 10; iv > 0 {
		return iv
	}
	return 0.1
}

func (s *Simulation) spawnCar(rw road.Roadway) *vehicle.Vehicle {
	lane := s.rng.IntRange(0, road.LaneCount-1)
	speed := 2.0 + float64(s.rng.IntRange(0, 5))/10
	variant := s.rng.IntRange(0, CarVariants-1)

	v := vehicle.NewCar(0, rw, lane, speed, variant)
	s.add(v)
	s.logger.Debug("car spawned", "id", v.ID, "roadway", rw, "lane", lane, "speed", speed)
	return v
}
