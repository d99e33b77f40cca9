package road

import "math"

// Roadway identifies one of the two one-way traffic flows.
type Roadway int

const (
	// Outbound is the top roadway; traffic moves toward increasing x.
	Outbound Roadway = iota
	// Inbound is the bottom roadway; traffic moves toward decreasing x.
	Inbound
)

func (r Roadway) String() string {
	switch r {
	case Outbound:
		return "outbound"
	case Inbound:
		return "inbound"
	}
	return "unknown"
}

// Forward reports whether traffic on the roadway advances toward increasing x.
func (r Roadway) Forward() bool {
	return r == Outbound
}

// TopY returns the y of the roadway's upper edge.
func (r Roadway) TopY() float64 {
	if r == Outbound {
		return RoadYTop
	}
	return RoadYBottom
}

// LaneY returns the y a vehicle in the given lane settles on.
// Lanes outside [0, LaneCount) are clamped.
func (r Roadway) LaneY(lane int) float64 {
	if lane < 0 {
		lane = 0
	}
	if lane >= LaneCount {
		lane = LaneCount - 1
	}
	return r.TopY() + laneInset + float64(lane)*LaneHeight
}

// LaneAt returns the lane whose y is within tolerance of y, defaulting to
// lane 0 when y sits between lanes.
func (r Roadway) LaneAt(y float64) int {
	for lane := LaneCount - 1; lane > 0; lane-- {
		if SameLane(y, r.LaneY(lane)) {
			return lane
		}
	}
	return LaneFast
}

// NextLaneY returns the y of the lane after the one at y, wrapping around.
func (r Roadway) NextLaneY(y float64) float64 {
	return r.LaneY((r.LaneAt(y) + 1) % LaneCount)
}

// SpawnX returns the off-screen x where new traffic enters the roadway.
func (r Roadway) SpawnX() float64 {
	if r.Forward() {
		return -OffscreenMargin
	}
	return WorldWidth + OffscreenMargin
}

// SameLane reports whether two lane y values refer to the same lane.
func SameLane(a, b float64) bool {
	return math.Abs(a-b) < laneTolerance
}

// IsOffscreen reports whether x has left the world in the direction of travel.
func IsOffscreen(x float64, forward bool) bool {
	if forward {
		return x > WorldWidth+OffscreenMargin
	}
	return x < -OffscreenMargin
}
