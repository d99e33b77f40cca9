package road

const (
	LightWidth  = 20.0
	LightHeight = 60.0
	// StopLineOffset is the distance from the light's box to its stop line.
	StopLineOffset = 40.0
	// StopZone is how close to the stop line a vehicle must be to halt on red.
	StopZone = 50.0
	// DefaultLightCycle is the time spent in each colour.
	DefaultLightCycle = 5.0
)

// TrafficLight gates a single stop line. It alternates between red and green,
// spending Cycle seconds in each.
type TrafficLight struct {
	X, Y  float64
	Cycle float64

	elapsed float64
	red     bool
}

// NewTrafficLight creates a light at (x, y) that starts red.
func NewTrafficLight(x, y, cycle float64) *TrafficLight {
	if cycle <= 0 {
		cycle = DefaultLightCycle
	}
	return &TrafficLight{X: x, Y: y, Cycle: cycle, red: true}
}

// Advance accumulates dt and toggles the light once the cycle has elapsed.
func (tl *TrafficLight) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	tl.elapsed += dt
	if tl.elapsed >= tl.Cycle {
		tl.elapsed = 0
		tl.red = !tl.red
	}
}

func (tl *TrafficLight) IsRed() bool   { return tl.red }
func (tl *TrafficLight) IsGreen() bool { return !tl.red }

// Elapsed returns the time spent in the current colour.
func (tl *TrafficLight) Elapsed() float64 { return tl.elapsed }

// StopLineX returns the x a vehicle approaching from the given side must not
// cross while the light is red. Leftward traffic stops before the box,
// rightward traffic after it.
func (tl *TrafficLight) StopLineX(facingLeftward bool) float64 {
	if facingLeftward {
		return tl.X - StopLineOffset
	}
	return tl.X + LightWidth + StopLineOffset
}

// Reset puts the light back to red with a fresh cycle.
func (tl *TrafficLight) Reset() {
	tl.elapsed = 0
	tl.red = true
}

// Lights returns the two lights in their fixed positions: one above the
// outbound roadway and one below the inbound roadway.
func Lights(cycle float64) (outbound, inbound *TrafficLight) {
	outbound = NewTrafficLight(WorldWidth/2-80, RoadYTop-80, cycle)
	inbound = NewTrafficLight(WorldWidth/2-150, RoadYBottom+RoadHeight+20, cycle)
	return outbound, inbound
}
