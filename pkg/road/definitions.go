package road

// World dimensions in world units.
const (
	WorldWidth = 4000.0

	RoadYTop    = 110.0
	RoadYBottom = 280.0
	RoadHeight  = 140.0
	LaneHeight  = 45.0
	LaneCount   = 3

	// laneInset is the gap between a road's top edge and the top of lane 0.
	laneInset = 10.0
)

// Vehicle footprint and spacing.
const (
	VehicleWidth  = 90.0
	VehicleHeight = 40.0
	SafeDistance  = 45.0
)

// Spawn and removal margins.
const (
	OffscreenMargin = 1500.0
	// WreckCullX is the x beyond which crashed, towed and accident vehicles
	// are removed on the leftward roadway.
	WreckCullX = -2000.0
	// TowCullX is the x beyond which a tow truck is removed.
	TowCullX = -3000.0
	// DrivableInset trims the ends of the road where no accident may start.
	DrivableInset = 100.0
)

// Landmarks.
const (
	SchoolX   = WorldWidth/2 + 100
	HospitalX = 80.0
)

// Lane indices with a fixed meaning.
const (
	LaneFast      = 0
	LaneMiddle    = 1
	LaneBus       = 2
	laneTolerance = 5.0
)
