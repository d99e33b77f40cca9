package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/dispatcher/pkg/road"
)

const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	ZoomStep = 0.1
	// PanSpeed is screen pixels per frame; world speed shrinks as zoom grows.
	PanSpeed = 15.0
)

// Camera looks at a world point and keeps it in the middle of the view.
type Camera struct {
	TargetX, TargetY float64
	Zoom             float64
	ViewW, ViewH     float64
}

// NewCamera centres the road in a view of the given size.
func NewCamera(viewW, viewH int) Camera {
	return Camera{
		TargetX: road.WorldWidth / 2,
		TargetY: float64(viewH) / 2,
		Zoom:    1,
		ViewW:   float64(viewW),
		ViewH:   float64(viewH),
	}
}

// ZoomBy applies wheel notches, clamped to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(notches float64) {
	c.Zoom = min(MaxZoom, max(MinZoom, c.Zoom+notches*ZoomStep))
}

// Pan moves the target sideways; dir is -1 for left, +1 for right. The target
// never leaves the world.
func (c *Camera) Pan(dir float64) {
	c.TargetX = min(road.WorldWidth, max(0, c.TargetX+dir*PanSpeed/c.Zoom))
}

// GeoM maps world coordinates to screen coordinates.
func (c Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.TargetX, -c.TargetY)
	g.Scale(c.Zoom, c.Zoom)
	g.Translate(c.ViewW/2, c.ViewH/2)
	return g
}

// Reset recentres the view at zoom 1.
func (c *Camera) Reset() {
	*c = NewCamera(int(c.ViewW), int(c.ViewH))
}
