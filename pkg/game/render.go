package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/dispatcher/pkg/background"
	"github.com/golangdaddy/dispatcher/pkg/road"
	"github.com/golangdaddy/dispatcher/pkg/sim"
	"github.com/golangdaddy/dispatcher/pkg/ui"
	"github.com/golangdaddy/dispatcher/pkg/vehicle"
)

// Scenery strip placement in world units.
const (
	sceneryMargin = 2000.0
	jungleTop     = -450.0
	sandTop       = 650.0
	seaTop        = 700.0
	stripHeight   = 350.0
	tileWidth     = 512
)

var (
	grass     = color.RGBA{0, 117, 44, 255}
	median    = color.RGBA{194, 178, 128, 255}
	asphalt   = color.RGBA{40, 40, 40, 255}
	curb      = color.RGBA{130, 130, 130, 255}
	laneLine  = color.RGBA{255, 255, 255, 178}
	centreRun = color.RGBA{253, 249, 0, 255}
	sand      = color.RGBA{237, 201, 175, 255}
	darkGrey  = color.RGBA{80, 80, 80, 255}
	alertRed  = color.RGBA{230, 41, 55, 230}
	wreckTint = color.RGBA{230, 41, 55, 255}

	carPalette = [sim.CarVariants]color.RGBA{
		{0, 121, 241, 255},
		{0, 158, 47, 255},
		{200, 122, 255, 255},
		{127, 106, 79, 255},
		{102, 191, 255, 255},
	}
)

// house is a roadside building; kind picks its shape.
type house struct {
	X, Y float64
	kind int
}

// houses lines both verges, mirrored on the jungle side.
var houses = []house{
	{-1500, 440, 1}, {-1250, 423, 2}, {-1020, 440, 1}, {-850, 410, 0}, {-600, 410, 0},
	{-250, 440, 1}, {250, 410, 0}, {600, 440, 1}, {850, 423, 2}, {1100, 440, 1},
	{1400, 410, 0}, {2400, 440, 1}, {2600, 410, 0}, {2900, 440, 1}, {3200, 410, 0},
	{3550, 423, 2}, {3850, 423, 2}, {4100, 423, 2}, {4300, 410, 0}, {4700, 440, 1},
	{5000, 423, 2},
	{-1500, -125, 1}, {-1250, -125, 2}, {-1020, -125, 1}, {-850, -145, 0}, {-600, -145, 0},
	{-250, -125, 1}, {0, -125, 1}, {250, -145, 0}, {600, -118, 1}, {850, -125, 2},
	{1100, -118, 1}, {1400, -145, 0}, {2050, -118, 1}, {2400, -118, 1}, {2600, -145, 0},
	{2950, -118, 1}, {3200, -145, 0}, {3550, -125, 2}, {3850, -125, 2}, {4100, -125, 2},
	{4300, -145, 0}, {4700, -118, 1}, {5000, -125, 2},
}

// scenery holds the generated strip textures.
type scenery struct {
	jungle *ebiten.Image
	sea    *ebiten.Image
}

func newScenery(seed uint64) *scenery {
	gen := background.NewGenerator(tileWidth, int(stripHeight))
	return &scenery{jungle: gen.Jungle(seed), sea: gen.Sea(seed + 1)}
}

// worldRect fills a world-space rectangle.
func worldRect(dst *ebiten.Image, cam ebiten.GeoM, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(cam)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(ui.Pixel(), op)
}

func worldText(dst *ebiten.Image, cam ebiten.GeoM, str string, x, y, size float64, clr color.Color) {
	var geo ebiten.GeoM
	geo.Translate(x, y)
	geo.Concat(cam)
	ui.DrawTextGeoM(dst, str, geo, size, clr)
}

// drawWorld renders everything under the camera.
func (g *Game) drawWorld(screen *ebiten.Image, snap sim.Snapshot, elapsed float64) {
	cam := g.camera.GeoM()
	screen.Fill(grass)

	drawRoad(screen, cam)
	g.scenery.draw(screen, cam, elapsed)
	drawLight(screen, cam, snap.OutboundLight)
	drawLight(screen, cam, snap.InboundLight)
	drawLandmarks(screen, cam, snap, elapsed)
	for _, v := range snap.Vehicles {
		drawVehicle(screen, cam, v, snap.Alert)
	}
}

func drawRoad(dst *ebiten.Image, cam ebiten.GeoM) {
	left, width := -5000.0, road.WorldWidth+10000
	gapY := road.RoadYTop + road.RoadHeight
	worldRect(dst, cam, left, gapY, width, road.RoadYBottom-gapY, median)

	for _, top := range []float64{road.RoadYTop, road.RoadYBottom} {
		worldRect(dst, cam, left, top, width, road.RoadHeight, asphalt)
		for i := 1; i < road.LaneCount; i++ {
			worldRect(dst, cam, left, top+float64(i)*road.LaneHeight, width, 1, laneLine)
		}
		for x := left; x < road.WorldWidth+5000; x += 80 {
			worldRect(dst, cam, x, top+road.RoadHeight/2-3, 40, 6, centreRun)
		}
	}
	worldRect(dst, cam, left, road.RoadYTop-20, width, 20, curb)
	worldRect(dst, cam, left, road.RoadYBottom+road.RoadHeight, width, 20, curb)
}

// draw tiles the jungle above the road and the sea below it. Alternate sea
// tiles are mirrored and the water bobs on a travelling sine.
func (s *scenery) draw(dst *ebiten.Image, cam ebiten.GeoM, elapsed float64) {
	worldRect(dst, cam, -sceneryMargin, sandTop, road.WorldWidth+2*sceneryMargin, 500, sand)

	tw := float64(tileWidth)
	for i, x := 0, -sceneryMargin; x < road.WorldWidth+sceneryMargin; i, x = i+1, x+tw {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, jungleTop)
		op.GeoM.Concat(cam)
		dst.DrawImage(s.jungle, op)

		wave := math.Sin(elapsed*2+x*0.005) * 5
		op = &ebiten.DrawImageOptions{}
		if i%2 == 1 {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(tw, 0)
		}
		op.GeoM.Translate(x, seaTop+wave)
		op.GeoM.Concat(cam)
		dst.DrawImage(s.sea, op)
	}
}

func drawLight(dst *ebiten.Image, cam ebiten.GeoM, l sim.LightSnapshot) {
	worldRect(dst, cam, l.X, l.Y, road.LightWidth, road.LightHeight, darkGrey)
	redLamp, greenLamp := color.RGBA{230, 41, 55, 77}, color.RGBA{0, 228, 48, 255}
	if l.Red {
		redLamp, greenLamp = color.RGBA{230, 41, 55, 255}, color.RGBA{0, 228, 48, 77}
	}
	ui.FillCircle(dst, cam, l.X+10, l.Y+15, 8, redLamp)
	ui.FillCircle(dst, cam, l.X+10, l.Y+45, 8, greenLamp)
}

// drawArrow draws a bouncing down arrow with a label, tip at (x, y+70).
func drawArrow(dst *ebiten.Image, cam ebiten.GeoM, label string, x, y float64, clr color.RGBA) {
	worldRect(dst, cam, x-10, y, 20, 40, clr)
	ui.FillFan(dst, cam, x, y+50, [][2]float64{{x, y + 70}, {x + 25, y + 40}, {x - 25, y + 40}}, clr)
	worldText(dst, cam, label, x-ui.TextWidth(label, 20)/2, y-30, 20, clr)
}

func drawLandmarks(dst *ebiten.Image, cam ebiten.GeoM, snap sim.Snapshot, elapsed float64) {
	bounce := math.Sin(elapsed*6) * 8

	for _, h := range houses {
		drawHouse(dst, cam, h)
	}

	// hospital by the inbound road's far end
	hy := road.RoadYBottom + road.RoadHeight + 10
	worldRect(dst, cam, 10, hy, 130, 110, color.RGBA{235, 235, 235, 255})
	worldRect(dst, cam, 65, hy+25, 20, 60, wreckTint)
	worldRect(dst, cam, 45, hy+45, 60, 20, wreckTint)
	drawArrow(dst, cam, "HOSPITAL", road.HospitalX-5, 350+bounce, color.RGBA{230, 41, 55, 204})

	sx := road.WorldWidth/2 - 130
	worldRect(dst, cam, sx, 430, 150, 100, color.RGBA{190, 90, 60, 255})
	worldRect(dst, cam, sx, 420, 150, 14, color.RGBA{120, 50, 35, 255})
	for i := 0; i < 4; i++ {
		worldRect(dst, cam, sx+14+float64(i)*34, 450, 20, 20, color.RGBA{200, 230, 255, 255})
	}
	drawArrow(dst, cam, "SCHOOL", road.WorldWidth/2-65, 350+bounce, color.RGBA{255, 161, 0, 204})

	if snap.Accident.State == sim.AccidentActive.String() {
		drawArrow(dst, cam, "ACCIDENT!", snap.Accident.X, snap.Accident.Y-100+bounce, color.RGBA{230, 41, 55, 230})
	}
}

func drawHouse(dst *ebiten.Image, cam ebiten.GeoM, h house) {
	walls := [...]color.RGBA{{230, 220, 190, 255}, {200, 170, 140, 255}, {170, 200, 210, 255}}
	roofs := [...]color.RGBA{{150, 60, 50, 255}, {90, 70, 60, 255}, {60, 90, 120, 255}}
	w := 90.0 + 20*float64(h.kind)
	worldRect(dst, cam, h.X, h.Y+20, w, 70, walls[h.kind])
	worldRect(dst, cam, h.X-6, h.Y, w+12, 22, roofs[h.kind])
	worldRect(dst, cam, h.X+w/2-10, h.Y+55, 20, 35, color.RGBA{90, 60, 40, 255})
}

// BodyColor picks a vehicle's paint. Wrecks keep their shape but are drawn
// red.
func BodyColor(v sim.VehicleSnapshot) color.RGBA {
	if v.Crashed {
		return wreckTint
	}
	switch v.Role {
	case vehicle.Ambulance.String():
		return color.RGBA{245, 245, 245, 255}
	case vehicle.TowTruck.String():
		return color.RGBA{255, 161, 0, 255}
	case vehicle.SchoolBus.String():
		return color.RGBA{253, 209, 0, 255}
	}
	return carPalette[((v.Variant%sim.CarVariants)+sim.CarVariants)%sim.CarVariants]
}

// drawVehicle draws a top-down body with its windscreen on the leading end.
func drawVehicle(dst *ebiten.Image, cam ebiten.GeoM, v sim.VehicleSnapshot, alert bool) {
	w, h := road.VehicleWidth, road.VehicleHeight
	outline := color.RGBA{20, 20, 20, 255}

	worldRect(dst, cam, v.X, v.Y, w, h, outline)
	worldRect(dst, cam, v.X+2, v.Y+2, w-4, h-4, BodyColor(v))

	// wheels
	wheel := color.RGBA{30, 30, 30, 255}
	for _, wx := range []float64{10, w - 24} {
		worldRect(dst, cam, v.X+wx, v.Y-3, 14, 5, wheel)
		worldRect(dst, cam, v.X+wx, v.Y+h-2, 14, 5, wheel)
	}

	front := v.X + w - 24
	if !v.Forward {
		front = v.X + 6
	}
	glass := color.RGBA{150, 200, 255, 220}
	worldRect(dst, cam, front, v.Y+6, 18, h-12, glass)

	switch v.Role {
	case vehicle.Ambulance.String():
		worldRect(dst, cam, v.X+w/2-4, v.Y+10, 8, 20, wreckTint)
		worldRect(dst, cam, v.X+w/2-10, v.Y+16, 20, 8, wreckTint)
		if alert {
			worldRect(dst, cam, v.X+w/2-16, v.Y+2, 32, 5, alertRed)
		} else {
			worldRect(dst, cam, v.X+w/2-16, v.Y+2, 32, 5, color.RGBA{0, 82, 172, 230})
		}
	case vehicle.TowTruck.String():
		rear := v.X - 12
		if !v.Forward {
			rear = v.X + w
		}
		worldRect(dst, cam, rear, v.Y+h/2-3, 12, 6, darkGrey)
	case vehicle.SchoolBus.String():
		for i := 0; i < 4; i++ {
			worldRect(dst, cam, v.X+28+float64(i)*11, v.Y+6, 7, h-12, glass)
		}
	}
}
