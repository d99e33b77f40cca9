package ui

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// glyphHeight is the natural height of the bitmap font.
const glyphHeight = 16.0

var (
	face = text.NewGoXFace(bitmapfont.Face)

	pixelOnce sync.Once
	pixel     *ebiten.Image
)

// Pixel is a 1x1 white image. Scaled and tinted it draws any solid
// rectangle without allocating.
func Pixel() *ebiten.Image {
	pixelOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		pixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return pixel
}

// FillRect draws a solid rectangle in screen space.
func FillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(Pixel(), op)
}

// StrokeRect outlines a rectangle with the given border width.
func StrokeRect(dst *ebiten.Image, x, y, w, h, border float64, clr color.Color) {
	FillRect(dst, x, y, w, border, clr)
	FillRect(dst, x, y+h-border, w, border, clr)
	FillRect(dst, x, y, border, h, clr)
	FillRect(dst, x+w-border, y, border, h, clr)
}

// TextWidth is the width of str drawn at size.
func TextWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / glyphHeight
}

// DrawText draws str with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// DrawTextCentered draws str centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, str string, cx, cy, size float64, clr color.Color) {
	DrawText(dst, str, cx-TextWidth(str, size)/2, cy-size/2, size, clr)
}

// DrawTextGeoM draws str through an arbitrary transform, e.g. a world camera.
func DrawTextGeoM(dst *ebiten.Image, str string, geo ebiten.GeoM, size float64, clr color.Color) {
	scale := size / glyphHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// Button is a clickable rectangle with a label.
type Button struct {
	X, Y, W, H float64
	Label      string
}

// Contains reports whether the screen point (x, y) is over the button.
func (b Button) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Hovered reports whether the mouse cursor is over the button.
func (b Button) Hovered() bool {
	return b.Contains(ebiten.CursorPosition())
}

// Draw renders the button, using hover when the cursor is over it.
func (b Button) Draw(dst *ebiten.Image, base, hover color.Color) {
	bg := base
	if b.Hovered() {
		bg = hover
	}
	FillRect(dst, b.X, b.Y, b.W, b.H, bg)
	StrokeRect(dst, b.X, b.Y, b.W, b.H, 3, color.White)
	DrawTextCentered(dst, b.Label, b.X+b.W/2, b.Y+b.H/2, 28, color.White)
}

// StarPoints returns the ten outline points of a five-pointed star centred on
// (cx, cy), starting at the top and alternating outer and inner radius.
func StarPoints(cx, cy, outer, inner float64) [10][2]float64 {
	var pts [10][2]float64
	for i := range pts {
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = [2]float64{cx + math.Cos(angle)*r, cy + math.Sin(angle)*r}
	}
	return pts
}

// DrawStar fills a star as a fan of triangles around its centre.
func DrawStar(dst *ebiten.Image, cx, cy, outer, inner float64, clr color.Color) {
	pts := StarPoints(cx, cy, outer, inner)
	FillFan(dst, ebiten.GeoM{}, cx, cy, pts[:], clr)
}

// FillCircle fills a circle through geo.
func FillCircle(dst *ebiten.Image, geo ebiten.GeoM, cx, cy, r float64, clr color.Color) {
	const segments = 24
	rim := make([][2]float64, segments)
	for i := range rim {
		a := 2 * math.Pi * float64(i) / segments
		rim[i] = [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r}
	}
	FillFan(dst, geo, cx, cy, rim, clr)
}

// FillFan fills the closed outline rim as triangles sharing the point
// (cx, cy). The outline must be star-shaped around that point.
func FillFan(dst *ebiten.Image, geo ebiten.GeoM, cx, cy float64, rim [][2]float64, clr color.Color) {
	r, g, b, a := clr.RGBA()
	vertex := func(x, y float64) ebiten.Vertex {
		dx, dy := geo.Apply(x, y)
		return ebiten.Vertex{
			DstX: float32(dx), DstY: float32(dy),
			SrcX: 1.5, SrcY: 1.5,
			ColorR: float32(r) / 0xffff, ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff, ColorA: float32(a) / 0xffff,
		}
	}

	vs := make([]ebiten.Vertex, 0, len(rim)+1)
	vs = append(vs, vertex(cx, cy))
	for _, p := range rim {
		vs = append(vs, vertex(p[0], p[1]))
	}
	is := make([]uint16, 0, len(rim)*3)
	for i := range rim {
		is = append(is, 0, uint16(i+1), uint16((i+1)%len(rim)+1))
	}
	dst.DrawTriangles(vs, is, Pixel(), nil)
}
