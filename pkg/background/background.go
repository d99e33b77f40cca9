// Package background paints the scenery strips above and below the road:
// a jungle verge along the top and the sea along the bottom.
package background

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates tileable scenery textures of a fixed size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Jungle uploads PaintJungle to the GPU.
func (g *Generator) Jungle(seed uint64) *ebiten.Image {
	return ebiten.NewImageFromImage(g.PaintJungle(seed))
}

// Sea uploads PaintSea to the GPU.
func (g *Generator) Sea(seed uint64) *ebiten.Image {
	return ebiten.NewImageFromImage(g.PaintSea(seed))
}

// PaintJungle draws dense undergrowth with palms poking out of it. Trees are
// planted bottom-up so the ones nearer the road overlap the ones behind.
func (g *Generator) PaintJungle(seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	fill(img, color.RGBA{24, 84, 28, 255})
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(70 + rng.IntN(60))
		img.SetRGBA(rng.IntN(g.Width), rng.IntN(g.Height), color.RGBA{24, shade, 28, 255})
	}

	for y := 0; y < g.Height+20; y += 12 {
		density := 0.55 + 0.3*math.Sin(float64(y)*0.02)
		for x := 0; x < g.Width; x += 6 + rng.IntN(14) {
			if rng.Float64() > density {
				continue
			}
			px := x + rng.IntN(10) - 5
			py := y + rng.IntN(10) - 5
			if rng.Float64() < 0.25 {
				g.drawPalm(img, px, py, rng)
			} else {
				g.drawBush(img, px, py, rng)
			}
		}
	}
	return img
}

// PaintSea draws water darkening with depth, wave crests, and a band of surf
// along the top edge where the sea meets the beach. The texture tiles
// horizontally.
func (g *Generator) PaintSea(seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))

	for y := 0; y < g.Height; y++ {
		depth := float64(y) / float64(g.Height)
		c := color.RGBA{
			uint8(40 - 30*depth),
			uint8(150 - 90*depth),
			uint8(200 - 60*depth),
			255,
		}
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	crest := color.RGBA{170, 220, 240, 255}
	period := 2 * math.Pi / float64(g.Width)
	for row := 18; row < g.Height; row += 22 + rng.IntN(10) {
		phase := rng.Float64() * 2 * math.Pi
		for x := 0; x < g.Width; x++ {
			if (x/24+row)%3 == 0 {
				continue
			}
			dy := int(3 * math.Sin(float64(x)*period*4+phase))
			img.SetRGBA(x, row+dy, crest)
		}
	}

	foam := color.RGBA{235, 245, 250, 255}
	for x := 0; x < g.Width; x++ {
		edge := 4 + int(3*math.Sin(float64(x)*period*6))
		for y := 0; y < edge; y++ {
			img.SetRGBA(x, y, foam)
		}
	}
	return img
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// drawPalm draws a curved trunk topped with drooping fronds.
func (g *Generator) drawPalm(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 30 + rng.IntN(25)
	lean := rng.Float64()*0.6 - 0.3

	trunk := color.RGBA{96, 70, 40, 255}
	for ty := 0; ty < height; ty++ {
		tx := x + int(lean*float64(ty)*float64(ty)/float64(height))
		img.SetRGBA(tx, y-ty, trunk)
		img.SetRGBA(tx+1, y-ty, trunk)
		if ty%4 == 0 {
			img.SetRGBA(tx-1, y-ty, color.RGBA{70, 50, 30, 255})
		}
	}

	topX := x + int(lean*float64(height))
	topY := y - height
	leaves := color.RGBA{
		uint8(20 + rng.IntN(30)),
		uint8(110 + rng.IntN(60)),
		uint8(20 + rng.IntN(30)),
		255,
	}
	fronds := 5 + rng.IntN(3)
	for f := 0; f < fronds; f++ {
		angle := math.Pi * (float64(f)/float64(fronds-1) - 1)
		length := 12 + rng.IntN(8)
		for l := 0; l < length; l++ {
			droop := float64(l*l) / float64(length) * 0.5
			fx := topX + int(math.Cos(angle)*float64(l))
			fy := topY + int(math.Sin(angle)*float64(l)+droop)
			img.SetRGBA(fx, fy, leaves)
			img.SetRGBA(fx, fy+1, leaves)
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.IntN(10)
	c := color.RGBA{
		uint8(30 + rng.IntN(40)),
		uint8(90 + rng.IntN(60)),
		uint8(30 + rng.IntN(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x+dx, y+dy, c)
			}
		}
	}
}
