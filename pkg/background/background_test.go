package background

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintJungle(t *testing.T) {
	g := NewGenerator(200, 120)
	a := g.PaintJungle(7)
	require.Equal(t, 200, a.Bounds().Dx())
	require.Equal(t, 120, a.Bounds().Dy())

	assert.Equal(t, a.Pix, g.PaintJungle(7).Pix, "same seed, same picture")
	assert.NotEqual(t, a.Pix, g.PaintJungle(8).Pix)

	// green dominates; palm trunks are the only brown
	greenish := 0
	for y := 0; y < 120; y++ {
		for x := 0; x < 200; x++ {
			c := a.RGBAAt(x, y)
			if c.G > c.R && c.G > c.B {
				greenish++
			}
			require.Equal(t, uint8(255), c.A)
		}
	}
	assert.Greater(t, greenish, 200*120*3/4)
}

func TestPaintSea(t *testing.T) {
	g := NewGenerator(160, 100)
	img := g.PaintSea(1)
	assert.Equal(t, img.Pix, g.PaintSea(1).Pix)

	surf := img.RGBAAt(40, 0)
	assert.Greater(t, surf.R, uint8(200), "foam along the beach")

	shallow, deep := darkest(img, 10), darkest(img, 99)
	assert.Greater(t, int(shallow.G)+int(shallow.B), int(deep.G)+int(deep.B), "darker with depth")
	assert.Greater(t, deep.B, deep.R)
}

// darkest skips wave crests, which are always lighter than the water.
func darkest(img *image.RGBA, y int) color.RGBA {
	best := img.RGBAAt(0, y)
	for x := 1; x < img.Bounds().Dx(); x++ {
		c := img.RGBAAt(x, y)
		if int(c.G)+int(c.B) < int(best.G)+int(best.B) {
			best = c
		}
	}
	return best
}
