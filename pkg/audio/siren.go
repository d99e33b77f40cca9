// Package audio synthesizes the ambulance siren and plays it through the
// ebiten audio context.
package audio

import (
	"encoding/binary"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate   = 44100
	ChannelCount = 2

	// SirenSeconds is the length of one dispatch call.
	SirenSeconds = 1.6

	sirenVolume = 0.35
)

// Siren plays a short wail each time an ambulance is dispatched.
type Siren struct {
	player *audio.Player
	logger *log.Logger
}

// NewSiren renders the siren once and binds it to ctx. ctx must run at
// SampleRate.
func NewSiren(ctx *audio.Context, logger *log.Logger) *Siren {
	p := ctx.NewPlayerFromBytes(Synthesize(SampleRate, SirenSeconds))
	p.SetVolume(sirenVolume)
	return &Siren{player: p, logger: logger}
}

// Open creates the process-wide audio context and a siren bound to it. It
// must be called at most once.
func Open(logger *log.Logger) *Siren {
	return NewSiren(audio.NewContext(SampleRate), logger)
}

// AmbulanceDispatched restarts the siren from the top.
func (s *Siren) AmbulanceDispatched() {
	if err := s.player.SetPosition(0); err != nil {
		s.logger.Error("siren rewind failed", "err", err)
		return
	}
	s.player.Play()
}

// Synthesize renders a two-tone wail as signed 16-bit little endian stereo.
func Synthesize(sampleRate int, seconds float64) []byte {
	n := int(seconds * float64(sampleRate))
	buf := make([]byte, n*ChannelCount*2)
	fade := int(0.05 * float64(sampleRate))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)

		// wail: smoothstep sweep between 620 Hz and 1060 Hz
		const cycle = 0.8
		c := math.Mod(t, cycle) / cycle
		tri := 1.0 - math.Abs(2*c-1.0)
		freq := 620.0 + 440.0*tri*tri*(3-2*tri)

		phase += 2 * math.Pi * freq / float64(sampleRate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
		// square-ish body softened with the fundamental
		v := 0.6*math.Sin(phase) + 0.25*math.Sin(3*phase)/3 + 0.15*math.Sin(5*phase)/5

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}

		s := int16(math.Round(clamp(v*env, -1, 1) * math.MaxInt16 * 0.8))
		off := i * ChannelCount * 2
		binary.LittleEndian.PutUint16(buf[off:], uint16(s))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(s))
	}
	return buf
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
