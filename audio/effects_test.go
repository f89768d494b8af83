package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-timecrawl/systems"
)

func TestEveryEffectRenders(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, sound := range systems.Sounds {
		t.Run(sound.String(), func(t *testing.T) {
			clip := Render(Effect(sound, rng))

			require.NotEmpty(t, clip)
			assert.Zero(t, len(clip)%4, "clip must hold whole stereo frames")
			frames := len(clip) / 4
			assert.Less(t, frames, SampleRate.N(time.Second))

			loud := false
			for i := 0; i+1 < len(clip); i += 2 {
				if int16(uint16(clip[i])|uint16(clip[i+1])<<8) != 0 {
					loud = true
					break
				}
			}
			assert.True(t, loud, "clip is silent")
		})
	}
}

func TestRenderClampsAndEncodesLittleEndian(t *testing.T) {
	loud := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{3, -3}
		}
		return len(samples), true
	})

	clip := Render(beep.Take(2, loud))

	require.Len(t, clip, 8)
	assert.Equal(t, []byte{0xff, 0x7f, 0x01, 0x80}, clip[:4])
}

func TestRenderEmptyStreamer(t *testing.T) {
	assert.Empty(t, Render(generators.Silence(0)))
}

func TestDecayFadesOut(t *testing.T) {
	length := SampleRate.N(50 * time.Millisecond)
	constant := beep.Take(length, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	}))

	samples := make([][2]float64, length)
	n, _ := decay(constant).Stream(samples)
	require.Equal(t, length, n)

	assert.InDelta(t, 1.0, samples[0][0], 0.01)
	assert.Less(t, samples[n-1][0], 0.01)
	assert.Greater(t, samples[n/4][0], samples[n/2][0])
}

func TestRenderAllCoversEverySound(t *testing.T) {
	clips := RenderAll(rand.New(rand.NewSource(2)))
	assert.Len(t, clips, len(systems.Sounds))
}
