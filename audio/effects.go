package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"ebiten-timecrawl/systems"
)

// SampleRate is shared by every back-end so rendered clips need no resampling
const SampleRate = beep.SampleRate(44100)

// Effect synthesizes a fresh streamer for one sound effect
func Effect(sound systems.Sound, rng *rand.Rand) beep.Streamer {
	switch sound {
	case systems.PlayerShoot:
		return volume(beep.Seq(
			decay(tone(880, 30*time.Millisecond, true)),
			decay(tone(660, 40*time.Millisecond, true)),
		), 0.15)
	case systems.EnemyShoot:
		return volume(decay(tone(330, 80*time.Millisecond, true)), 0.12)
	case systems.EnemyHit:
		return volume(decay(beep.Mix(
			noise(60*time.Millisecond, rng),
			tone(440, 60*time.Millisecond, false),
		)), 0.3)
	case systems.EnemyDeath:
		return volume(decay(beep.Mix(
			sweep(600, 120, 250*time.Millisecond),
			volume(noise(250*time.Millisecond, rng), 0.4),
		)), 0.35)
	case systems.PlayerHit:
		return volume(decay(beep.Mix(
			tone(110, 200*time.Millisecond, true),
			tone(55, 200*time.Millisecond, false),
		)), 0.4)
	}
	return generators.Silence(0)
}

func tone(freq float64, d time.Duration, square bool) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	if square {
		s, err = generators.SquareTone(SampleRate, freq)
	} else {
		s, err = generators.SineTone(SampleRate, freq)
	}
	if err != nil {
		return generators.Silence(SampleRate.N(d))
	}
	return beep.Take(SampleRate.N(d), s)
}

func noise(d time.Duration, rng *rand.Rand) beep.Streamer {
	return beep.Take(SampleRate.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	}))
}

// sweep glides a sine from one frequency to another over d
func sweep(from, to float64, d time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	pos, phase := 0, 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			freq := from + (to-from)*float64(pos)/float64(total)
			v := math.Sin(2 * math.Pi * phase)
			samples[i] = [2]float64{v, v}
			phase += freq / float64(SampleRate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}

// envelope fades its streamer out quadratically over the streamer's length
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
}

// decay wraps a bounded streamer; its length is measured by buffering it
func decay(s beep.Streamer) beep.Streamer {
	buffer := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(s)
	return &envelope{streamer: buffer.Streamer(0, buffer.Len()), total: buffer.Len()}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		left := 1 - float64(e.pos)/float64(max(e.total, 1))
		gain := left * left
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}

// volume scales linearly; zero or less is silent
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Render drains a bounded streamer into 16-bit little-endian stereo PCM
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				sample := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok {
			return out
		}
	}
}

// RenderAll pre-renders every sound effect
func RenderAll(rng *rand.Rand) map[systems.Sound][]byte {
	clips := make(map[systems.Sound][]byte, len(systems.Sounds))
	for _, sound := range systems.Sounds {
		clips[sound] = Render(Effect(sound, rng))
	}
	return clips
}
