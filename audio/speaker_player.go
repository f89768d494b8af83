package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"ebiten-timecrawl/systems"
)

// SpeakerPlayer plays effects straight through the beep speaker. It backs
// the terminal front-end, which has no ebiten audio context.
type SpeakerPlayer struct {
	mu          sync.Mutex
	rng         *rand.Rand
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerPlayer creates a speaker player; call Initialize before use
func NewSpeakerPlayer(rng *rand.Rand) *SpeakerPlayer {
	return &SpeakerPlayer{rng: rng, mixer: &beep.Mixer{}}
}

// Initialize opens the audio device
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes one effect into the output
func (p *SpeakerPlayer) Play(sound systems.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	effect := Effect(sound, p.rng)
	speaker.Lock()
	p.mixer.Add(effect)
	speaker.Unlock()
}

// Close silences the mixer and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
