package audio

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/rs/zerolog/log"

	"ebiten-timecrawl/systems"
)

// EbitenPlayer plays pre-rendered effects and optional background music
// through an ebiten audio context.
type EbitenPlayer struct {
	audioContext *audio.Context
	clips        map[systems.Sound][]byte
	bgmPlayer    *audio.Player
	bgmFile      *os.File
	volume       float64
	musicVolume  float64
}

// NewEbitenPlayer creates the audio context and renders every effect
func NewEbitenPlayer(rng *rand.Rand) *EbitenPlayer {
	return &EbitenPlayer{
		audioContext: audio.NewContext(int(SampleRate)),
		clips:        RenderAll(rng),
		volume:       1.0,
		musicVolume:  0.5,
	}
}

// Play starts one effect. Overlapping effects each get their own player.
func (p *EbitenPlayer) Play(sound systems.Sound) {
	clip, ok := p.clips[sound]
	if !ok || len(clip) == 0 {
		return
	}
	player := p.audioContext.NewPlayerFromBytes(clip)
	player.SetVolume(p.volume)
	player.Play()
}

// PlayBGM loops an .ogg or .mp3 file as background music
func (p *EbitenPlayer) PlayBGM(path string) error {
	p.StopBGM()

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio file: %w", err)
	}

	var (
		stream io.ReadSeeker
		length int64
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		var s *mp3.Stream
		s, err = mp3.DecodeWithSampleRate(int(SampleRate), file)
		if err == nil {
			stream, length = s, s.Length()
		}
	case ".ogg":
		var s *vorbis.Stream
		s, err = vorbis.DecodeWithSampleRate(int(SampleRate), file)
		if err == nil {
			stream, length = s, s.Length()
		}
	default:
		file.Close()
		return fmt.Errorf("unsupported audio format: %s", path)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to decode audio file: %w", err)
	}

	player, err := p.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create audio player: %w", err)
	}

	p.bgmFile = file
	p.bgmPlayer = player
	p.bgmPlayer.SetVolume(p.musicVolume)
	p.bgmPlayer.Play()
	log.Debug().Str("path", path).Msg("background music started")
	return nil
}

// StopBGM stops the background music
func (p *EbitenPlayer) StopBGM() {
	if p.bgmPlayer != nil {
		p.bgmPlayer.Close()
		p.bgmPlayer = nil
	}
	if p.bgmFile != nil {
		p.bgmFile.Close()
		p.bgmFile = nil
	}
}

// PauseBGM halts the music without losing its position
func (p *EbitenPlayer) PauseBGM() {
	if p.bgmPlayer != nil {
		p.bgmPlayer.Pause()
	}
}

// ResumeBGM resumes the background music
func (p *EbitenPlayer) ResumeBGM() {
	if p.bgmPlayer != nil {
		p.bgmPlayer.Play()
	}
}

// IsBGMPlaying returns whether background music is currently playing
func (p *EbitenPlayer) IsBGMPlaying() bool {
	return p.bgmPlayer != nil && p.bgmPlayer.IsPlaying()
}

// SetVolume sets the effect volume (0.0 to 1.0)
func (p *EbitenPlayer) SetVolume(volume float64) {
	p.volume = volume
}

// SetMusicVolume sets the background music volume (0.0 to 1.0)
func (p *EbitenPlayer) SetMusicVolume(volume float64) {
	p.musicVolume = volume
	if p.bgmPlayer != nil {
		p.bgmPlayer.SetVolume(volume)
	}
}

func (p *EbitenPlayer) Close() {
	p.StopBGM()
}
