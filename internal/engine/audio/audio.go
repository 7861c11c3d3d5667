// Package audio provides ambient sound and footstep playback.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/dusklight/grovewalk/internal/logger"
)

// DefaultSampleRate is the playback sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager handles ambient audio and footstep effects.
type Manager struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	ambientCtrl   *beep.Ctrl
	ambientVolume *effects.Volume

	footstep     *beep.Buffer
	lastFootstep time.Time

	masterVolume float64
	muted        bool

	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New(masterVolume float64, muted bool) *Manager {
	return &Manager{
		masterVolume: clamp(masterVolume, 0, 1),
		muted:        muted,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init initializes the speaker. Failure leaves the manager disabled so
// the viewer runs silently.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	m.sampleRate = DefaultSampleRate
	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)
	m.initialized = true
	return nil
}

// Close shuts down audio playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// PlayAmbient starts a looping ambient track from a WAV file.
// Missing or undecodable files are logged and skipped.
func (m *Manager) PlayAmbient(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("ambient track not found", zap.String("path", path), zap.Error(err))
		return
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		logger.Warn("ambient track decode failed", zap.String("path", path), zap.Error(err))
		return
	}

	looped, err := beep.Loop2(streamer)
	if err != nil {
		streamer.Close()
		logger.Warn("ambient track loop failed", zap.String("path", path), zap.Error(err))
		return
	}

	var resampled beep.Streamer = looped
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, looped)
	}

	m.ambientCtrl = &beep.Ctrl{Streamer: resampled}
	m.ambientVolume = &effects.Volume{
		Streamer: m.ambientCtrl,
		Base:     2,
		Volume:   volumeExp(m.masterVolume),
		Silent:   m.masterVolume <= 0,
	}

	speaker.Lock()
	m.sfxMixer.Add(m.ambientVolume)
	speaker.Unlock()

	logger.Info("ambient track playing", zap.String("path", path))
}

// LoadFootstep decodes the footstep effect into memory for reuse.
func (m *Manager) LoadFootstep(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("footstep sfx not found", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		logger.Warn("footstep sfx decode failed", zap.String("path", path), zap.Error(err))
		return
	}

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	streamer.Close()
	m.footstep = buf
}

// Footstep plays one footstep, rate-limited to the given step interval.
// Call it every frame the viewer is moving; the limiter turns that into
// a step rhythm matching the bobbing speed.
func (m *Manager) Footstep(interval time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted || m.footstep == nil {
		return
	}
	if time.Since(m.lastFootstep) < interval {
		return
	}
	m.lastFootstep = time.Now()

	step := m.footstep.Streamer(0, m.footstep.Len())
	vol := &effects.Volume{
		Streamer: step,
		Base:     2,
		Volume:   volumeExp(m.masterVolume),
		Silent:   m.masterVolume <= 0,
	}

	speaker.Lock()
	m.sfxMixer.Add(vol)
	speaker.Unlock()
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.masterVolume = clamp(vol, 0, 1)
	if m.ambientVolume != nil {
		speaker.Lock()
		m.ambientVolume.Volume = volumeExp(m.masterVolume)
		m.ambientVolume.Silent = m.masterVolume <= 0
		speaker.Unlock()
	}
}

// volumeExp converts a 0-1 linear volume to the base-2 exponent
// effects.Volume applies.
func volumeExp(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
