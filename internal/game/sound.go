package game

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Button-Game/internal/logger"
)

const audioSampleRate = 44100

// SoundManager plays registered mp3 files on named channels. Starting a
// sound on a channel replaces whatever that channel was playing. Failures
// are logged, never returned: audio must not stop the game.
type SoundManager struct {
	ctx      *audio.Context
	files    map[string]string
	channels map[string]*audio.Player
}

// NewSoundManager reuses the process audio context if one exists.
func NewSoundManager() *SoundManager {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(audioSampleRate)
	}
	return &SoundManager{
		ctx:      ctx,
		files:    make(map[string]string),
		channels: make(map[string]*audio.Player),
	}
}

// RegisterFile associates a sound name with a file path. Re-registering a
// name replaces its path.
func (m *SoundManager) RegisterFile(name, path string) {
	m.files[name] = path
}

// PlayRegisteredLooping loops the sound registered as name on channel.
func (m *SoundManager) PlayRegisteredLooping(channel, name string, volume float64) {
	log := logger.Log.WithFields(logrus.Fields{"channel": channel, "sound": name})
	path, ok := m.files[name]
	if !ok {
		log.Warn("sound not registered")
		return
	}
	loop, err := decodeLoop(path)
	if err != nil {
		log.WithError(err).Warn("sound decode failed")
		return
	}
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		log.WithError(err).Warn("sound player failed")
		return
	}
	m.stop(channel)
	player.SetVolume(volume)
	player.Play()
	m.channels[channel] = player
	log.WithField("volume", volume).Debug("sound looping")
}

// Playing reports whether channel has a live player.
func (m *SoundManager) Playing(channel string) bool {
	p, ok := m.channels[channel]
	return ok && p.IsPlaying()
}

// StopAll closes every channel.
func (m *SoundManager) StopAll() {
	for ch := range m.channels {
		m.stop(ch)
	}
}

func (m *SoundManager) stop(channel string) {
	p, ok := m.channels[channel]
	if !ok {
		return
	}
	if err := p.Close(); err != nil {
		logger.Log.WithError(err).WithField("channel", channel).Debug("sound close failed")
	}
	delete(m.channels, channel)
}

// decodeLoop reads an mp3 fully into memory and wraps it in an infinite loop.
func decodeLoop(path string) (*audio.InfiniteLoop, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(audioSampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return audio.NewInfiniteLoop(stream, stream.Length()), nil
}
