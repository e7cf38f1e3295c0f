package audio

import (
	"github.com/lixenwraith/road-fighter/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFire:    0.4,
			SoundBombHit: 0.7,
			SoundCrash:   1.0,
		},
	}
}

// volume is the effective gain of a sound, clamped to [0, 1]
func (c *AudioConfig) volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return min(max(v*c.MasterVolume, 0), 1)
}
