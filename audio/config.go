package audio

// AudioConfig holds volume and format settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at 48kHz with per-effect balance
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   48000,
		EffectVolumes: map[SoundType]float64{
			SoundTick:    0.35,
			SoundFanfare: 0.8,
			SoundReject:  0.5,
		},
	}
}

// effectVolume returns the final gain for a sound type
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
