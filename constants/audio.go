package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume applies when the config leaves volume unset
	DefaultMasterVolume = 0.5
)

// Fire Sound Timing
const (
	FireSoundDuration = 60 * time.Millisecond
	FireSoundAttack   = 5 * time.Millisecond
	FireSoundRelease  = 40 * time.Millisecond
)

// Bomb Hit Sound Timing
const (
	BombHitNote1Duration = 70 * time.Millisecond
	BombHitNote2Duration = 160 * time.Millisecond
	BombHitAttack        = 5 * time.Millisecond
	BombHitNote1Release  = 30 * time.Millisecond
	BombHitNote2Release  = 120 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 10 * time.Millisecond
	CrashSoundRelease  = 380 * time.Millisecond
)
