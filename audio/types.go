package audio

// SoundType identifies a sound effect
type SoundType int

const (
	SoundFire SoundType = iota
	SoundBombHit
	SoundCrash

	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundFire:    "fire",
	SoundBombHit: "bomb_hit",
	SoundCrash:   "crash",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
