package game

// Sound identifies a one-shot effect the world can trigger.
type Sound int

const (
	SoundSwing Sound = iota
	SoundHit
	SoundMiss
	SoundFootstep
	SoundEnemyDeath
	SoundPlayerHurt
	SoundVictory
)

// AudioChannel selects a volume group.
type AudioChannel int

const (
	ChannelMusic AudioChannel = iota
	ChannelEffects
)

// MusicOff stops the current music loop when passed to SetMusicTrack.
const MusicOff = -1

// AudioSink is the fire-and-forget audio collaborator. The core never
// reads anything back from it; a silent implementation is always a
// valid one.
type AudioSink interface {
	PlayOneShot(s Sound)
	SetMusicTrack(track int)
	SetVolume(ch AudioChannel, level float64)
}

// NopAudio discards every request. Used by tests and headless runs.
type NopAudio struct{}

func (NopAudio) PlayOneShot(Sound)               {}
func (NopAudio) SetMusicTrack(int)               {}
func (NopAudio) SetVolume(AudioChannel, float64) {}
