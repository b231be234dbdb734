package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap suppresses a repeat of the same cue inside this window
	MinSoundGap = 40 * time.Millisecond
)

// Swing Sound
const (
	SwingSoundDuration = 140 * time.Millisecond
	SwingSoundAttack   = 40 * time.Millisecond
	SwingSoundRelease  = 90 * time.Millisecond
)

// Hit Sound (thud)
const (
	HitSoundDuration = 120 * time.Millisecond
	HitSoundAttack   = 3 * time.Millisecond
	HitSoundRelease  = 100 * time.Millisecond
)

// Clang Sound
const (
	ClangSoundDuration = 220 * time.Millisecond
	ClangSoundAttack   = 2 * time.Millisecond
	ClangSoundRelease  = 200 * time.Millisecond
)

// Parry Sound (chime)
const (
	ParrySoundDuration        = 320 * time.Millisecond
	ParrySoundAttack          = 3 * time.Millisecond
	ParrySoundOvertoneRelease = 160 * time.Millisecond
)

// Choir Sound
const (
	ChoirSoundDuration = 900 * time.Millisecond
	ChoirSoundAttack   = 250 * time.Millisecond
	ChoirSoundRelease  = 400 * time.Millisecond
)

// Miracle Sound
const (
	MiracleNoteDuration = 110 * time.Millisecond
	MiracleNoteAttack   = 5 * time.Millisecond
	MiracleNoteRelease  = 60 * time.Millisecond
)

// Defeat Sound
const (
	DefeatSoundDuration = 700 * time.Millisecond
	DefeatSoundAttack   = 10 * time.Millisecond
	DefeatSoundRelease  = 500 * time.Millisecond
)
