package audio

import (
	"math"
	"math/rand"
)

const sampleRateHz = 44100

// waveform selects the oscillator shape.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// mono is a buffer of float64 samples at unity gain.
type mono []float64

func seconds(d float64) int { return int(d * sampleRateHz) }

// oscillate renders n samples of the given shape. freqEnd lets a tone
// sweep linearly from freq to freqEnd over its duration; pass the same
// value for a steady pitch.
func oscillate(shape waveform, freq, freqEnd float64, n int) mono {
	buf := make(mono, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		f := freq + (freqEnd-freq)*t
		switch shape {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}
		phase += f / sampleRateHz
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// envelope applies a linear attack/release ramp in place.
func envelope(buf mono, attack, release float64) mono {
	a := seconds(attack)
	r := seconds(release)
	relStart := len(buf) - r
	if relStart < a {
		relStart = a
	}
	for i := range buf {
		switch {
		case i < a && a > 0:
			buf[i] *= float64(i) / float64(a)
		case i >= relStart && r > 0:
			buf[i] *= float64(len(buf)-i) / float64(r)
		}
	}
	return buf
}

func gain(buf mono, g float64) mono {
	for i := range buf {
		buf[i] *= g
	}
	return buf
}

// mix adds b into a, extending a when b is longer.
func mix(a, b mono) mono {
	if len(b) > len(a) {
		grown := make(mono, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i]
	}
	return a
}

func concat(bufs ...mono) mono {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make(mono, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

func silence(d float64) mono { return make(mono, seconds(d)) }

// tone is a convenience for a steady enveloped note.
func tone(shape waveform, freq, dur, attack, release, g float64) mono {
	return gain(envelope(oscillate(shape, freq, freq, seconds(dur)), attack, release), g)
}

// --- effect renders ---

func renderSwing() mono {
	// Air whoosh: noise swept through a falling saw undertone.
	n := seconds(0.14)
	buf := gain(oscillate(waveNoise, 0, 0, n), 0.25)
	buf = mix(buf, gain(oscillate(waveSaw, 320, 90, n), 0.18))
	return envelope(buf, 0.01, 0.10)
}

func renderHit() mono {
	n := seconds(0.18)
	buf := gain(oscillate(waveSquare, 220, 140, n), 0.30)
	buf = mix(buf, gain(oscillate(waveNoise, 0, 0, seconds(0.05)), 0.25))
	return envelope(buf, 0.002, 0.12)
}

func renderMiss() mono {
	return tone(waveSine, 110, 0.10, 0.01, 0.08, 0.18)
}

func renderFootstep() mono {
	n := seconds(0.05)
	buf := gain(oscillate(waveNoise, 0, 0, n), 0.10)
	buf = mix(buf, gain(oscillate(waveSine, 70, 55, n), 0.12))
	return envelope(buf, 0.002, 0.04)
}

func renderEnemyDeath() mono {
	n := seconds(0.45)
	buf := gain(oscillate(waveSaw, 200, 40, n), 0.28)
	buf = mix(buf, gain(oscillate(waveNoise, 0, 0, seconds(0.12)), 0.15))
	return envelope(buf, 0.005, 0.30)
}

func renderPlayerHurt() mono {
	n := seconds(0.28)
	buf := gain(oscillate(waveSquare, 95, 70, n), 0.30)
	return envelope(buf, 0.003, 0.18)
}

func renderVictory() mono {
	// Rising triad plus the octave.
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]mono, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(waveSine, f, 0.22, 0.01, 0.12, 0.30))
	}
	return concat(parts...)
}

// --- music loops ---

// note frequencies used by the track patterns.
const (
	nA2 = 110.00
	nC3 = 130.81
	nD3 = 146.83
	nE3 = 164.81
	nF3 = 174.61
	nG3 = 196.00
	nA3 = 220.00
	nC4 = 261.63
	nD4 = 293.66
	nE4 = 329.63
)

// renderTrack synthesizes one loop of the given builtin track. The
// returned buffer is meant to repeat seamlessly.
func renderTrack(track int) mono {
	switch track {
	case 1:
		return renderPulseTrack()
	case 2:
		return renderLamentTrack()
	default:
		return renderDroneTrack()
	}
}

// renderDroneTrack is a slow two-chord drone.
func renderDroneTrack() mono {
	bar := func(root, fifth float64) mono {
		buf := tone(waveSine, root, 2.0, 0.25, 0.25, 0.16)
		return mix(buf, tone(waveSine, fifth, 2.0, 0.25, 0.25, 0.10))
	}
	return concat(bar(nA2, nE3), bar(nF3/2, nC3), bar(nA2, nE3), bar(nG3/2, nD3))
}

// renderPulseTrack is a steady minor-key bass pulse.
func renderPulseTrack() mono {
	beat := func(f float64) mono {
		return concat(tone(waveSquare, f, 0.18, 0.005, 0.10, 0.12), silence(0.12))
	}
	pattern := []float64{nA2, nA2, nC3, nA2, nG3 / 2, nA2, nE3, nD3}
	parts := make([]mono, 0, len(pattern))
	for _, f := range pattern {
		parts = append(parts, beat(f))
	}
	return concat(parts...)
}

// renderLamentTrack is a sparse descending melody over a drone.
func renderLamentTrack() mono {
	melody := concat(
		tone(waveSine, nE4, 0.7, 0.04, 0.30, 0.14), silence(0.2),
		tone(waveSine, nD4, 0.7, 0.04, 0.30, 0.14), silence(0.2),
		tone(waveSine, nC4, 0.9, 0.04, 0.40, 0.14), silence(0.3),
		tone(waveSine, nA3, 1.2, 0.04, 0.60, 0.14), silence(0.5),
	)
	drone := gain(envelope(oscillate(waveSine, nA2, nA2, len(melody)), 0.4, 0.4), 0.10)
	return mix(drone, melody)
}
