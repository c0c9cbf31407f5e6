package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sample returns the value of wave w at phase p in [0, 1).
func (w WaveType) sample(p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (p - 0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// oscillator generates a fixed-length tone. A frequency slide moves the
// pitch linearly from freq to freq+slide over the tone.
type oscillator struct {
	freq     float64
	slide    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweep creates a tone whose pitch slides from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		slide:    to - from,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := o.wave.sample(o.phase)
		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.slide != 0 && o.duration > 0 {
			freq += o.slide * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. A gain of 0 silences the stream.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// note builds one shaped tone.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Note frequencies in Hz.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteE3 = 164.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
)

// melody loops a bass line under a lead arpeggio forever.
type melody struct {
	rate    beep.SampleRate
	bass    []float64
	lead    []float64
	noteLen int
	pos     int
}

// NewMusic returns the endless background track.
func NewMusic(rate beep.SampleRate) beep.Streamer {
	return &melody{
		rate:    rate,
		bass:    []float64{noteA2, noteA2, noteC3, noteC3, noteE3, noteE3, noteG3, noteE3},
		lead:    []float64{noteA3 * 2, noteC5, noteE5, noteC5, noteG5, noteE5, noteA5, noteE5},
		noteLen: rate.N(180 * time.Millisecond),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := m.pos / m.noteLen
		inNote := m.pos % m.noteLen
		t := float64(m.pos) / float64(m.rate)

		// Short decay per note keeps the lead plucky.
		decay := math.Exp(-4 * float64(inNote) / float64(m.noteLen))

		bass := WaveSquare.sample(math.Mod(m.bass[step%len(m.bass)]*t, 1))
		lead := WaveSine.sample(math.Mod(m.lead[step%len(m.lead)]*t, 1))
		val := 0.08*bass + 0.12*lead*decay

		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// NewChime is the two-note level-up sound.
func NewChime(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(noteE5, 90*time.Millisecond, WaveSquare, rate),
		note(noteA5, 180*time.Millisecond, WaveSquare, rate),
	), 0.25)
}

// NewCrash is the falling buzz played when a run ends in a crash.
func NewCrash(rate beep.SampleRate) beep.Streamer {
	d := 450 * time.Millisecond
	return newVolume(NewEnvelope(NewSweep(220, 55, d, WaveSaw, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate), 0.3)
}

// NewFanfare is the rising arpeggio played on victory.
func NewFanfare(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		note(noteC5, 120*time.Millisecond, WaveSquare, rate),
		note(noteE5, 120*time.Millisecond, WaveSquare, rate),
		note(noteG5, 120*time.Millisecond, WaveSquare, rate),
		note(noteC6, 480*time.Millisecond, WaveSquare, rate),
	), 0.25)
}
