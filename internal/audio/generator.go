package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveTriangle:
			buf[i] = 1.0 - 4.0*math.Abs(phase-0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts duration in seconds to sample count
func durationToSamples(d float64) int {
	return int(d * float64(sampleRate))
}

// tone renders one enveloped note at unity gain
func tone(waveType int, freq, duration float64) floatBuffer {
	buf := oscillator(waveType, freq, durationToSamples(duration))
	applyEnvelope(buf, 0.005, duration*0.4)
	return buf
}

// scaleFloatBuffer multiplies every sample in place
func scaleFloatBuffer(buf floatBuffer, gain float64) floatBuffer {
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

// bufferStreamer plays a pre-rendered mono buffer once, duplicating the
// sample to both channels.
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func newBufferStreamer(buf floatBuffer) *bufferStreamer {
	return &bufferStreamer{buf: buf}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}

// compile-time check
var _ beep.Streamer = (*bufferStreamer)(nil)

// renderCue builds the unity-gain buffer for a cue
func renderCue(c Cue) floatBuffer {
	switch c {
	case CuePaddleHit:
		return scaleFloatBuffer(tone(waveSquare, 440, 0.06), 0.5)
	case CueWallBounce:
		return scaleFloatBuffer(tone(waveSquare, 330, 0.04), 0.35)
	case CueGoal:
		buf := tone(waveSquare, 392, 0.10)
		buf = concatFloatBuffers(buf, tone(waveSquare, 262, 0.18))
		return scaleFloatBuffer(buf, 0.5)
	case CueMenuMove:
		return scaleFloatBuffer(tone(waveSine, 660, 0.03), 0.4)
	case CueMenuSelect:
		return scaleFloatBuffer(tone(waveSine, 880, 0.06), 0.4)
	case CueCountdownTick:
		return scaleFloatBuffer(tone(waveSine, 880, 0.05), 0.5)
	case CueCountdownGo:
		return scaleFloatBuffer(tone(waveSine, 1320, 0.15), 0.5)
	case CueTimerWarning:
		return scaleFloatBuffer(tone(waveTriangle, 220, 0.12), 0.5)
	case CueWin:
		buf := tone(waveTriangle, 523, 0.09)
		buf = concatFloatBuffers(buf, tone(waveTriangle, 659, 0.09))
		buf = concatFloatBuffers(buf, tone(waveTriangle, 784, 0.09))
		buf = concatFloatBuffers(buf, tone(waveTriangle, 1047, 0.22))
		return scaleFloatBuffer(buf, 0.45)
	default:
		return nil
	}
}
