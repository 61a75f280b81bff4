package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		require.True(t, ok)
		require.Equal(t, 100, n)

		for i := range n {
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.Equal(t, samples[i][0], samples[i][1])
		}
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := range n {
		assert.Contains(t, []float64{-1, 1}, samples[i][0])
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	assert.Equal(t, rate.N(100*time.Millisecond), drain(osc))
}

func TestEnvelopeShapesAndEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, ok := env.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 100, n)

	// zero-frequency square sits at +1: the envelope alone shapes it
	assert.Zero(t, samples[0][0])
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0])
	assert.InDelta(t, 0.1, samples[99][0], 1e-9)

	n, ok = env.Stream(samples)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestCueStreamers(t *testing.T) {
	for _, c := range []Cue{CueCountdown, CueGo, CueCrash, CueVictory, CueDraw} {
		s := CueStreamer(c, sampleRate)
		require.NotNil(t, s, c.String())
		assert.Positive(t, drain(s), c.String())
	}
	assert.Nil(t, CueStreamer(Cue(99), sampleRate))
}

func TestHumFollowsVoices(t *testing.T) {
	voices := 2
	hum := newHumGenerator(beep.SampleRate(8000), func() int { return voices })
	samples := make([][2]float64, 64)
	n, ok := hum.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 64, n)

	voices = 0
	n, ok = hum.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 64, n)
}
