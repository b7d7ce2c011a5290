package maestro

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePort struct {
	bytes.Buffer
	closed bool
	err    error
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.Buffer.Write(b)
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func testConfig() Config {
	return Config{Channel: 0, MinPulse: 500 * time.Microsecond, MaxPulse: 2400 * time.Microsecond}
}

func TestSetAngleFrames(t *testing.T) {
	type testCase struct {
		name  string
		angle int
		want  []byte
	}
	cases := []testCase{
		{"zero", 0, []byte{0x84, 0x00, 0x50, 0x0F}},
		{"center", 90, []byte{0x84, 0x00, 0x28, 0x2D}},
		{"full", 180, []byte{0x84, 0x00, 0x00, 0x4B}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			port := &fakePort{}
			s, err := New(port, testConfig(), nil)
			require.NoError(t, err)
			require.NoError(t, s.SetAngle(tc.angle))
			assert.Equal(t, tc.want, port.Bytes())
		})
	}
}

func TestSetAngleChannel(t *testing.T) {
	port := &fakePort{}
	cfg := testConfig()
	cfg.Channel = 5
	s, err := New(port, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.SetAngle(90))
	assert.Equal(t, byte(5), port.Bytes()[1])
}

func TestSetAngleErrors(t *testing.T) {
	port := &fakePort{}
	s, err := New(port, testConfig(), nil)
	require.NoError(t, err)

	assert.Error(t, s.SetAngle(181))
	assert.Zero(t, port.Len())

	port.err = errors.New("unplugged")
	assert.ErrorIs(t, s.SetAngle(90), port.err)

	require.NoError(t, s.Close())
	assert.True(t, port.closed)
}

func TestNewValidates(t *testing.T) {
	cfg := testConfig()
	cfg.MaxPulse = cfg.MinPulse
	_, err := New(&fakePort{}, cfg, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Channel = 24
	_, err = New(&fakePort{}, cfg, nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.MaxPulse = 5000 * time.Microsecond
	_, err = New(&fakePort{}, cfg, nil)
	assert.Error(t, err)

	cfg.MaxPulse = maxPulseWidth
	s, err := New(&fakePort{}, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3FFF), quarterMicros(s.cfg.MaxPulse))
}

func TestPulseWidth(t *testing.T) {
	lo, hi := 500*time.Microsecond, 2400*time.Microsecond
	assert.Equal(t, lo, PulseWidth(0, lo, hi))
	assert.Equal(t, 1450*time.Microsecond, PulseWidth(90, lo, hi))
	assert.Equal(t, hi, PulseWidth(180, lo, hi))
	assert.Equal(t, uint16(5800), quarterMicros(1450*time.Microsecond))
}
