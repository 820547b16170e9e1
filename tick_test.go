package twin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickAddAndSub(t *testing.T) {
	base := Tick(10)
	assert.Equal(t, Tick(15), base.Add(5))
	assert.Equal(t, uint64(5), Tick(15).Sub(base))
}

func TestTickSubUnderflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		Tick(1).Sub(Tick(5))
	})
}

func TestClockUnixSecs(t *testing.T) {
	clock := NewClock(1_700_000_000, 60)
	assert.Equal(t, int64(1_700_000_000), clock.UnixSecs(0))
	assert.Equal(t, int64(1_700_000_600), clock.UnixSecs(10))
	assert.Equal(t, uint32(60), clock.TickDurationSecs())
}
