package timebound_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/on-the-ground/effect_bridge_go/shared/timebound"
)

func TestBetween_Duration(t *testing.T) {
	from := time.Now()
	to := from.Add(40 * time.Millisecond)
	assert.Equal(t, 40*time.Millisecond, timebound.Between(from, to).Duration())
}

func TestStopwatch_ElapsedGrows(t *testing.T) {
	sw := timebound.Start()
	time.Sleep(20 * time.Millisecond)
	assert.GreaterOrEqual(t, sw.Elapsed(), 20*time.Millisecond)
}
