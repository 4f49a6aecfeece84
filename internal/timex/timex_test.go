package timex

import (
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	var cfg struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"1m30s","b":2000000000}`), &cfg))
	assert.Equal(t, 90*time.Second, cfg.A.Duration)
	assert.Equal(t, 2*time.Second, cfg.B.Duration)

	out, err := json.Marshal(cfg.A)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"a":"soon"}`), &cfg))
	assert.Error(t, json.Unmarshal([]byte(`{"a":true}`), &cfg))
}

func TestDuration_YAML(t *testing.T) {
	var cfg struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 100ms\nb: 5\n"), &cfg))
	assert.Equal(t, 100*time.Millisecond, cfg.A.Duration)
	assert.Equal(t, 5*time.Nanosecond, cfg.B.Duration)
}

func TestManualClock_FiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	var order []string
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })

	c.Advance(50 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 2, c.Pending())

	c.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, start.Add(250*time.Millisecond), c.Now())
	assert.Zero(t, c.Pending())
}

func TestManualClock_Stop(t *testing.T) {
	c := NewManualClock(time.Time{})
	var fired atomic.Bool

	timer := c.AfterFunc(time.Second, func() { fired.Store(true) })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired.Load())
}

func TestRealClock_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	RealClock{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
