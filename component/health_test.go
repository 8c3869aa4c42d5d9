package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthApplyDamage(t *testing.T) {
	cases := []struct {
		name      string
		max       int
		hits      []int
		want      int
		wantDead  bool
		wantDeath int
	}{
		{"single_hit", 10, []int{3}, 7, false, 0},
		{"exact_kill", 5, []int{5}, 0, true, 1},
		{"overkill_clamps", 5, []int{50}, 0, true, 1},
		{"hits_after_death_ignored", 5, []int{5, 5, 5}, 0, true, 1},
		{"non_positive_ignored", 5, []int{0, -3}, 5, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewHealth(c.max)
			deaths, damaged := 0, 0
			h.OnDamage = func(_ *Health, amount int) { damaged += amount }
			h.OnDeath = func(*Health) { deaths++ }
			for _, d := range c.hits {
				h.ApplyDamage(d)
			}
			assert.Equal(t, c.want, h.Current)
			assert.Equal(t, c.wantDead, h.Dead)
			assert.Equal(t, c.wantDeath, deaths)
			assert.Equal(t, c.max-c.want, min(damaged, c.max), "OnDamage sees every applied hit")
		})
	}
}

func TestHealthInvulnerableWindow(t *testing.T) {
	h := NewHealth(100)
	require.True(t, h.ApplyDamage(10))
	h.StartInvulnerable(0.5)

	assert.False(t, h.ApplyDamage(10), "damage inside the window is ignored")
	h.Tick(0.25)
	assert.False(t, h.ApplyDamage(10))
	h.Tick(0.25)
	assert.True(t, h.ApplyDamage(10))
	assert.Equal(t, 80, h.Current)
}

func TestHealthResetAndFraction(t *testing.T) {
	h := NewHealth(4)
	h.ApplyDamage(4)
	require.True(t, h.Dead)
	assert.Equal(t, 0.0, h.Fraction())

	h.Reset()
	assert.False(t, h.Dead)
	assert.Equal(t, 4, h.Current)
	assert.Equal(t, 1.0, h.Fraction())
}
