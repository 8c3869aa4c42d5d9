package ai

import (
	"testing"

	"github.com/milk9111/wildlife/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, PassiveDefaults("deer").Validate())
	require.NoError(t, AggressiveDefaults("wolf").Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		base   func(string) Config
		mutate func(*Config)
		want   error
	}{
		{"buffer equals radius", PassiveDefaults, func(c *Config) { c.EdgeBuffer = c.TerritoryRadius }, ErrInvalidTerritory},
		{"zero radius", PassiveDefaults, func(c *Config) { c.TerritoryRadius = 0 }, ErrInvalidTerritory},
		{"roam range inverted", PassiveDefaults, func(c *Config) { c.MinRoamDistance = 12 }, ErrInvalidRoam},
		{"wait range inverted", AggressiveDefaults, func(c *Config) { c.MinWait = 7 }, ErrInvalidRoam},
		{"no tiers", PassiveDefaults, func(c *Config) { c.SpeedTiers = nil }, ErrInvalidSpeedTiers},
		{"chances too high", PassiveDefaults, func(c *Config) {
			c.SpeedTiers = []SpeedTier{{Speed: 1, Chance: 0.6}, {Speed: 2, Chance: 0.4}, {Speed: 3}}
		}, ErrInvalidSpeedTiers},
		{"zero tier speed", PassiveDefaults, func(c *Config) { c.SpeedTiers[0].Speed = 0 }, ErrInvalidSpeedTiers},
		{"zero detection", PassiveDefaults, func(c *Config) { c.DetectionRadius = 0 }, ErrInvalidThreat},
		{"no flee distance", PassiveDefaults, func(c *Config) { c.FleeDistance = 0 }, ErrInvalidThreat},
		{"no strike distance", AggressiveDefaults, func(c *Config) { c.StrikeDistance = 0 }, ErrInvalidThreat},
		{"zero jump duration", AggressiveDefaults, func(c *Config) { c.JumpDuration = 0 }, ErrInvalidJump},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.base("x")
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLastTierChanceIgnored(t *testing.T) {
	cfg := PassiveDefaults("deer")
	cfg.SpeedTiers[len(cfg.SpeedTiers)-1].Chance = 5
	assert.NoError(t, cfg.Validate())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(PassiveDefaults("deer"), nil)
	assert.ErrorIs(t, err, ErrNilNavigator)

	cfg := PassiveDefaults("deer")
	cfg.EdgeBuffer = 50
	_, err = New(cfg, newFakeNav(common.Vec3{}), quiet())
	assert.ErrorIs(t, err, ErrInvalidTerritory)
}

func TestSpeedTierSelection(t *testing.T) {
	tests := []struct {
		roll float64
		want float64
	}{
		{0.1, 0.8},
		{0.39, 0.8},
		{0.45, 2.5},
		{0.6, 1.5},
		{0.99, 1.5},
	}

	for _, tt := range tests {
		cfg := PassiveDefaults("deer")
		cfg.Center = origin()
		a, err := New(cfg, newFakeNav(common.Vec3{}), WithRandom(constRandom(tt.roll)), quiet())
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.State().RoamSpeed, "roll %v", tt.roll)
	}
}
