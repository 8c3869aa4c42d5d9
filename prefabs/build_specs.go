package prefabs

import (
	"fmt"
	"strings"

	"github.com/milk9111/wildlife/ai"
	"github.com/milk9111/wildlife/nav"
)

const (
	defaultBodyRadius       = 0.5
	defaultStoppingDistance = 0.5
)

// Config builds the behavior tuning. Fields left out of the YAML take the
// variant's defaults.
func (s SpeciesSpec) Config() (ai.Config, error) {
	var cfg ai.Config
	switch strings.ToLower(strings.TrimSpace(s.Variant)) {
	case "", "passive":
		cfg = ai.PassiveDefaults(s.Name)
	case "aggressive":
		cfg = ai.AggressiveDefaults(s.Name)
	default:
		return ai.Config{}, fmt.Errorf("prefabs: species %q: unknown variant %q", s.Name, s.Variant)
	}

	if s.Health > 0 {
		cfg.MaxHealth = s.Health
	}

	t := s.Territory
	if t.Center != nil {
		c := *t.Center
		cfg.Center = &c
	}
	setFloat(&cfg.TerritoryRadius, t.Radius)
	setFloat(&cfg.EdgeBuffer, t.EdgeBuffer)
	setFloat(&cfg.EdgeJitter, t.EdgeJitter)

	r := s.Roam
	setFloat(&cfg.MinRoamDistance, r.MinDistance)
	setFloat(&cfg.MaxRoamDistance, r.MaxDistance)
	setFloat(&cfg.MinWait, r.MinWait)
	setFloat(&cfg.MaxWait, r.MaxWait)
	if len(r.Speeds) > 0 {
		cfg.SpeedTiers = make([]ai.SpeedTier, len(r.Speeds))
		for i, tier := range r.Speeds {
			cfg.SpeedTiers[i] = ai.SpeedTier{Name: tier.Name, Speed: tier.Speed, Chance: tier.Chance}
		}
	}

	th := s.Threat
	setFloat(&cfg.DetectionRadius, th.Radius)
	setFloat(&cfg.ThreatSpeed, th.Speed)
	setFloat(&cfg.Cooldown, th.Cooldown)
	setFloat(&cfg.FleeDistance, th.FleeDistance)

	at := s.Attack
	setFloat(&cfg.StrikeDistance, at.StrikeDistance)
	if at.Damage > 0 {
		cfg.StrikeDamage = at.Damage
	}
	setFloat(&cfg.JumpHeight, at.JumpHeight)
	setFloat(&cfg.JumpDuration, at.JumpDuration)
	setFloat(&cfg.JumpHitRange, at.HitRange)

	if s.Flash.Color != nil && s.Flash.Color.Color != nil {
		cfg.FlashColor = s.Flash.Color.Color
	}
	setFloat(&cfg.FlashDuration, s.Flash.Duration)
	setFloat(&cfg.StoppingDistance, s.Body.StoppingDistance)

	if err := cfg.Validate(); err != nil {
		return ai.Config{}, fmt.Errorf("prefabs: species %q: %w", s.Name, err)
	}
	return cfg, nil
}

// BodyRadius is the navigation body radius, defaulting to half a unit.
func (s SpeciesSpec) BodyRadius() float64 {
	if s.Body.Radius > 0 {
		return s.Body.Radius
	}
	return defaultBodyRadius
}

func (s SpeciesSpec) StoppingDistance() float64 {
	if s.Body.StoppingDistance > 0 {
		return s.Body.StoppingDistance
	}
	return defaultStoppingDistance
}

func (b BoxSpec) Box() nav.Box {
	return nav.Box{Min: b.Min, Max: b.Max}
}

// Surface builds the scene's navigation surface.
func (s SceneSpec) Surface() (*nav.Surface, error) {
	obstacles := make([]nav.Box, len(s.Obstacles))
	for i, o := range s.Obstacles {
		obstacles[i] = o.Box()
	}
	surface, err := nav.NewSurface(s.Bounds.Box(), obstacles)
	if err != nil {
		return nil, fmt.Errorf("prefabs: scene %q: %w", s.Name, err)
	}
	return surface, nil
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
