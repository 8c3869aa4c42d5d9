package ai

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/wildlife/common"
	"golang.org/x/image/colornames"
)

var (
	ErrInvalidTerritory  = errors.New("ai: invalid territory")
	ErrInvalidRoam       = errors.New("ai: invalid roam parameters")
	ErrInvalidSpeedTiers = errors.New("ai: invalid speed tiers")
	ErrInvalidThreat     = errors.New("ai: invalid threat parameters")
	ErrInvalidJump       = errors.New("ai: invalid jump parameters")
	ErrNilNavigator      = errors.New("ai: nil navigator")
)

// Variant selects how an agent responds to its target.
type Variant int

const (
	// Passive agents flee.
	Passive Variant = iota
	// Aggressive agents charge and jump-attack.
	Aggressive
)

func (v Variant) String() string {
	switch v {
	case Passive:
		return "passive"
	case Aggressive:
		return "aggressive"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// SpeedTier is a named roaming speed. Chance is the probability of picking
// the tier; the last tier in a list takes the remainder and its Chance is
// ignored.
type SpeedTier struct {
	Name   string
	Speed  float64
	Chance float64
}

// Config is the immutable tuning of one species. Runtime state lives on the
// Agent.
type Config struct {
	Name      string
	Variant   Variant
	MaxHealth int

	// Center defaults to the spawn position when nil.
	Center          *common.Vec3
	TerritoryRadius float64
	EdgeBuffer      float64
	EdgeJitter      float64

	MinRoamDistance float64
	MaxRoamDistance float64
	MinWait         float64
	MaxWait         float64
	SpeedTiers      []SpeedTier

	// DetectionRadius is the flee trigger for passive agents and the aggro
	// radius for aggressive ones.
	DetectionRadius float64
	ThreatSpeed     float64
	Cooldown        float64
	FleeDistance    float64

	StrikeDistance float64
	StrikeDamage   int
	JumpHeight     float64
	JumpDuration   float64
	JumpHitRange   float64

	FlashDuration float64
	FlashColor    color.Color

	MaxAttempts        int
	DestinationTimeout float64
	StuckEpsilon       float64
	StuckThreshold     float64
	StoppingDistance   float64
	WarpRadius         float64
}

const (
	defaultMaxAttempts        = 10
	defaultDestinationTimeout = 15
	defaultStuckEpsilon       = 0.05
	defaultStuckThreshold     = 3
	defaultStoppingDistance   = 0.5
	defaultWarpRadius         = 5
	defaultFlashDuration      = 0.2
	defaultJumpHitRange       = 2
	defaultStrikeDamage       = 10

	// arrivalSlack is added to the stopping distance when deciding arrival.
	arrivalSlack = 0.1
)

// PassiveDefaults is the tuning of a grazing animal such as a deer.
func PassiveDefaults(name string) Config {
	return Config{
		Name:            name,
		Variant:         Passive,
		MaxHealth:       1,
		TerritoryRadius: 40,
		EdgeBuffer:      5,
		EdgeJitter:      0.5,
		MinRoamDistance: 3,
		MaxRoamDistance: 10,
		MinWait:         5,
		MaxWait:         10,
		SpeedTiers: []SpeedTier{
			{Name: "slow", Speed: 0.8, Chance: 0.4},
			{Name: "fast", Speed: 2.5, Chance: 0.15},
			{Name: "normal", Speed: 1.5},
		},
		DetectionRadius: 3,
		ThreatSpeed:     3,
		Cooldown:        3,
		FleeDistance:    15,
		FlashColor:      colornames.Red,
	}.withPolicy()
}

// AggressiveDefaults is the tuning of a territorial predator such as a wolf.
func AggressiveDefaults(name string) Config {
	return Config{
		Name:            name,
		Variant:         Aggressive,
		MaxHealth:       1,
		TerritoryRadius: 40,
		EdgeBuffer:      5,
		EdgeJitter:      0.3,
		MinRoamDistance: 3,
		MaxRoamDistance: 8,
		MinWait:         3,
		MaxWait:         6,
		SpeedTiers:      []SpeedTier{{Name: "roam", Speed: 1.2}},
		DetectionRadius: 5,
		ThreatSpeed:     4,
		Cooldown:        1.5,
		StrikeDistance:  2,
		JumpHeight:      1.5,
		JumpDuration:    0.4,
		FlashColor:      colornames.Red,
	}.withPolicy()
}

// withPolicy fills zero policy fields with their defaults.
func (c Config) withPolicy() Config {
	if c.MaxHealth <= 0 {
		c.MaxHealth = 1
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.DestinationTimeout <= 0 {
		c.DestinationTimeout = defaultDestinationTimeout
	}
	if c.StuckEpsilon <= 0 {
		c.StuckEpsilon = defaultStuckEpsilon
	}
	if c.StuckThreshold <= 0 {
		c.StuckThreshold = defaultStuckThreshold
	}
	if c.StoppingDistance <= 0 {
		c.StoppingDistance = defaultStoppingDistance
	}
	if c.WarpRadius <= 0 {
		c.WarpRadius = defaultWarpRadius
	}
	if c.FlashDuration <= 0 {
		c.FlashDuration = defaultFlashDuration
	}
	if c.FlashColor == nil {
		c.FlashColor = colornames.Red
	}
	if c.Variant == Aggressive {
		if c.JumpHitRange <= 0 {
			c.JumpHitRange = defaultJumpHitRange
		}
		if c.StrikeDamage <= 0 {
			c.StrikeDamage = defaultStrikeDamage
		}
	}
	return c
}

// Validate reports the first problem with c. Errors wrap the package
// sentinels.
func (c Config) Validate() error {
	if c.TerritoryRadius <= 0 {
		return fmt.Errorf("%w: radius %.2f must be positive", ErrInvalidTerritory, c.TerritoryRadius)
	}
	if c.EdgeBuffer < 0 || c.EdgeBuffer >= c.TerritoryRadius {
		return fmt.Errorf("%w: buffer %.2f must be in [0, %.2f)", ErrInvalidTerritory, c.EdgeBuffer, c.TerritoryRadius)
	}
	if c.EdgeJitter < 0 {
		return fmt.Errorf("%w: edge jitter %.2f is negative", ErrInvalidTerritory, c.EdgeJitter)
	}

	if c.MinRoamDistance < 0 || c.MaxRoamDistance <= 0 || c.MinRoamDistance > c.MaxRoamDistance {
		return fmt.Errorf("%w: roam distance [%.2f, %.2f]", ErrInvalidRoam, c.MinRoamDistance, c.MaxRoamDistance)
	}
	if c.MinWait < 0 || c.MinWait > c.MaxWait {
		return fmt.Errorf("%w: wait [%.2f, %.2f]", ErrInvalidRoam, c.MinWait, c.MaxWait)
	}

	if len(c.SpeedTiers) == 0 {
		return fmt.Errorf("%w: no tiers", ErrInvalidSpeedTiers)
	}
	sum := 0.0
	for i, tier := range c.SpeedTiers {
		if tier.Speed <= 0 {
			return fmt.Errorf("%w: tier %q speed %.2f", ErrInvalidSpeedTiers, tier.Name, tier.Speed)
		}
		if i == len(c.SpeedTiers)-1 {
			break
		}
		if tier.Chance < 0 {
			return fmt.Errorf("%w: tier %q chance %.2f", ErrInvalidSpeedTiers, tier.Name, tier.Chance)
		}
		sum += tier.Chance
	}
	if sum >= 1 {
		return fmt.Errorf("%w: chances sum to %.2f, want < 1", ErrInvalidSpeedTiers, sum)
	}

	if c.DetectionRadius <= 0 || c.ThreatSpeed <= 0 || c.Cooldown < 0 {
		return fmt.Errorf("%w: radius %.2f speed %.2f cooldown %.2f", ErrInvalidThreat, c.DetectionRadius, c.ThreatSpeed, c.Cooldown)
	}

	switch c.Variant {
	case Passive:
		if c.FleeDistance <= 0 {
			return fmt.Errorf("%w: flee distance %.2f", ErrInvalidThreat, c.FleeDistance)
		}
	case Aggressive:
		if c.StrikeDistance <= 0 {
			return fmt.Errorf("%w: strike distance %.2f", ErrInvalidThreat, c.StrikeDistance)
		}
		if c.JumpDuration <= 0 || c.JumpHeight < 0 {
			return fmt.Errorf("%w: height %.2f duration %.2f", ErrInvalidJump, c.JumpHeight, c.JumpDuration)
		}
	default:
		return fmt.Errorf("%w: unknown variant %d", ErrInvalidThreat, int(c.Variant))
	}
	return nil
}

// territoryAt resolves the territory for an agent spawned at spawn.
func (c Config) territoryAt(spawn common.Vec3) Territory {
	center := spawn
	if c.Center != nil {
		center = *c.Center
	}
	return Territory{Center: center, Radius: c.TerritoryRadius, Buffer: c.EdgeBuffer}
}
