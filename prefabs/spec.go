package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/wildlife/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpeciesSpec is the tuning of one kind of animal, e.g. deer.yaml.
type SpeciesSpec struct {
	Name      string        `yaml:"name"`
	Variant   string        `yaml:"variant"`
	Health    int           `yaml:"health"`
	Territory TerritorySpec `yaml:"territory"`
	Roam      RoamSpec      `yaml:"roam"`
	Threat    ThreatSpec    `yaml:"threat"`
	Attack    AttackSpec    `yaml:"attack"`
	Flash     FlashSpec     `yaml:"flash"`
	Body      BodySpec      `yaml:"body"`
}

func LoadSpecies(name string) (SpeciesSpec, error) {
	return LoadSpec[SpeciesSpec](specFile(name))
}

type TerritorySpec struct {
	Center     *common.Vec3 `yaml:"center"`
	Radius     float64      `yaml:"radius"`
	EdgeBuffer float64      `yaml:"edge_buffer"`
	EdgeJitter float64      `yaml:"edge_jitter"`
}

type RoamSpec struct {
	MinDistance float64         `yaml:"min_distance"`
	MaxDistance float64         `yaml:"max_distance"`
	MinWait     float64         `yaml:"min_wait"`
	MaxWait     float64         `yaml:"max_wait"`
	Speeds      []SpeedTierSpec `yaml:"speeds"`
}

type SpeedTierSpec struct {
	Name   string  `yaml:"name"`
	Speed  float64 `yaml:"speed"`
	Chance float64 `yaml:"chance"`
}

type ThreatSpec struct {
	Radius       float64 `yaml:"radius"`
	Speed        float64 `yaml:"speed"`
	Cooldown     float64 `yaml:"cooldown"`
	FleeDistance float64 `yaml:"flee_distance"`
}

type AttackSpec struct {
	StrikeDistance float64 `yaml:"strike_distance"`
	Damage         int     `yaml:"damage"`
	JumpHeight     float64 `yaml:"jump_height"`
	JumpDuration   float64 `yaml:"jump_duration"`
	HitRange       float64 `yaml:"hit_range"`
}

type FlashSpec struct {
	Color    *YAMLColor `yaml:"color"`
	Duration float64    `yaml:"duration"`
}

type BodySpec struct {
	Radius           float64 `yaml:"radius"`
	StoppingDistance float64 `yaml:"stopping_distance"`
}

// SceneSpec lays out a headless run, e.g. meadow.yaml.
type SceneSpec struct {
	Name      string      `yaml:"name"`
	Bounds    BoxSpec     `yaml:"bounds"`
	Obstacles []BoxSpec   `yaml:"obstacles"`
	Player    PlayerSpec  `yaml:"player"`
	Spawns    []SpawnSpec `yaml:"spawns"`
}

func LoadScene(name string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](specFile(name))
}

type BoxSpec struct {
	Min common.Vec3 `yaml:"min"`
	Max common.Vec3 `yaml:"max"`
}

type PlayerSpec struct {
	Script         string           `yaml:"script"`
	Start          common.Vec3      `yaml:"start"`
	Radius         float64          `yaml:"radius"`
	Health         int              `yaml:"health"`
	DamageCooldown float64          `yaml:"damage_cooldown"`
	Flash          FlashSpec        `yaml:"flash"`
	Attack         PlayerAttackSpec `yaml:"attack"`
}

// PlayerAttackSpec is the proximity sweep: every Interval seconds each
// animal within Range takes Damage.
type PlayerAttackSpec struct {
	Range    float64 `yaml:"range"`
	Damage   int     `yaml:"damage"`
	Interval float64 `yaml:"interval"`
}

// SpawnSpec places Count animals of Species on a ring of radius Spread
// around Position.
type SpawnSpec struct {
	Species  string      `yaml:"species"`
	Position common.Vec3 `yaml:"position"`
	Count    int         `yaml:"count"`
	Spread   float64     `yaml:"spread"`
}

// YAMLColor parses "#RRGGBB", "#RRGGBBAA" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func specFile(name string) string {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return name
	}
	return name + ".yaml"
}
