package component

import (
	"image/color"

	core "github.com/milk9111/wildlife/component"
)

// PlayerHealth is the player's damage intake and an ai.DamageSink. Each
// hit opens a damage cooldown that ignores further hits. A killing hit
// restores full health at once.
type PlayerHealth struct {
	Pool           *core.Health
	DamageCooldown float64
	FlashDuration  float64
	FlashColor     color.Color

	Hits   int
	Deaths int

	pending []Hit
}

var PlayerHealthComponent = NewComponent[PlayerHealth]()

func NewPlayerHealth(max int, cooldown, flash float64, c color.Color) *PlayerHealth {
	p := &PlayerHealth{
		Pool:           core.NewHealth(max),
		DamageCooldown: cooldown,
		FlashDuration:  flash,
		FlashColor:     c,
	}
	p.Pool.OnDamage = p.record
	return p
}

func (p *PlayerHealth) record(h *core.Health, amount int) {
	p.Hits++
	p.pending = append(p.pending, Hit{
		Amount:   amount,
		Health:   h.Current,
		Fraction: h.Fraction(),
		Fatal:    h.Current <= 0,
	})
}

func (p *PlayerHealth) ApplyDamage(amount int) {
	if p == nil || p.Pool == nil {
		return
	}
	if !p.Pool.ApplyDamage(amount) {
		return
	}
	if p.Pool.Dead {
		p.Deaths++
		p.Pool.Reset()
	}
	p.Pool.StartInvulnerable(p.DamageCooldown)
}

// Hit is one applied damage event. Health and Fraction are what remained
// right after it.
type Hit struct {
	Amount   int
	Health   int
	Fraction float64
	Fatal    bool
}

// DrainHits returns the hits applied since the last drain.
func (p *PlayerHealth) DrainHits() []Hit {
	out := p.pending
	p.pending = nil
	return out
}
