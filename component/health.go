package component

// Health is a reusable health pool for anything that can take damage.
// Invulnerable is a time window in seconds during which damage is ignored.
type Health struct {
	Max          int
	Current      int
	Invulnerable float64
	Dead         bool

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// ApplyDamage subtracts amount unless dead or invulnerable. OnDeath fires at
// most once. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Dead || h.Invulnerable > 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Reset revives the pool at full health.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
	h.Invulnerable = 0
}

// StartInvulnerable opens a damage-ignore window of the given seconds.
func (h *Health) StartInvulnerable(seconds float64) {
	if h == nil || seconds <= 0 {
		return
	}
	h.Invulnerable = seconds
}

// Tick advances the invulnerability window.
func (h *Health) Tick(dt float64) {
	if h == nil || h.Invulnerable <= 0 {
		return
	}
	h.Invulnerable -= dt
	if h.Invulnerable < 0 {
		h.Invulnerable = 0
	}
}

// Fraction returns Current/Max in [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
