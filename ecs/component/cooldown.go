package component

// Cooldown is a countdown in seconds. CooldownSystem removes it once it
// runs out; systems treat its presence as "not ready".
type Cooldown struct {
	Remaining float64
}

var CooldownComponent = NewComponent[Cooldown]()
