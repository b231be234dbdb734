package component

// Vitals is the resource set owned by one combatant
// Enemies use Stamina as poise; Faith is player-only and floored at zero without a cap
type Vitals struct {
	Health  Resource
	Stamina Resource
	Faith   float64
}

// NewVitals returns full health and stamina pools
func NewVitals(maxHealth, maxStamina, faith float64) Vitals {
	v := Vitals{
		Health:  NewResource(maxHealth),
		Stamina: NewResource(maxStamina),
	}
	v.SetFaith(faith)
	return v
}

// AddFaith applies a signed faith delta floored at zero
func (v *Vitals) AddFaith(delta float64) {
	v.SetFaith(v.Faith + delta)
}

// SetFaith assigns faith floored at zero
func (v *Vitals) SetFaith(f float64) {
	if f < 0 {
		f = 0
	}
	v.Faith = f
}

// SpendFaith deducts cost only if affordable
func (v *Vitals) SpendFaith(cost float64) bool {
	if v.Faith < cost {
		return false
	}
	v.Faith -= cost
	return true
}

// Restore fills health and stamina
func (v *Vitals) Restore() {
	v.Health.Fill()
	v.Stamina.Fill()
}
