package component

// Resource is a clamped pool with 0 <= Current <= Max
// Every mutator clamps; Max is never negative
type Resource struct {
	Current float64
	Max     float64
}

// NewResource returns a full pool of size max
func NewResource(max float64) Resource {
	if max < 0 {
		max = 0
	}
	return Resource{Current: max, Max: max}
}

func (r *Resource) clamp() {
	if r.Max < 0 {
		r.Max = 0
	}
	if r.Current < 0 {
		r.Current = 0
	}
	if r.Current > r.Max {
		r.Current = r.Max
	}
}

// Set assigns Current and clamps
func (r *Resource) Set(v float64) {
	r.Current = v
	r.clamp()
}

// SetMax changes capacity, clamping Current into the new bound
func (r *Resource) SetMax(max float64) {
	r.Max = max
	r.clamp()
}

// Add applies a signed delta and returns the new value
func (r *Resource) Add(delta float64) float64 {
	r.Current += delta
	r.clamp()
	return r.Current
}

// Drain subtracts amount (clamped at 0) and returns the new value
func (r *Resource) Drain(amount float64) float64 {
	return r.Add(-amount)
}

// Spend subtracts cost only if fully affordable
func (r *Resource) Spend(cost float64) bool {
	if cost < 0 || r.Current < cost {
		return false
	}
	r.Current -= cost
	r.clamp()
	return true
}

// Fill restores to Max
func (r *Resource) Fill() {
	r.Current = r.Max
}

// Ratio is Current/Max, 0 for an empty-capacity pool
func (r *Resource) Ratio() float64 {
	if r.Max <= 0 {
		return 0
	}
	return r.Current / r.Max
}

// Empty reports Current at or below epsilon
func (r *Resource) Empty() bool {
	return r.Current <= 1e-4
}

func (r *Resource) Full() bool {
	return r.Current >= r.Max
}
