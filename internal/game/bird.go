package game

// Bird is the player-controlled falling object.
// Y is the top edge of its box in logical units; positive velocity is down.
type Bird struct {
	Y    float64
	Vel  float64
	Tilt float64 // Banking angle in degrees, negative = nose up
}

// Impulse assigns the flap velocity, overriding any current velocity.
// The assignment is never additive.
func (b *Bird) Impulse(v float64) {
	b.Vel = v
}

// Fall applies one tick of gravity, then advances the position by the
// updated velocity.
func (b *Bird) Fall(gravity float64) {
	b.Vel += gravity
	b.Y += b.Vel
}

// Lean eases the tilt toward a velocity-derived target, producing a
// banking visual without discrete states.
func (b *Bird) Lean(scale, ease float64) {
	target := b.Vel * scale
	b.Tilt += (target - b.Tilt) * ease
}
