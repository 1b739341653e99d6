package game

// Explosion is a decaying visual marker. It takes no part in collisions.
type Explosion struct {
	X, Y   float64
	Radius int
}

// Decay shrinks the marker and reports whether it is still visible.
func (e *Explosion) Decay() bool {
	e.Radius--
	return e.Radius > 0
}
