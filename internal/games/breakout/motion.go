package breakout

// ApplyVelocity advances every moving body by vel*dt. Only the ball moves.
// There is no sweep: a fast ball can pass through a thin collider.
func ApplyVelocity(w *World, dt float64) {
	b := &w.Ball
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}
