package sim

import "github.com/arcadekit/marblestorm/internal/core"

// Projectile is a marble in free flight, fired from the shooter. It moves
// in straight-line screen space until it contacts the chain or leaves the
// play area.
type Projectile struct {
	ID    int
	Pos   core.Vec2
	Vel   core.Vec2
	Color Color
	EMP   bool // armed EMP shot: detonates on contact instead of inserting
}

// Shooter is the player-controlled launcher at the center of the viewport.
type Shooter struct {
	Pos     core.Vec2
	Angle   float64 // radians, 0 points right, positive rotates clockwise
	Current Color
	Next    Color
}
