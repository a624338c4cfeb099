package game

import (
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// HitsPipe reports whether the bird box overlaps either segment of the
// pipe. The caller passes the already-shrunk bird box; the pipe segments
// are full size: top from the top of the surface down to the gap, bottom
// from below the gap to the bottom of the surface.
func HitsPipe(bird core.Box, p Pipe, pipeW, gap, surfaceH float64) bool {
	top := core.NewBox(p.X, 0, pipeW, p.GapTop)
	bottom := core.NewBox(p.X, p.GapTop+gap, pipeW, surfaceH-p.GapTop-gap)
	return bird.Intersects(top) || bird.Intersects(bottom)
}

// OutOfBounds reports whether the unshrunk bird box has left the surface:
// top edge at or above the top, or bottom edge at or beyond the bottom.
func OutOfBounds(bird core.Box, surfaceH float64) bool {
	return bird.Y <= 0 || bird.Bottom() >= surfaceH
}

// Collides checks the bird against the world bounds and every live pipe.
// The bird box is inset by margin on all sides for the pipe tests, making
// collision slightly forgiving; the bounds test uses the full box.
// First match wins; the result is a boolean OR, so order cannot change it.
func Collides(bird core.Box, margin float64, pipes []Pipe, pipeW, gap, surfaceH float64) bool {
	if OutOfBounds(bird, surfaceH) {
		return true
	}
	shrunk := bird.Inset(margin)
	for _, p := range pipes {
		if HitsPipe(shrunk, p, pipeW, gap, surfaceH) {
			return true
		}
	}
	return false
}
