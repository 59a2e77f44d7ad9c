package game

// Clock supplies the animation tick. Ticks never go backwards.
type Clock interface {
	CurrentTick() int
	Advance()
}

// FrameClock counts Update calls. The game advances it once per update,
// after input handling, so exports see the tick of the last drawn frame.
type FrameClock struct {
	tick int
}

// CurrentTick implements Clock.
func (c *FrameClock) CurrentTick() int { return c.tick }

// Advance implements Clock by moving one tick forward.
func (c *FrameClock) Advance() { c.tick++ }
