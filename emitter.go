package spark

import "math"

// EmitterSettings configures NewEmitter. The zero value is usable: black
// particles of size 2 from the origin, moving right at speed 10 with a
// vertical spread of [-3, 3].
type EmitterSettings struct {
	// Colors are the particle color choices; each spawn picks one
	// uniformly. Empty means black.
	Colors []Color
	// Position is the source point particles spawn from.
	Position Vec2
	// Size is the particle radius in pixels. Zero means 2.
	Size float64
	// Speed is the horizontal velocity of new particles. The sign is
	// normalized to its absolute value. Zero means 10.
	Speed float64
	// Spread is the range the vertical velocity is drawn from, as a
	// whole-pixel integer. Fractional bounds are rounded to the nearest
	// whole number. Zero means [-3, 3].
	Spread Range
	// Seed pre-spawns one particle at construction.
	Seed bool
}

// Emitter owns a bounded, ordered list of particle GameObjects. Each Emit
// advances every particle one tick and appends one freshly spawned
// particle; once the list is full the oldest particle is evicted first, so
// at steady state exactly one particle is replaced per tick.
//
// Particles are fresh allocations, not a reused pool — at a few hundred
// short-lived objects per emitter the allocator is not the bottleneck.
type Emitter struct {
	capacity  int
	settings  EmitterSettings
	particles []*GameObject
}

// NewEmitter creates an emitter holding at most capacity particles.
// Capacity values below 1 are clamped to 1. Zero-valued settings fields
// take the documented defaults.
func NewEmitter(capacity int, settings EmitterSettings) *Emitter {
	if capacity < 1 {
		capacity = 1
	}
	if len(settings.Colors) == 0 {
		settings.Colors = []Color{ColorBlack}
	}
	if settings.Size == 0 {
		settings.Size = 2
	}
	if settings.Speed == 0 {
		settings.Speed = 10
	}
	settings.Speed = math.Abs(settings.Speed)
	if settings.Spread == (Range{}) {
		settings.Spread = Range{Min: -3, Max: 3}
	}

	e := &Emitter{
		capacity:  capacity,
		settings:  settings,
		particles: make([]*GameObject, 0, capacity),
	}
	if settings.Seed {
		e.particles = append(e.particles, e.spawn())
	}
	return e
}

// spawn builds one particle at the source point: full acceleration,
// horizontal velocity at the configured speed, vertical velocity drawn
// from the spread range, and a uniformly picked color.
func (e *Emitter) spawn() *GameObject {
	return &GameObject{
		Position: e.settings.Position,
		Velocity: Vec2{
			X: e.settings.Speed,
			Y: float64(RandInt(
				int(math.Round(e.settings.Spread.Min)),
				int(math.Round(e.settings.Spread.Max)),
			)),
		},
		Acceleration: 1,
		Size:         Size{e.settings.Size, e.settings.Size},
		Color:        RandPick(e.settings.Colors),
		render:       drawParticle,
	}
}

// drawParticle fills a circle of radius Size.Width at the particle's
// position.
func drawParticle(ctx *Context, o *GameObject) {
	ctx.FillCircle(o.Position.X, o.Position.Y, o.Size.Width, o.Color)
}

// Emit advances one tick: every existing particle moves, then one new
// particle is appended, evicting the oldest first when the list is full.
// Len never exceeds the capacity.
func (e *Emitter) Emit() {
	for _, p := range e.particles {
		p.Move()
	}
	if len(e.particles) >= e.capacity {
		// FIFO eviction: drop index 0, keep insertion order.
		copy(e.particles, e.particles[1:])
		e.particles = e.particles[:len(e.particles)-1]
	}
	e.particles = append(e.particles, e.spawn())
}

// Render draws every particle in insertion order; later particles draw
// over earlier ones.
func (e *Emitter) Render(ctx *Context) {
	for _, p := range e.particles {
		p.Render(ctx)
	}
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Capacity returns the maximum number of live particles.
func (e *Emitter) Capacity() int {
	return e.capacity
}

// Particles returns the live particle list, oldest first. The returned
// slice MUST NOT be mutated.
func (e *Emitter) Particles() []*GameObject {
	return e.particles
}
