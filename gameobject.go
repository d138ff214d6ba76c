package spark

import "math"

// ObjectSettings configures NewGameObject. Render is mandatory; Init runs
// once on the freshly constructed object to set its initial kinematic
// state.
type ObjectSettings struct {
	Render func(*Context, *GameObject)
	Init   func(*GameObject)
}

// GameObject is a generic drawable entity: a position, a velocity, a
// scalar acceleration multiplier, a size, a color, and a caller-supplied
// draw routine. Fields are exported for direct reads; use the setters when
// you want the validation contracts enforced.
//
// Acceleration is a uniform velocity multiplier in [0, 1], not a physical
// dv/dt: Move applies position += velocity * acceleration per axis, so 0
// freezes the object and 1 applies the full velocity.
type GameObject struct {
	Position     Vec2
	Velocity     Vec2
	Acceleration float64
	Size         Size
	Color        Color

	render func(*Context, *GameObject)
}

// NewGameObject constructs an object with zero position and velocity,
// acceleration 0, and black color. Returns a ValidationError if
// settings.Render is nil. settings.Init, when present, runs on the new
// object before it is returned.
func NewGameObject(settings ObjectSettings) (*GameObject, error) {
	if settings.Render == nil {
		return nil, validationErrorf("game object requires a render routine")
	}
	o := &GameObject{
		Color:  ColorBlack,
		render: settings.Render,
	}
	if settings.Init != nil {
		settings.Init(o)
	}
	return o, nil
}

// Render invokes the object's draw routine with the given context.
func (o *GameObject) Render(ctx *Context) {
	o.render(ctx, o)
}

// SetPosition sets both position coordinates. Returns a ValidationError if
// either value is NaN or infinite. Use SetPositionX or SetPositionY to
// change one axis and keep the other.
func (o *GameObject) SetPosition(x, y float64) error {
	if !finite(x) || !finite(y) {
		return validationErrorf("position must be finite, got (%v, %v)", x, y)
	}
	o.Position = Vec2{x, y}
	return nil
}

// SetPositionX sets the X coordinate only.
func (o *GameObject) SetPositionX(x float64) error {
	return o.SetPosition(x, o.Position.Y)
}

// SetPositionY sets the Y coordinate only.
func (o *GameObject) SetPositionY(y float64) error {
	return o.SetPosition(o.Position.X, y)
}

// SetVelocity sets both velocity components. Same contract as SetPosition.
func (o *GameObject) SetVelocity(x, y float64) error {
	if !finite(x) || !finite(y) {
		return validationErrorf("velocity must be finite, got (%v, %v)", x, y)
	}
	o.Velocity = Vec2{x, y}
	return nil
}

// SetVelocityX sets the X component only.
func (o *GameObject) SetVelocityX(x float64) error {
	return o.SetVelocity(x, o.Velocity.Y)
}

// SetVelocityY sets the Y component only.
func (o *GameObject) SetVelocityY(y float64) error {
	return o.SetVelocity(o.Velocity.X, y)
}

// SetAcceleration sets the velocity multiplier. Returns a ValidationError
// unless a is finite and in [0, 1].
func (o *GameObject) SetAcceleration(a float64) error {
	if !finite(a) || a < 0 || a > 1 {
		return validationErrorf("acceleration must be in [0, 1], got %v", a)
	}
	o.Acceleration = a
	return nil
}

// SetSize sets the object's dimensions. No validation; any values are
// accepted.
func (o *GameObject) SetSize(width, height float64) {
	o.Size = Size{width, height}
}

// SetSquareSize sets equal width and height.
func (o *GameObject) SetSquareSize(side float64) {
	o.SetSize(side, side)
}

// Move integrates one tick: position += velocity * acceleration per axis.
// With zero velocity or zero acceleration the position is unchanged.
func (o *GameObject) Move() {
	o.Position.X += o.Velocity.X * o.Acceleration
	o.Position.Y += o.Velocity.Y * o.Acceleration

	// Edge bounce extension point, intentionally inactive. Reflecting
	// velocity at the surface bounds would look like:
	//
	//	if o.Position.X < bounds.X || o.Position.X+o.Size.Width > bounds.X+bounds.Width {
	//		o.Velocity.X = -o.Velocity.X
	//	}
	//	if o.Position.Y < bounds.Y || o.Position.Y+o.Size.Height > bounds.Y+bounds.Height {
	//		o.Velocity.Y = -o.Velocity.Y
	//	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
