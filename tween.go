package spark

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a GameObject
// simultaneously. Create one via the convenience constructors
// (TweenObjectPosition, TweenObjectVelocity, TweenObjectSize,
// TweenObjectAcceleration) and call Update(dt) each tick; values are
// written straight to the target fields.
//
// There is no global animation manager — callers drive Update themselves,
// typically from the engine's Loop hook.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	clamp  [2]bool // restrict the written value to [0, 1]
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		v := float64(val)
		if g.clamp[i] {
			v = clamp01(v)
		}
		*g.fields[i] = v
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenObjectPosition creates a TweenGroup that animates the object's
// position to (toX, toY) over the given duration using the easing function.
func TweenObjectPosition(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(o.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &o.Position.X
	g.fields[1] = &o.Position.Y
	return g
}

// TweenObjectVelocity creates a TweenGroup that animates the object's
// velocity to (toX, toY) over the given duration using the easing function.
func TweenObjectVelocity(o *GameObject, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(o.Velocity.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(o.Velocity.Y), float32(toY), duration, fn)
	g.fields[0] = &o.Velocity.X
	g.fields[1] = &o.Velocity.Y
	return g
}

// TweenObjectSize creates a TweenGroup that animates the object's width and
// height to the given targets over the specified duration.
func TweenObjectSize(o *GameObject, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(o.Size.Width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(o.Size.Height), float32(toH), duration, fn)
	g.fields[0] = &o.Size.Width
	g.fields[1] = &o.Size.Height
	return g
}

// TweenObjectAcceleration creates a TweenGroup that animates the object's
// acceleration toward the target. Written values are clamped into [0, 1] so
// the object's acceleration invariant holds even with overshooting easing
// functions.
func TweenObjectAcceleration(o *GameObject, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(o.Acceleration), float32(clamp01(to)), duration, fn)
	g.fields[0] = &o.Acceleration
	g.clamp[0] = true
	return g
}
