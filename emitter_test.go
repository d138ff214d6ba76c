package spark

import (
	"math"
	"testing"
)

func TestEmitterDefaults(t *testing.T) {
	e := NewEmitter(10, EmitterSettings{})
	if e.Capacity() != 10 {
		t.Errorf("Capacity() = %d, want 10", e.Capacity())
	}
	if e.Len() != 0 {
		t.Errorf("Len() = %d, want 0 without Seed", e.Len())
	}
	if e.settings.Size != 2 {
		t.Errorf("default size = %v, want 2", e.settings.Size)
	}
	if e.settings.Speed != 10 {
		t.Errorf("default speed = %v, want 10", e.settings.Speed)
	}
	if e.settings.Spread != (Range{Min: -3, Max: 3}) {
		t.Errorf("default spread = %v, want [-3, 3]", e.settings.Spread)
	}
	if len(e.settings.Colors) != 1 || e.settings.Colors[0] != ColorBlack {
		t.Errorf("default colors = %v, want [black]", e.settings.Colors)
	}
}

func TestEmitterSpeedNormalized(t *testing.T) {
	e := NewEmitter(1, EmitterSettings{Speed: -25})
	p := e.spawn()
	if p.Velocity.X != 25 {
		t.Errorf("Velocity.X = %v, want 25 (sign normalized)", p.Velocity.X)
	}
}

func TestEmitterCapacityClamped(t *testing.T) {
	e := NewEmitter(0, EmitterSettings{})
	if e.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", e.Capacity())
	}
	e2 := NewEmitter(-5, EmitterSettings{})
	if e2.Capacity() != 1 {
		t.Errorf("Capacity() = %d, want 1", e2.Capacity())
	}
}

func TestEmitterSeed(t *testing.T) {
	e := NewEmitter(10, EmitterSettings{Seed: true})
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1 with Seed", e.Len())
	}
}

func TestSpawnParticleState(t *testing.T) {
	source := Vec2{X: 50, Y: 100}
	e := NewEmitter(5, EmitterSettings{
		Position: source,
		Size:     4,
		Speed:    12,
		Spread:   Range{Min: -3, Max: 3},
		Colors:   []Color{{1, 0, 0, 1}},
	})

	for i := 0; i < 50; i++ {
		p := e.spawn()
		if p.Position != source {
			t.Fatalf("spawn position = %v, want source %v", p.Position, source)
		}
		if p.Velocity.X != 12 {
			t.Fatalf("spawn Velocity.X = %v, want 12", p.Velocity.X)
		}
		if p.Velocity.Y < -3 || p.Velocity.Y > 3 {
			t.Fatalf("spawn Velocity.Y = %v, outside spread [-3, 3]", p.Velocity.Y)
		}
		if p.Velocity.Y != math.Trunc(p.Velocity.Y) {
			t.Fatalf("spawn Velocity.Y = %v, want a whole number", p.Velocity.Y)
		}
		if p.Acceleration != 1 {
			t.Fatalf("spawn acceleration = %v, want 1", p.Acceleration)
		}
		if p.Size != (Size{4, 4}) {
			t.Fatalf("spawn size = %v, want 4x4", p.Size)
		}
		if p.Color != (Color{1, 0, 0, 1}) {
			t.Fatalf("spawn color = %v, want red", p.Color)
		}
	}
}

func TestSpawnSpreadRoundsFractionalBounds(t *testing.T) {
	// A fractional spread must round to the nearest whole pixel, not
	// truncate toward zero.
	up := NewEmitter(1, EmitterSettings{Spread: Range{Min: 0.6, Max: 0.6}})
	for i := 0; i < 20; i++ {
		if vy := up.spawn().Velocity.Y; vy != 1 {
			t.Fatalf("Velocity.Y = %v, want 1 for spread [0.6, 0.6]", vy)
		}
	}
	down := NewEmitter(1, EmitterSettings{Spread: Range{Min: -0.6, Max: -0.6}})
	for i := 0; i < 20; i++ {
		if vy := down.spawn().Velocity.Y; vy != -1 {
			t.Fatalf("Velocity.Y = %v, want -1 for spread [-0.6, -0.6]", vy)
		}
	}

	wide := NewEmitter(1, EmitterSettings{Spread: Range{Min: -6.5, Max: 6.5}})
	for i := 0; i < 200; i++ {
		vy := wide.spawn().Velocity.Y
		if vy < -7 || vy > 7 {
			t.Fatalf("Velocity.Y = %v, outside rounded spread [-7, 7]", vy)
		}
	}
}

func TestEmitGrowsToCapacity(t *testing.T) {
	e := NewEmitter(3, EmitterSettings{})
	for want := 1; want <= 3; want++ {
		e.Emit()
		if e.Len() != want {
			t.Fatalf("Len() after %d emits = %d, want %d", want, e.Len(), want)
		}
	}
}

func TestEmitFIFOEviction(t *testing.T) {
	e := NewEmitter(3, EmitterSettings{})
	e.Emit()
	e.Emit()
	e.Emit()

	oldest := e.Particles()[0]
	second := e.Particles()[1]

	e.Emit()
	if e.Len() != 3 {
		t.Fatalf("Len() after 4th emit = %d, want 3", e.Len())
	}
	for _, p := range e.Particles() {
		if p == oldest {
			t.Fatal("oldest particle should be evicted on the 4th emit")
		}
	}
	if e.Particles()[0] != second {
		t.Error("insertion order should be preserved after eviction")
	}
}

func TestEmitNeverExceedsCapacity(t *testing.T) {
	e := NewEmitter(7, EmitterSettings{})
	for i := 0; i < 100; i++ {
		e.Emit()
		if e.Len() > e.Capacity() {
			t.Fatalf("Len() = %d exceeds capacity %d at tick %d", e.Len(), e.Capacity(), i)
		}
	}
	if e.Len() != 7 {
		t.Errorf("steady-state Len() = %d, want 7", e.Len())
	}
}

func TestEmitAdvancesExistingParticles(t *testing.T) {
	e := NewEmitter(5, EmitterSettings{Speed: 10})
	e.Emit() // particle A at the source
	a := e.Particles()[0]
	e.Emit() // A moves one tick, B spawns at the source
	assertNear(t, "A.Position.X", a.Position.X, 10)
	b := e.Particles()[1]
	assertNear(t, "B.Position.X", b.Position.X, 0)
}

func TestEmitterRenderDrawsInOrder(t *testing.T) {
	canvas, err := NewCanvas(64, 64)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEmitter(4, EmitterSettings{})
	e.Emit()
	e.Emit()
	// Smoke test: all particles draw onto the context without panicking.
	e.Render(canvas.Context())
}

// --- Benchmarks ---

func BenchmarkEmitSteadyState(b *testing.B) {
	e := NewEmitter(250, EmitterSettings{})
	for i := 0; i < 250; i++ {
		e.Emit()
	}
	b.ReportAllocs()
	for b.Loop() {
		e.Emit()
	}
}
