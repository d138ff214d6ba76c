// Package spark is a tiny animation toy for [Ebitengine].
//
// Spark gives you three cooperating pieces: an [Engine] that owns a
// [Canvas] and drives a fixed-tick simulation loop alongside a
// per-frame render loop, a generic [GameObject] with position,
// velocity, and a caller-supplied draw routine, and an [Emitter] that
// sprays a bounded stream of particles from a source point.
//
// # Quick start
//
//	canvas, err := spark.NewCanvas(640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine, err := spark.NewEngine(canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	emitter := spark.NewEmitter(200, spark.EmitterSettings{
//		Position: spark.Vec2{X: 50, Y: 240},
//		Speed:    12,
//	})
//
//	engine.Start(spark.Hooks{
//		Loop:   emitter.Emit,
//		Render: emitter.Render,
//	})
//	if err := spark.Run(engine, spark.RunConfig{
//		Title: "Spray", Width: 640, Height: 480,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// Clicking the window toggles pause; while paused the last rendered
// frame stays on screen and the simulation clock is frozen.
//
// There is deliberately no scene graph, no physics, and no asset
// handling here. For anything beyond toy animations you want a full
// framework, not spark.
//
// [Ebitengine]: https://ebitengine.org
package spark
