// Package treefx grows a stylized tree and a patch of grass, then animates
// them through growth, wind and a looping cycle of seasons.
//
// The package never draws pixels. It builds a tree of [Node] values (lines,
// ellipses, blade paths and groups) whose visual properties change over
// time, and leaves drawing to a renderer such as the one in treefx/render.
//
// # Quick start
//
//	cfg := treefx.Default()
//	rng := treefx.NewRand(cfg.Seed)
//	scene := treefx.NewScene()
//
//	tg, _ := treefx.NewTreeGenerator(cfg.Tree, rng)
//	tree := tg.Generate(scene.TreeLayer())
//	gg, _ := treefx.NewGrassGenerator(cfg.Grass, rng)
//	grass := gg.Generate(scene.GrassLayer())
//
//	anim, _ := treefx.NewAnimator(scene, tree, grass,
//		treefx.WithTiming(cfg.Timing), treefx.WithRand(rng))
//	anim.Start()
//	// every frame:
//	anim.Update(1.0 / 60)
//
// # Scene graph
//
// [Scene] owns a root with two layers: the tree layer (branches, leaves,
// flowers and falling duplicates) and the grass layer. Coordinates have their
// origin at the foot of the trunk with Y increasing upward. Children inherit
// their parent's transform and alpha; [Scene.Update] refreshes the cached
// world transforms and [Scene.Walk] visits visible nodes in draw order.
//
// # Generation
//
// [TreeGenerator] grows a ternary branch hierarchy generation by generation.
// Every branch spawns a top, a left and a right child whose lengths and
// angles are drawn with bounded Gaussians from [Rand], with a droop rule for
// branches heading downward. The last generation carries leaves and the
// occasional [Flower]. [GrassGenerator] scatters independent [Blade] values.
//
// # Schedules
//
// Animations compose from [Tween], [Pause], [Call], [Sequence], [Parallel]
// and [Loop], and a [Player] owns the clock. Leftover time carries from one
// child to the next, so a sequential child starts at the exact instant its
// predecessor ends. Tweens are backed by [gween].
//
// [Animator] builds the full schedule: growth once, branch and grass wind for
// ever, and spring, flowering and autumn looping after growth. Petals and
// leaves leave the tree through a fall-down that drops a transient duplicate
// to the ground. [Animator.Stop] disposes every duplicate still alive.
//
// # Configuration and logging
//
// [Default] returns the embedded defaults; [Load] and [Parse] overlay YAML on
// top of them. Records go to a [log/slog] logger set with [SetLogger] or
// [WithLogger].
//
// [gween]: https://github.com/tanema/gween
package treefx
