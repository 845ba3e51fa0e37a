// Package vg is a 2D vector-graphics value layer: geometry primitives,
// affine transforms, a copy-on-write Path, and a compositing Canvas
// that turns paths, paints, and transforms into pixels.
//
// The types in this package have value semantics. Copying a Path is an
// O(1) reference bump; the shared buffer is cloned transparently the
// first time either copy is mutated. A Canvas wraps a premultiplied
// RGBA surface, which may be owned or shared with a Bitmap or another
// Canvas.
//
// Rasterization (scan conversion, stroke expansion, dash segmentation,
// gradient sampling, compositing) lives in the internal raster engine;
// this package translates its public enumerations and state onto that
// engine at the call boundary.
//
// Basic usage:
//
//	var p vg.Path
//	p.Parse("M10,10 L90,10 L90,90 Z")
//
//	canvas := vg.NewCanvas(0, 0, 100, 100)
//	canvas.SetColor(vg.Red)
//	canvas.FillPath(&p, vg.FillRuleNonZero, vg.Identity)
package vg
