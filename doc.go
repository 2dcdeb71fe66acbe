// Package pixelloop decouples a fixed-rate simulation from rendering for
// pixel-buffer applications. It owns the accumulator-based tick algorithm and
// the Surface drawing capability; concrete display backends live in the
// window and terminal subpackages.
package pixelloop
