// Package edge implements the numeric core of the edge detectors: a
// two-dimensional sample Grid, fixed 3x3 convolution with an explicit border
// policy, gradient fields, the Prewitt magnitude detector and the five-stage
// Canny detector.
//
// # Coordinate System
//
// Grids are row-major with the origin at the top-left corner. X increases
// rightward, Y increases downward, and every accessor takes x before y.
//
// # Immutability
//
// A Grid is never modified after the stage that produced it returns. Every
// stage allocates a fresh output grid, so intermediate results can be kept,
// inspected and shared between goroutines without locking.
//
// # Concurrency
//
// Each stage is data-parallel per pixel. Output rows are partitioned across
// goroutines with bild's parallel.Line; workers write disjoint rows of the new
// grid and only read grids that are already complete.
//
// # Degenerate Input
//
// The detectors never fail. A grid narrower or shorter than 3 pixels has no
// interior: Prewitt returns an all-zero grid of the same size and Canny
// returns an empty grid. Validate reports ErrDimension for callers that want
// to surface the condition. A gradient magnitude of exactly zero is not an
// error; its direction is defined as 0 degrees.
package edge
