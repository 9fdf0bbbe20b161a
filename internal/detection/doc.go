// Package detection finds objects and rectangles in images by chaining the
// edge detector and the component labeller.
//
// The pipeline is:
//
//  1. Convert the image to an 8-bit luminance grid.
//  2. Optionally denoise it (median or box smoothing).
//  3. Run edge detection to get a binary edge mask.
//  4. Label the connected edge pixels, ignoring non-edge pixels.
//  5. Summarize each component as an Object.
//
// An object is a connected run of edge pixels, so a filled shape yields one
// object tracing its outline while a one-pixel-wide drawn line yields two,
// one along each side of the stroke.
//
// # Coordinate System
//
// Coordinates follow the image convention: origin at the top-left, X to the
// right, Y down. Bounds are inclusive on all sides and are reported in the
// source image's coordinate space.
//
// # Confidence Scores
//
// Rectangles carry a confidence in [0,1] combining how much of the object
// lies on its bounding box border and how much of that border it covers. An
// axis-aligned rectangle scores close to 1; circles and diagonal strokes
// score much lower.
package detection
