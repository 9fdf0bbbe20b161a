// Package edge turns a grayscale grid into a binary edge mask.
//
// The detector is a Canny-style chain of four pure stages, each taking and
// returning raster.Grid values of the input's shape:
//
//  1. Gradient: fixed 3×3 Sobel kernels applied over an edge-replicated
//     border, producing signed horizontal (Gx) and vertical (Gy) derivatives.
//  2. Magnitude: Gx and Gy combined into an 8-bit magnitude, either L1
//     (round(0.5|gx| + 0.5|gy|)) or L2 (round(sqrt(gx² + gy²))), saturated
//     to 255.
//  3. Suppress: non-maximum suppression along the local gradient direction
//     with linear interpolation between the axis neighbour and the diagonal
//     neighbour selected by the sign of gx·gy. Border pixels are always 0.
//  4. Hysteresis: dual-threshold classification. Strong pixels (≥ high) are
//     edges, pixels below low are not, and weak pixels become edges only when
//     one of their eight immediate neighbours is strong.
//
// # Hysteresis Propagation
//
// The default propagation, PropagationNeighborhood, checks each weak pixel's
// 3×3 neighbourhood exactly once. It is not a flood fill: a weak pixel whose
// only support is another weak pixel stays a non-edge even when that pixel
// touches a strong one. PropagationTransitive is available for callers that
// want the textbook behaviour, where weak chains connected to a strong pixel
// are kept in full.
//
// # Numeric Ranges
//
// For 8-bit input the Sobel responses lie in [-1020, 1020]. Gradients are
// accumulated in int32, so wider inputs (16-bit samples) cannot overflow
// either. Magnitudes are rounded half-to-even and saturate at 255 rather than
// wrap.
//
// # Errors
//
// Every function validates its inputs and returns a *raster.ConfigError
// (matching raster.ErrConfig) for empty or mismatched grids, an unknown
// magnitude mode or low > high. No partial output accompanies an error.
package edge
