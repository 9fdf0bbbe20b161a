// Package label groups adjacent equal-valued pixels into connected components.
//
// Label runs the classic two-pass union-find algorithm followed by a
// compaction pass:
//
//  1. A forward raster scan gives every pixel a provisional label. Only the
//     causal neighbours (west and north, plus north-west and north-east for
//     8-connectivity) whose input value equals the pixel's own are
//     considered. A pixel with no such neighbour starts a new label; otherwise
//     it takes the smallest neighbour label and every other neighbour label is
//     merged into it.
//  2. Each provisional label is resolved to its class representative once,
//     and every pixel is rewritten through that table.
//  3. Representatives are renumbered densely in first-encounter raster order.
//
// Values are compared raw, so the input need not be a binary mask: a
// quantized or already labelled image works the same way.
//
// # Background
//
// By default every region counts, the background included, and ids start
// at 0. With Options.SkipBackground, pixels equal to Options.Background get
// id 0 and are left out of the count; objects are numbered from 1.
package label
