// Package filter provides the preprocessing stages that may run before edge
// detection or labelling: Otsu and global binarization, and median and box
// denoising.
//
// Every stage is a Func: a same-shape grid in, a same-shape grid out. Stages
// treat samples as 8-bit intensities; values outside [0,255] saturate before
// filtering.
package filter
