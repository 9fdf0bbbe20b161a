// Package imaging loads images from disk and renders analysis results back
// into images.
//
// It sits between files and the integer grids the edge and label packages
// work on: ImageCache decodes PNG, JPEG, GIF, BMP, TIFF and WebP files once,
// Prepare crops and rescales them, GrayGrid turns them into luminance grids,
// and EncodeGrid, Overlay and Colorize turn masks and label maps into base64
// PNG payloads.
//
// Coordinates are 0-based with (0,0) at the top-left corner. Regions are
// inclusive at (X1,Y1) and exclusive at (X2,Y2).
//
// ImageCache is safe for concurrent use; every other function is stateless.
package imaging
