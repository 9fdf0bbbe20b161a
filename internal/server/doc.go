// Package server implements the MCP (Model Context Protocol) server for the
// edge detection and component labelling tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Edge Detection and Labelling:
//   - image_edge_detect: Sobel gradient, non-maximum suppression and
//     hysteresis; returns the requested stage as PNG
//   - image_label_components: Union-find labelling of equal-valued pixels
//
// Object Detection:
//   - image_detect_objects: Connected edge contours with bounding boxes
//   - image_detect_rectangles: Contours tracing their bounding box
//
// Preprocessing:
//   - image_binarize: Otsu or fixed-level threshold
//   - image_denoise: Median or box filter
//
// Tools that analyse pixels accept an optional region and scale, applied
// before any processing. Thresholds are clamped to [0,255]; a low threshold
// above the high one is rejected.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Every tool call is logged through the logrus logger passed to New, with
// the tool name, duration and error. Nothing is logged to stdout.
//
// # Usage
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal(err)
//	}
package server
