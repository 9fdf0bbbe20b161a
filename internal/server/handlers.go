package server

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/edgelabel-mcp/internal/detection"
	"github.com/ironsheep/edgelabel-mcp/internal/edge"
	"github.com/ironsheep/edgelabel-mcp/internal/filter"
	"github.com/ironsheep/edgelabel-mcp/internal/imaging"
	"github.com/ironsheep/edgelabel-mcp/internal/label"
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Defaults for optional tool arguments.
const (
	defaultMinArea       = 100
	defaultTolerance     = 0.8
	defaultGlobalLevel   = 128
	defaultMaxComponents = 100
)

// overlayColor paints edge pixels over the source image.
var overlayColor = color.NRGBA{R: 255, A: 255}

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	entry := s.logger.WithFields(logrus.Fields{
		"tool":        params.Name,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("tool call failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	entry.Info("tool call")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image through the cache and applies region and scale
//  4. Calls the edge, label, filter or detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Edge Detection and Labelling
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_label_components":
		return s.handleImageLabelComponents(args)

	// Object Detection
	case "image_detect_objects":
		return s.handleImageDetectObjects(args)
	case "image_detect_rectangles":
		return s.handleImageDetectRectangles(args)

	// Preprocessing
	case "image_binarize":
		return s.handleImageBinarize(args)
	case "image_denoise":
		return s.handleImageDenoise(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared Arguments ===

// sourceArgs selects the pixels a tool works on. Region and RegionName are
// mutually exclusive.
type sourceArgs struct {
	Path       string          `json:"path"`
	Region     *imaging.Region `json:"region"`
	RegionName string          `json:"region_name"`
	Scale      float64         `json:"scale"`
}

// region resolves the explicit or named region; nil means the whole image.
func (s *Server) region(a sourceArgs) (*imaging.Region, error) {
	if a.RegionName == "" {
		return a.Region, nil
	}
	if a.Region != nil {
		return nil, fmt.Errorf("region and region_name are mutually exclusive")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r, err := imaging.NamedRegion(img.Bounds(), a.RegionName)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// prepared loads the image and applies region and scale.
func (s *Server) prepared(a sourceArgs) (image.Image, error) {
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	r, err := s.region(a)
	if err != nil {
		return nil, err
	}
	return imaging.Prepare(img, r, a.Scale)
}

// grayGrid is prepared followed by luminance conversion.
func (s *Server) grayGrid(a sourceArgs) (raster.Grid, image.Image, error) {
	r, err := s.region(a)
	if err != nil {
		return raster.Grid{}, nil, err
	}
	return imaging.GrayGrid(s.cache, a.Path, r, a.Scale)
}

// edgeArgs carries the detector settings shared by the edge and detection
// tools.
type edgeArgs struct {
	Low         *int   `json:"low"`
	High        *int   `json:"high"`
	Mode        string `json:"mode"`
	Propagation string `json:"propagation"`
}

// options resolves the detector settings. Thresholds are clamped to [0,255]
// and high is raised to at least 1; low above high is still rejected.
func (a edgeArgs) options() (edge.Options, error) {
	opts := edge.DefaultOptions()
	if a.Low != nil {
		opts.Low = clamp8(*a.Low)
	}
	if a.High != nil {
		opts.High = clamp8(*a.High)
	}
	if opts.High < 1 {
		opts.High = 1
	}

	mode, err := edge.ParseMode(a.Mode)
	if err != nil {
		return edge.Options{}, err
	}
	opts.Mode = mode

	prop, err := edge.ParsePropagation(a.Propagation)
	if err != nil {
		return edge.Options{}, err
	}
	opts.Propagation = prop

	return opts, opts.Validate()
}

// clamp8 limits v to the 8-bit sample range.
func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// modeName is the argument spelling of m.
func modeName(m edge.Mode) string {
	if m == edge.ModeL1 {
		return "l1"
	}
	return "l2"
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Edge Detection and Labelling Handlers ===

type imageEdgeDetectArgs struct {
	sourceArgs
	edgeArgs

	// Stage is "edges" (default), "magnitude" or "suppressed".
	Stage string `json:"stage"`

	// Overlay paints the non-zero stage pixels over the source image
	// instead of returning the stage as grayscale.
	Overlay bool `json:"overlay"`
}

// EdgeDetectResult is the output of image_edge_detect.
type EdgeDetectResult struct {
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	Stage       string                `json:"stage"`
	Low         int                   `json:"low"`
	High        int                   `json:"high"`
	Mode        string                `json:"mode"`
	Propagation string                `json:"propagation"`
	EdgePixels  int                   `json:"edge_pixels"`
	Image       *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	opts, err := a.options()
	if err != nil {
		return nil, err
	}

	g, prepared, err := s.grayGrid(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	st, err := edge.Run(g, opts)
	if err != nil {
		return nil, err
	}

	stage := strings.ToLower(a.Stage)
	var out raster.Grid
	switch stage {
	case "", "edges":
		stage = "edges"
		out = st.Edges
	case "magnitude":
		out = st.Magnitude
	case "suppressed":
		out = st.Suppressed
	default:
		return nil, fmt.Errorf("unknown stage: %s", a.Stage)
	}

	var enc *imaging.EncodedImage
	if a.Overlay {
		composite, err := imaging.Overlay(prepared, out, overlayColor)
		if err != nil {
			return nil, err
		}
		enc, err = imaging.EncodePNG(composite)
		if err != nil {
			return nil, err
		}
	} else {
		enc, err = imaging.EncodeGrid(out)
		if err != nil {
			return nil, err
		}
	}

	return &EdgeDetectResult{
		Width:       g.Cols,
		Height:      g.Rows,
		Stage:       stage,
		Low:         opts.Low,
		High:        opts.High,
		Mode:        modeName(opts.Mode),
		Propagation: opts.Propagation.String(),
		EdgePixels:  st.Edges.Count(edge.Edge),
		Image:       enc,
	}, nil
}

type imageLabelComponentsArgs struct {
	sourceArgs

	Connectivity   *int `json:"connectivity"`
	SkipBackground bool `json:"skip_background"`

	// Background is clamped to [0,255], the range of the labelled samples.
	Background int `json:"background"`

	// Denoise and Binarize name optional preprocessing stages, applied in
	// that order. Level is the global binarization level.
	Denoise  string  `json:"denoise"`
	Radius   float64 `json:"radius"`
	Binarize string  `json:"binarize"`
	Level    *int    `json:"level"`

	Colorize      bool `json:"colorize"`
	MaxComponents int  `json:"max_components"`
}

// LabelComponentsResult is the output of image_label_components.
type LabelComponentsResult struct {
	Width        int               `json:"width"`
	Height       int               `json:"height"`
	Connectivity int               `json:"connectivity"`
	Count        int               `json:"count"`
	Components   []label.Component `json:"components"`

	// Truncated is set when only the first MaxComponents are listed.
	Truncated bool                  `json:"truncated,omitempty"`
	Image     *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleImageLabelComponents(args json.RawMessage) (interface{}, error) {
	var a imageLabelComponentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	conn := connectivityOrDefault(a.Connectivity)
	if a.MaxComponents <= 0 {
		a.MaxComponents = defaultMaxComponents
	}

	var stages []filter.Func
	if isEnabled(a.Denoise) {
		d, err := filter.Denoise(a.Denoise, a.Radius)
		if err != nil {
			return nil, err
		}
		stages = append(stages, d)
	}
	if isEnabled(a.Binarize) {
		b, err := filter.Binarize(a.Binarize, levelOrDefault(a.Level))
		if err != nil {
			return nil, err
		}
		stages = append(stages, b)
	}

	g, _, err := s.grayGrid(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	g, err = filter.Chain(stages...)(g)
	if err != nil {
		return nil, err
	}

	m, count, err := label.Run(g, label.Options{
		Connectivity:   conn,
		SkipBackground: a.SkipBackground,
		Background:     int32(clamp8(a.Background)),
		Parallel:       len(g.Pix) >= detection.ParallelPixels,
	})
	if err != nil {
		return nil, err
	}

	comps := label.Components(m)
	result := &LabelComponentsResult{
		Width:        g.Cols,
		Height:       g.Rows,
		Connectivity: int(conn),
		Count:        count,
		Components:   comps,
	}
	if len(comps) > a.MaxComponents {
		result.Components = comps[:a.MaxComponents]
		result.Truncated = true
	}
	if a.Colorize {
		if result.Image, err = imaging.EncodePNG(imaging.Colorize(m)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// connectivityOrDefault returns 8 only when the argument is absent. An
// explicit value, including 0, is passed on for validation.
func connectivityOrDefault(c *int) label.Connectivity {
	if c == nil {
		return label.Eight
	}
	return label.Connectivity(*c)
}

// isEnabled reports whether an optional stage name selects a stage.
func isEnabled(method string) bool {
	m := strings.ToLower(method)
	return m != "" && m != "none"
}

func levelOrDefault(level *int) int {
	if level == nil {
		return defaultGlobalLevel
	}
	return *level
}

// === Object Detection Handlers ===

type detectArgs struct {
	sourceArgs
	edgeArgs

	Connectivity *int    `json:"connectivity"`
	Denoise      string  `json:"denoise"`
	Radius       float64 `json:"radius"`
	MinArea      *int    `json:"min_area"`
}

func (a detectArgs) params() (detection.Params, error) {
	p := detection.DefaultParams()

	opts, err := a.options()
	if err != nil {
		return detection.Params{}, err
	}
	p.Edge = opts

	p.Connectivity = connectivityOrDefault(a.Connectivity)
	if a.Denoise != "" {
		p.Denoise = a.Denoise
	}
	if a.Radius != 0 {
		p.Radius = a.Radius
	}
	p.MinArea = defaultMinArea
	if a.MinArea != nil {
		p.MinArea = *a.MinArea
	}
	return p, nil
}

func (s *Server) handleImageDetectObjects(args json.RawMessage) (interface{}, error) {
	var a detectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := a.params()
	if err != nil {
		return nil, err
	}
	img, err := s.prepared(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	return detection.DetectObjects(img, p)
}

type imageDetectRectanglesArgs struct {
	detectArgs
	Tolerance *float64 `json:"tolerance"`
}

func (s *Server) handleImageDetectRectangles(args json.RawMessage) (interface{}, error) {
	var a imageDetectRectanglesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	tolerance := defaultTolerance
	if a.Tolerance != nil {
		tolerance = *a.Tolerance
	}
	p, err := a.params()
	if err != nil {
		return nil, err
	}
	img, err := s.prepared(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	return detection.DetectRectangles(img, p, tolerance)
}

// === Preprocessing Handlers ===

type imageBinarizeArgs struct {
	sourceArgs

	// Method is "otsu" (default) or "global".
	Method string `json:"method"`
	Level  *int   `json:"level"`
}

// BinarizeResult is the output of image_binarize.
type BinarizeResult struct {
	Method string `json:"method"`

	// Threshold is the level separating black from white. Otsu whitens
	// samples above it, global whitens samples at or above it.
	Threshold int `json:"threshold"`

	WhitePixels int                   `json:"white_pixels"`
	Image       *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleImageBinarize(args json.RawMessage) (interface{}, error) {
	var a imageBinarizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method := strings.ToLower(a.Method)
	if method == "" {
		method = "otsu"
	}
	stage, err := filter.Binarize(method, levelOrDefault(a.Level))
	if err != nil {
		return nil, err
	}

	g, _, err := s.grayGrid(a.sourceArgs)
	if err != nil {
		return nil, err
	}

	threshold := int(raster.Saturate8(int32(levelOrDefault(a.Level))))
	if method == "otsu" {
		if threshold, err = filter.OtsuThreshold(g); err != nil {
			return nil, err
		}
	}

	out, err := stage(g)
	if err != nil {
		return nil, err
	}
	enc, err := imaging.EncodeGrid(out)
	if err != nil {
		return nil, err
	}
	return &BinarizeResult{
		Method:      method,
		Threshold:   threshold,
		WhitePixels: out.Count(filter.White),
		Image:       enc,
	}, nil
}

type imageDenoiseArgs struct {
	sourceArgs

	// Method is "median" (default) or "box".
	Method string  `json:"method"`
	Radius float64 `json:"radius"`
}

// DenoiseResult is the output of image_denoise.
type DenoiseResult struct {
	Method string                `json:"method"`
	Radius float64               `json:"radius"`
	Image  *imaging.EncodedImage `json:"image"`
}

func (s *Server) handleImageDenoise(args json.RawMessage) (interface{}, error) {
	var a imageDenoiseArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	method := strings.ToLower(a.Method)
	if method == "" {
		method = "median"
	}
	if a.Radius == 0 {
		a.Radius = filter.DefaultRadius
	}
	stage, err := filter.Denoise(method, a.Radius)
	if err != nil {
		return nil, err
	}

	g, _, err := s.grayGrid(a.sourceArgs)
	if err != nil {
		return nil, err
	}
	out, err := stage(g)
	if err != nil {
		return nil, err
	}
	enc, err := imaging.EncodeGrid(out)
	if err != nil {
		return nil, err
	}
	return &DenoiseResult{Method: method, Radius: a.Radius, Image: enc}, nil
}
