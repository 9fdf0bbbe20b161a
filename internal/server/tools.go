package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// schema is a JSON Schema fragment.
type schema = map[string]interface{}

func pathProperty() schema {
	return schema{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() schema {
	return schema{
		"type": "object",
		"properties": schema{
			"x1": schema{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y1": schema{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"x2": schema{"type": "integer", "description": "Right edge X coordinate (exclusive)"},
			"y2": schema{"type": "integer", "description": "Bottom edge Y coordinate (exclusive)"},
		},
		"required":    []string{"x1", "y1", "x2", "y2"},
		"description": "Optional region to analyze. If omitted, analyzes entire image.",
	}
}

func scaleProperty() schema {
	return schema{
		"type":        "number",
		"description": "Optional scale factor applied after cropping (e.g., 2.0 to double size). Default 1.0, maximum 8.0",
		"default":     1.0,
	}
}

// sourceProperties returns the path, region and scale properties.
func sourceProperties() schema {
	return schema{
		"path":   pathProperty(),
		"region": regionProperty(),
		"region_name": schema{
			"type":        "string",
			"enum":        []string{"top-left", "top-right", "bottom-left", "bottom-right", "top-half", "bottom-half", "left-half", "right-half", "center"},
			"description": "Named region to analyze instead of region",
		},
		"scale": scaleProperty(),
	}
}

// edgeProperties returns the detector settings.
func edgeProperties() schema {
	return schema{
		"low": schema{
			"type":        "integer",
			"description": "Weak threshold, clamped to 0-255. Suppressed magnitudes below it are never edges. Default 30",
			"default":     30,
		},
		"high": schema{
			"type":        "integer",
			"description": "Strong threshold, clamped to 1-255. Must not be below low. Default 90",
			"default":     90,
		},
		"mode": schema{
			"type":        "string",
			"enum":        []string{"l2", "l1"},
			"description": "Gradient magnitude: l2 = sqrt(gx²+gy²), l1 = (|gx|+|gy|)/2. Default l2",
			"default":     "l2",
		},
		"propagation": schema{
			"type":        "string",
			"enum":        []string{"neighborhood", "transitive"},
			"description": "Weak pixel promotion: neighborhood needs a strong 8-neighbour, transitive follows chains of weak pixels. Default neighborhood",
			"default":     "neighborhood",
		},
	}
}

func connectivityProperty() schema {
	return schema{
		"type":        "integer",
		"enum":        []int{4, 8},
		"description": "Pixel adjacency: 4 (edges only) or 8 (edges and corners). Default 8",
		"default":     8,
	}
}

func denoiseProperties(defaultMethod string) schema {
	return schema{
		"denoise": schema{
			"type":        "string",
			"enum":        []string{"median", "box", "none"},
			"description": "Smoothing applied before processing. Default " + defaultMethod,
			"default":     defaultMethod,
		},
		"radius": schema{
			"type":        "number",
			"description": "Smoothing radius in pixels. Default 1 (3x3 window)",
			"default":     1.0,
		},
	}
}

// merge combines property maps; later maps win.
func merge(maps ...schema) schema {
	out := schema{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func object(properties schema, required ...string) schema {
	return schema{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, colour depth and whether it is grayscale. The image stays cached for subsequent calls.",
			InputSchema: object(schema{"path": pathProperty()}, "path"),
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: object(schema{"path": pathProperty()}, "path"),
		},

		// Edge Detection and Labelling
		{
			Name:        "image_edge_detect",
			Description: "Detect edges with a Sobel gradient, non-maximum suppression and double-threshold hysteresis. Returns the requested stage as a grayscale PNG, or painted in red over the source image.",
			InputSchema: object(merge(sourceProperties(), edgeProperties(), schema{
				"stage": schema{
					"type":        "string",
					"enum":        []string{"edges", "magnitude", "suppressed"},
					"description": "Stage to return: final edge mask, gradient magnitude, or magnitude after non-maximum suppression. Default edges",
					"default":     "edges",
				},
				"overlay": schema{
					"type":        "boolean",
					"description": "Paint the stage's non-zero pixels over the source image",
					"default":     false,
				},
			}), "path"),
		},
		{
			Name:        "image_label_components",
			Description: "Label connected regions of equal gray value. Returns the component count and per-component pixel count, bounding box and centroid.",
			InputSchema: object(merge(sourceProperties(), denoiseProperties("none"), schema{
				"connectivity": connectivityProperty(),
				"skip_background": schema{
					"type":        "boolean",
					"description": "Exclude pixels equal to background; they get id 0 and objects are numbered from 1",
					"default":     false,
				},
				"background": schema{
					"type":        "integer",
					"description": "Background gray value used with skip_background, clamped to 0-255. Default 0",
					"default":     0,
				},
				"binarize": schema{
					"type":        "string",
					"enum":        []string{"none", "otsu", "global"},
					"description": "Threshold the image before labelling. Default none",
					"default":     "none",
				},
				"level": schema{
					"type":        "integer",
					"description": "Level for global binarization. Default 128",
					"default":     128,
				},
				"colorize": schema{
					"type":        "boolean",
					"description": "Return a PNG with one colour per component",
					"default":     false,
				},
				"max_components": schema{
					"type":        "integer",
					"description": "Maximum number of components listed. Default 100",
					"default":     100,
				},
			}), "path"),
		},

		// Object Detection
		{
			Name:        "image_detect_objects",
			Description: "Find objects as connected edge contours. Returns bounding boxes, centres, pixel counts and mean colours, largest first. Coordinates are relative to the region and scale.",
			InputSchema: object(merge(sourceProperties(), edgeProperties(), denoiseProperties("median"), schema{
				"connectivity": connectivityProperty(),
				"min_area": schema{
					"type":        "integer",
					"description": "Minimum bounding box area in pixels. Default 100",
					"default":     100,
				},
			}), "path"),
		},
		{
			Name:        "image_detect_rectangles",
			Description: "Find axis-aligned rectangles: edge contours that trace their own bounding box. Returns each rectangle with a confidence score.",
			InputSchema: object(merge(sourceProperties(), edgeProperties(), denoiseProperties("median"), schema{
				"connectivity": connectivityProperty(),
				"min_area": schema{
					"type":        "integer",
					"description": "Minimum bounding box area in pixels. Default 100",
					"default":     100,
				},
				"tolerance": schema{
					"type":        "number",
					"description": "Minimum confidence (0.0-1.0). Default 0.8",
					"default":     0.8,
				},
			}), "path"),
		},

		// Preprocessing
		{
			Name:        "image_binarize",
			Description: "Threshold an image to black and white with Otsu's method or a fixed level. Returns the threshold used and the binary PNG.",
			InputSchema: object(merge(sourceProperties(), schema{
				"method": schema{
					"type":        "string",
					"enum":        []string{"otsu", "global"},
					"description": "Thresholding method. Default otsu",
					"default":     "otsu",
				},
				"level": schema{
					"type":        "integer",
					"description": "Level for the global method. Default 128",
					"default":     128,
				},
			}), "path"),
		},
		{
			Name:        "image_denoise",
			Description: "Smooth an image with a median or box filter and return the grayscale PNG.",
			InputSchema: object(merge(sourceProperties(), schema{
				"method": schema{
					"type":        "string",
					"enum":        []string{"median", "box"},
					"description": "Filter. Default median",
					"default":     "median",
				},
				"radius": schema{
					"type":        "number",
					"description": "Filter radius in pixels. Default 1 (3x3 window)",
					"default":     1.0,
				},
			}), "path"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
