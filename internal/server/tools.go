package server

import "github.com/ironsheep/edge-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema shared by every tool's path argument.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// sourceProperties describes the arguments that choose which pixels a
// detector sees.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"region": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer", "description": "Left edge X (inclusive)"},
				"y1": map[string]interface{}{"type": "integer", "description": "Top edge Y (inclusive)"},
				"x2": map[string]interface{}{"type": "integer", "description": "Right edge X (exclusive)"},
				"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge Y (exclusive)"},
			},
			"description": "Optional rectangle to analyze. If omitted, analyzes the entire image.",
		},
		"named_region": map[string]interface{}{
			"type":        "string",
			"enum":        imaging.RegionNames,
			"description": "Optional named region, used when region is omitted",
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Optional scale factor applied before detection. Default 1.0",
			"default":     1.0,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and whether it is large enough (3x3) for edge detection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name:        "image_edge_prewitt",
			Description: "Prewitt edge strength map. Each pixel is the gradient magnitude clamped to 0-255; the outermost rows and columns are 0. Output has the same size as the input.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_edge_canny",
			Description: "Binary Canny edge map (edges white). Thresholds are 25% and 12% of the strongest gradient. Output is two pixels smaller than the input in each axis.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_gradient_field",
			Description: "Render the Canny gradient field: hue shows edge orientation, brightness shows gradient strength.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_edge_compare",
			Description: "Side-by-side panel of the original grayscale image, the Prewitt map and the Canny map.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_edge_stats",
			Description: "Run both detectors and return edge counts, maximum gradient and Canny thresholds without images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
			},
		},
	}
}
