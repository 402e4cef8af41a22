package server

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
	"github.com/ironsheep/edge-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_edge_canny").
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
	fields := map[string]interface{}{
		"tool":        params.Name,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err != nil {
		s.log.Error("tool failed", err, fields)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug("tool finished", fields)

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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	case "image_edge_prewitt":
		return s.handleEdgePrewitt(args)
	case "image_edge_canny":
		return s.handleEdgeCanny(args)
	case "image_gradient_field":
		return s.handleGradientField(args)
	case "image_edge_compare":
		return s.handleEdgeCompare(args)
	case "image_edge_stats":
		return s.handleEdgeStats(args)

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
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
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

// === Edge Detection Handlers ===

// sourceArgs selects the pixels a detector runs on.
type sourceArgs struct {
	Path        string          `json:"path"`
	Region      *imaging.Region `json:"region"`
	NamedRegion string          `json:"named_region"`
	Scale       float64         `json:"scale"`
}

// loadGrid decodes the selected part of the image into an intensity grid.
// The returned warning is non-empty when the grid is too small to hold a 3x3
// neighbourhood; the detectors still run and return degenerate maps.
func (s *Server) loadGrid(args json.RawMessage) (*edge.Grid[int], string, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, "", err
	}
	if a.Path == "" {
		return nil, "", fmt.Errorf("path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, "", err
	}
	g, err := imaging.ToGridRegion(img, imaging.SourceOptions{
		Region: a.Region,
		Named:  a.NamedRegion,
		Scale:  a.Scale,
	})
	if err != nil {
		return nil, "", err
	}

	var warning string
	if err := edge.Validate(g); err != nil {
		warning = err.Error()
		s.log.Warning("degenerate input", map[string]interface{}{
			"path":   a.Path,
			"width":  g.Width(),
			"height": g.Height(),
		})
	}
	return g, warning, nil
}

func (s *Server) handleEdgePrewitt(args json.RawMessage) (interface{}, error) {
	g, warning, err := s.loadGrid(args)
	if err != nil {
		return nil, err
	}
	res, err := imaging.EncodeGrid("prewitt", edge.Prewitt(g))
	if err != nil {
		return nil, err
	}
	res.Warning = warning
	return res, nil
}

func (s *Server) handleEdgeCanny(args json.RawMessage) (interface{}, error) {
	g, warning, err := s.loadGrid(args)
	if err != nil {
		return nil, err
	}
	stages := edge.CannyStages(g)
	res, err := imaging.EncodeGrid("canny", stages.Edges)
	if err != nil {
		return nil, err
	}
	res.Thresholds = &stages.Thresholds
	res.Warning = warning
	return res, nil
}

func (s *Server) handleGradientField(args json.RawMessage) (interface{}, error) {
	g, _, err := s.loadGrid(args)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeField(edge.Gradient(edge.Smooth(g)))
}

// runDetectors runs Prewitt and Canny on g concurrently. They share only the
// read-only input grid.
func runDetectors(g *edge.Grid[int]) (*edge.Grid[int], *edge.Stages, error) {
	var (
		eg      errgroup.Group
		prewitt *edge.Grid[int]
		canny   *edge.Stages
	)
	eg.Go(func() error {
		prewitt = edge.Prewitt(g)
		return nil
	})
	eg.Go(func() error {
		canny = edge.CannyStages(g)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return prewitt, canny, nil
}

func (s *Server) handleEdgeCompare(args json.RawMessage) (interface{}, error) {
	g, _, err := s.loadGrid(args)
	if err != nil {
		return nil, err
	}
	prewitt, canny, err := runDetectors(g)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeCompare(g, prewitt, canny.Edges)
}

// EdgeStatsResult summarizes both detectors on one image.
type EdgeStatsResult struct {
	Width             int             `json:"width"`
	Height            int             `json:"height"`
	PrewittEdgePixels int             `json:"prewitt_edge_pixels"`
	PrewittMax        int             `json:"prewitt_max"`
	CannyWidth        int             `json:"canny_width"`
	CannyHeight       int             `json:"canny_height"`
	CannyEdgePixels   int             `json:"canny_edge_pixels"`
	CannyWeakPixels   int             `json:"canny_weak_pixels"`
	Thresholds        edge.Thresholds `json:"thresholds"`
	Warning           string          `json:"warning,omitempty"`
}

func (s *Server) handleEdgeStats(args json.RawMessage) (interface{}, error) {
	g, warning, err := s.loadGrid(args)
	if err != nil {
		return nil, err
	}
	prewitt, canny, err := runDetectors(g)
	if err != nil {
		return nil, err
	}

	// An empty Prewitt map reports a maximum of 0.
	prewittMax, _ := prewitt.Max()
	return &EdgeStatsResult{
		Width:             g.Width(),
		Height:            g.Height(),
		PrewittEdgePixels: prewitt.Count(func(v int) bool { return v != 0 }),
		PrewittMax:        prewittMax,
		CannyWidth:        canny.Edges.Width(),
		CannyHeight:       canny.Edges.Height(),
		CannyEdgePixels:   canny.Edges.Count(func(v int) bool { return v != 0 }),
		CannyWeakPixels:   canny.Classified.Count(func(v int) bool { return v == edge.ClassWeak }),
		Thresholds:        canny.Thresholds,
		Warning:           warning,
	}, nil
}
