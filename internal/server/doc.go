// Package server implements the MCP (Model Context Protocol) server for edge
// detection tools.
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
//   - image_load: Load image and report whether it can be analyzed
//   - image_dimensions: Get width and height
//
// Edge Detection:
//   - image_edge_prewitt: Prewitt gradient strength map
//   - image_edge_canny: Binary Canny edge map with its thresholds
//   - image_gradient_field: Color rendering of the Canny gradient field
//   - image_edge_compare: Original, Prewitt and Canny side by side
//   - image_edge_stats: Edge counts and thresholds without images
//
// Every detection tool accepts an optional region (or named_region) and
// scale, applied before the image is converted to intensities.
//
// Images smaller than 3x3 are not rejected. The detectors return their
// degenerate output and the result carries a warning.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(log))
//	if err := srv.Run(); err != nil {
//	    ...
//	}
package server
