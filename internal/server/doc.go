// Package server implements the MCP (Model Context Protocol) server for the
// screenshot styling tools.
//
// This package provides a JSON-RPC 2.0 server that exposes rounding, drop
// shadows and terminal-window framing to MCP-compatible clients, so an
// assistant can style screenshots for a README without leaving the chat.
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
//   - image_sample_color: Get color and alpha at a pixel
//
// Styling Operations:
//   - image_round_corners: Transparent rounded corners
//   - image_drop_shadow: Blurred rounded-rectangle shadow
//   - image_process: Rounded corners plus drop shadow
//   - image_terminal_window: Terminal window frame
//
// Styling tools write a PNG to output_path when it is given and report the
// output size. Without output_path they return the PNG base64-encoded.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// Writing to a path evicts it from the cache, and initialize clears it.
//
// # Limits
//
// Arguments that grow the canvas (blur, spread, shadow_blur, shadow_spread,
// padding, header_height) are capped at 1024 pixels and font_size at 256.
// Larger values are rejected before the input is loaded.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client through "shotframe serve":
//
//	srv := server.New(server.WithVersion(version))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
