package server

import (
	"github.com/ironsheep/shotframe/internal/blur"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Where to write the PNG result. When omitted the image is returned as base64-encoded PNG.",
	}
}

func blurEngineProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Gaussian blur backend",
		"enum":        blur.Names(),
		"default":     blur.DefaultName,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for subsequent operations.",
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
		{
			Name:        "image_sample_color",
			Description: "Get the color (hex, RGB, RGBA, HSL) at a pixel. Useful for checking that rounded corners are transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Styling Operations
		{
			Name:        "image_round_corners",
			Description: "Make the corners of an image transparent along a rounded rectangle. Output has the same size as the input.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Corner radius in pixels, clamped to half the shorter side",
						"default":     60,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_drop_shadow",
			Description: "Place an image over a blurred rounded-rectangle shadow. The canvas grows by 2*(blur+spread) in each dimension.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"shadow_color": map[string]interface{}{
						"type":        "string",
						"description": "Shadow color as #RRGGBB or #RRGGBBAA",
						"default":     "#000000FA",
					},
					"blur": map[string]interface{}{
						"type":        "integer",
						"description": "Gaussian blur radius in pixels",
						"default":     45,
					},
					"spread": map[string]interface{}{
						"type":        "integer",
						"description": "Extra margin around the image before blurring",
						"default":     40,
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Corner radius of the shadow shape",
						"default":     60,
					},
					"blur_engine": blurEngineProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_process",
			Description: "Round the corners of an image and add a drop shadow in one step.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"corner_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Corner radius in pixels",
						"default":     60,
					},
					"shadow_color": map[string]interface{}{
						"type":        "string",
						"description": "Shadow color as #RRGGBB or #RRGGBBAA",
						"default":     "#000000FA",
					},
					"shadow_blur": map[string]interface{}{
						"type":        "integer",
						"description": "Gaussian blur radius in pixels",
						"default":     45,
					},
					"shadow_spread": map[string]interface{}{
						"type":        "integer",
						"description": "Extra margin around the image before blurring",
						"default":     40,
					},
					"blur_engine": blurEngineProperty(),
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_terminal_window",
			Description: "Frame a screenshot as a macOS-style terminal window with a title bar, traffic-light buttons and a soft shadow.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"title": map[string]interface{}{
						"type":        "string",
						"description": "Title shown centered in the header bar",
						"default":     "pong-game ~/preview",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Space around the content inside the window",
						"default":     20,
					},
					"header_height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the title bar",
						"default":     40,
					},
					"corner_radius": map[string]interface{}{
						"type":        "integer",
						"description": "Window corner radius",
						"default":     10,
					},
					"font_size": map[string]interface{}{
						"type":        "number",
						"description": "Title font size in pixels",
						"default":     12.0,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Window background color",
						"default":     "#2E2E2E",
					},
					"header_color": map[string]interface{}{
						"type":        "string",
						"description": "Header bar color",
						"default":     "#1E1E1E",
					},
					"title_color": map[string]interface{}{
						"type":        "string",
						"description": "Title text color",
						"default":     "#C8C8C8",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
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
