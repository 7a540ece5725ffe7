package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/shotframe/internal/blur"
	"github.com/ironsheep/shotframe/internal/imaging"
	"github.com/ironsheep/shotframe/internal/pipeline"
)

// errMissingPath is returned when a tool is called without its path argument.
var errMissingPath = errors.New("missing required argument: path")

// Upper bounds on arguments that grow the output canvas.
const (
	maxExtent   = 1024
	maxFontSize = 256
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_process").
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
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

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
//  3. Loads the input image from the cache
//  4. Runs the styling operation
//  5. Writes output_path, or returns the PNG inline when it is empty
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Styling Operations
	case "image_round_corners":
		return s.handleImageRoundCorners(ctx, args)
	case "image_drop_shadow":
		return s.handleImageDropShadow(ctx, args)
	case "image_process":
		return s.handleImageProcess(ctx, args)
	case "image_terminal_window":
		return s.handleImageTerminalWindow(ctx, args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals args into v and checks that a path was given.
func decodeArgs(args json.RawMessage, v interface{}, path func() string) error {
	if err := json.Unmarshal(args, v); err != nil {
		return err
	}
	if path() == "" {
		return errMissingPath
	}
	return nil
}

// load returns the cached input image.
func (s *Server) load(path string) (image.Image, error) {
	return s.cache.Load(path)
}

// emit writes img to outputPath, or returns it base64-encoded when outputPath
// is empty. A written path is evicted so later loads see the new file.
func (s *Server) emit(ctx context.Context, img *image.NRGBA, outputPath string) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if outputPath == "" {
		return imaging.EncodePNGBase64(img)
	}
	if err := imaging.SavePNG(img, outputPath); err != nil {
		return nil, err
	}
	s.cache.Evict(outputPath)
	b := img.Bounds()
	return &pipeline.Result{OutputPath: outputPath, Width: b.Dx(), Height: b.Dy()}, nil
}

// parseColorArg parses a hex color argument, falling back to def when empty.
func parseColorArg(name, hex string, def color.NRGBA) (color.NRGBA, error) {
	if hex == "" {
		return def, nil
	}
	c, err := imaging.ParseHexColor(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return c, nil
}

func intArg(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// checkMax rejects a size argument above limit.
func checkMax(name string, v, limit float64) error {
	if v > limit {
		return fmt.Errorf("%s %v exceeds maximum %v", name, v, limit)
	}
	return nil
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Styling Handlers ===

type imageRoundCornersArgs struct {
	Path       string `json:"path"`
	Radius     *int   `json:"radius"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageRoundCorners(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageRoundCornersArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}
	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}

	defaults := pipeline.DefaultProcessConfig()
	out, err := imaging.RoundCorners(img, float64(intArg(a.Radius, defaults.CornerRadius)))
	if err != nil {
		return nil, err
	}
	return s.emit(ctx, out, a.OutputPath)
}

type imageDropShadowArgs struct {
	Path        string `json:"path"`
	ShadowColor string `json:"shadow_color"`
	Blur        *int   `json:"blur"`
	Spread      *int   `json:"spread"`
	Radius      *int   `json:"radius"`
	BlurEngine  string `json:"blur_engine"`
	OutputPath  string `json:"output_path"`
}

func (s *Server) handleImageDropShadow(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageDropShadowArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}

	defaults := pipeline.DefaultProcessConfig()
	shadowColor, err := parseColorArg("shadow_color", a.ShadowColor, defaults.ShadowColor)
	if err != nil {
		return nil, err
	}
	b, err := blur.ByName(a.BlurEngine)
	if err != nil {
		return nil, err
	}
	blurPx, spread := intArg(a.Blur, defaults.ShadowBlur), intArg(a.Spread, defaults.ShadowSpread)
	if err := checkMax("blur", float64(blurPx), maxExtent); err != nil {
		return nil, err
	}
	if err := checkMax("spread", float64(spread), maxExtent); err != nil {
		return nil, err
	}

	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}

	out, err := imaging.DropShadow(img, imaging.ShadowOptions{
		Color:   shadowColor,
		Blur:    blurPx,
		Spread:  spread,
		Radius:  float64(intArg(a.Radius, defaults.CornerRadius)),
		Blurrer: b,
	})
	if err != nil {
		return nil, err
	}
	return s.emit(ctx, out, a.OutputPath)
}

type imageProcessArgs struct {
	Path         string `json:"path"`
	CornerRadius *int   `json:"corner_radius"`
	ShadowColor  string `json:"shadow_color"`
	ShadowBlur   *int   `json:"shadow_blur"`
	ShadowSpread *int   `json:"shadow_spread"`
	BlurEngine   string `json:"blur_engine"`
	OutputPath   string `json:"output_path"`
}

func (s *Server) handleImageProcess(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageProcessArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}

	cfg := pipeline.DefaultProcessConfig()
	cfg.Logger = s.debug
	cfg.CornerRadius = intArg(a.CornerRadius, cfg.CornerRadius)
	cfg.ShadowBlur = intArg(a.ShadowBlur, cfg.ShadowBlur)
	cfg.ShadowSpread = intArg(a.ShadowSpread, cfg.ShadowSpread)
	if a.BlurEngine != "" {
		cfg.BlurEngine = a.BlurEngine
	}
	if err := checkMax("shadow_blur", float64(cfg.ShadowBlur), maxExtent); err != nil {
		return nil, err
	}
	if err := checkMax("shadow_spread", float64(cfg.ShadowSpread), maxExtent); err != nil {
		return nil, err
	}
	var err error
	if cfg.ShadowColor, err = parseColorArg("shadow_color", a.ShadowColor, cfg.ShadowColor); err != nil {
		return nil, err
	}

	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := pipeline.Process(img, cfg)
	if err != nil {
		return nil, err
	}
	return s.emit(ctx, out, a.OutputPath)
}

type imageTerminalWindowArgs struct {
	Path         string   `json:"path"`
	Title        *string  `json:"title"`
	Padding      *int     `json:"padding"`
	HeaderHeight *int     `json:"header_height"`
	CornerRadius *int     `json:"corner_radius"`
	FontSize     *float64 `json:"font_size"`
	Background   string   `json:"background"`
	HeaderColor  string   `json:"header_color"`
	TitleColor   string   `json:"title_color"`
	OutputPath   string   `json:"output_path"`
}

// terminalResult adds the resolved font to the inline or written result.
type terminalResult struct {
	Image interface{} `json:"image"`
	Font  string      `json:"font"`
}

func (s *Server) handleImageTerminalWindow(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imageTerminalWindowArgs
	if err := decodeArgs(args, &a, func() string { return a.Path }); err != nil {
		return nil, err
	}

	cfg := pipeline.DefaultTerminalConfig()
	cfg.Logger = s.debug
	o := &cfg.Window
	o.Fonts = s.fonts
	if a.Title != nil {
		o.Title = *a.Title
	}
	o.Padding = intArg(a.Padding, o.Padding)
	o.HeaderHeight = intArg(a.HeaderHeight, o.HeaderHeight)
	o.CornerRadius = intArg(a.CornerRadius, o.CornerRadius)
	if a.FontSize != nil {
		o.FontSize = *a.FontSize
	}
	if err := checkMax("padding", float64(o.Padding), maxExtent); err != nil {
		return nil, err
	}
	if err := checkMax("header_height", float64(o.HeaderHeight), maxExtent); err != nil {
		return nil, err
	}
	if err := checkMax("font_size", o.FontSize, maxFontSize); err != nil {
		return nil, err
	}

	var err error
	if o.Background, err = parseColorArg("background", a.Background, o.Background); err != nil {
		return nil, err
	}
	if o.Header, err = parseColorArg("header_color", a.HeaderColor, o.Header); err != nil {
		return nil, err
	}
	if o.TitleColor, err = parseColorArg("title_color", a.TitleColor, o.TitleColor); err != nil {
		return nil, err
	}

	img, err := s.load(a.Path)
	if err != nil {
		return nil, err
	}
	out, layout, err := pipeline.Frame(img, cfg)
	if err != nil {
		return nil, err
	}
	res, err := s.emit(ctx, out, a.OutputPath)
	if err != nil {
		return nil, err
	}
	return &terminalResult{Image: res, Font: layout.Font}, nil
}
