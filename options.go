package triangle

import (
	"io"
	"log/slog"
	"os"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "Hello World"
)

// config holds RendererContext settings. The zero Option set reproduces the
// fixed 640x480 "Hello World" window.
type config struct {
	width, height  int
	title          string
	swapInterval   int
	clearColor     Color
	vertexSource   string
	fragmentSource string
	diag           io.Writer
	status         io.Writer
	logger         *slog.Logger
}

func defaultConfig() config {
	return config{
		width:          DefaultWidth,
		height:         DefaultHeight,
		title:          DefaultTitle,
		swapInterval:   1,
		clearColor:     ColorBlack,
		vertexSource:   VertexSource,
		fragmentSource: FragmentSource,
		diag:           os.Stderr,
		status:         os.Stdout,
		logger:         defaultLogger,
	}
}

// Option configures a RendererContext.
type Option func(*config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *config) { c.width, c.height = width, height }
}

// WithSwapInterval sets the number of refreshes to wait per swap (1 = vsync).
func WithSwapInterval(interval int) Option {
	return func(c *config) { c.swapInterval = interval }
}

// WithClearColor sets the color the frame is cleared to.
func WithClearColor(color Color) Option {
	return func(c *config) { c.clearColor = color }
}

// WithShaders replaces the built-in shader sources.
func WithShaders(vertex, fragment string) Option {
	return func(c *config) { c.vertexSource, c.fragmentSource = vertex, fragment }
}

// WithDiagnostics sets where shader compile failures are written.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) { c.diag = w }
}

// WithStatus sets where the startup status line is written.
func WithStatus(w io.Writer) Option {
	return func(c *config) { c.status = w }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
