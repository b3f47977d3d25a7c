package triangle

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// State is the lifecycle stage of a RendererContext.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateRunning
	StateTerminating
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RendererContext owns the window, the uploaded triangle and the single
// program used to draw it. Create it with New, drive it with Run or Frame,
// and release it with Close. It is not safe for concurrent use; every
// method must run on the thread that owns the graphics context.
type RendererContext struct {
	cfg      config
	platform Platform
	window   Window
	dev      Device
	geometry Geometry
	program  Program
	state    State
	frames   uint64
}

// New initializes the window system, opens the window, uploads the
// triangle and builds the program.
//
// If the window system cannot be initialized New returns ErrPlatformInit.
// If the window cannot be created the platform is terminated and New
// returns ErrWindowCreate. In both cases no further window calls are made.
func New(platform Platform, dev Device, opts ...Option) (*RendererContext, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = loggerOrDefault(cfg.logger)
	if cfg.status == nil {
		cfg.status = io.Discard
	}

	r := &RendererContext{
		cfg:      cfg,
		platform: platform,
		dev:      dev,
	}

	if err := platform.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPlatformInit, err)
	}

	window, err := platform.CreateWindow(cfg.width, cfg.height, cfg.title)
	if err != nil || window == nil {
		platform.Terminate()
		if err == nil {
			return nil, ErrWindowCreate
		}
		return nil, fmt.Errorf("%w: %w", ErrWindowCreate, err)
	}
	r.window = window
	window.MakeContextCurrent()
	window.SetSwapInterval(cfg.swapInterval)
	cfg.logger.Debug("window created", "width", cfg.width, "height", cfg.height, "title", cfg.title)

	// A loader failure is reported but not fatal; later driver calls may misbehave.
	if err := dev.Init(); err != nil {
		cfg.logger.Error("graphics loader init failed", "error", err)
	}
	fmt.Fprintf(cfg.status, "Status: Using GL %s\n", dev.Version())

	r.geometry = UploadTriangle(dev)
	cfg.logger.Debug("triangle uploaded", "buffer", r.geometry.Buffer, "vertices", VertexCount)

	r.program, err = BuildProgram(dev, cfg.diag, cfg.logger, cfg.vertexSource, cfg.fragmentSource)
	if err != nil {
		// Keep running without a program: frames clear but draw nothing.
		cfg.logger.Error("shader program unavailable", "error", err)
	} else {
		cfg.logger.Debug("program in use", "program", r.program)
	}

	dev.ClearColor(cfg.clearColor)
	r.state = StateReady
	return r, nil
}

// State returns the current lifecycle state.
func (r *RendererContext) State() State { return r.state }

// Program returns the active program, or 0 if it failed to build.
func (r *RendererContext) Program() Program { return r.program }

// Geometry returns the uploaded triangle's driver objects.
func (r *RendererContext) Geometry() Geometry { return r.geometry }

// Frames returns the number of frames presented so far.
func (r *RendererContext) Frames() uint64 { return r.frames }

// Ready reports whether a draw call is valid: a program is in use and the
// triangle buffer with its layout is bound.
func (r *RendererContext) Ready() bool {
	return r.program != 0 && r.geometry.Buffer != 0
}

// Frame renders and presents one frame: clear, draw, swap, poll.
//
// When no program is available the frame is still cleared, presented and
// polled, and ErrNotReady is returned.
func (r *RendererContext) Frame() error {
	switch r.state {
	case StateStopped, StateTerminating:
		return ErrClosed
	case StateUninitialized:
		return ErrNotReady
	}

	r.dev.Clear()

	var err error
	if r.Ready() {
		r.dev.DrawArrays(Triangles, 0, VertexCount)
	} else {
		err = ErrNotReady
	}

	r.window.SwapBuffers()
	r.window.PollEvents()
	r.frames++
	return err
}

// Run renders frames until the window is asked to close or ctx is done.
// The close flag and ctx are checked before each frame.
func (r *RendererContext) Run(ctx context.Context) error {
	if r.state != StateReady {
		if r.state == StateStopped || r.state == StateTerminating {
			return ErrClosed
		}
		return ErrNotReady
	}
	r.state = StateRunning
	defer func() {
		if r.state == StateRunning {
			r.state = StateReady
		}
	}()

	for !r.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Frame(); err != nil && !errors.Is(err, ErrNotReady) {
			return err
		}
	}
	r.cfg.logger.Debug("close requested", "frames", r.frames)
	return nil
}

// Close releases the program, buffer, vertex array and window, then
// terminates the window system. It is safe to call more than once.
func (r *RendererContext) Close() {
	if r.state == StateStopped {
		return
	}
	r.state = StateTerminating

	if r.program != 0 {
		r.dev.DeleteProgram(r.program)
		r.program = 0
	}
	r.geometry.Delete(r.dev)

	if r.window != nil {
		r.window.Destroy()
		r.window = nil
	}
	r.platform.Terminate()
	r.state = StateStopped
}
