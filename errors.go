package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrPlatformInit is returned when the window system fails to initialize.
	ErrPlatformInit = errors.New("window system init failed")
	// ErrWindowCreate is returned when the window or its context cannot be created.
	ErrWindowCreate = errors.New("window creation failed")
	// ErrEmptySource is returned by Compile for empty shader text.
	ErrEmptySource = errors.New("empty shader source")
	// ErrInvalidShader is returned by Link when an input is the failure sentinel.
	ErrInvalidShader = errors.New("invalid shader handle")
	// ErrNotReady is returned when drawing without a bound program and buffer.
	ErrNotReady = errors.New("renderer not ready")
	// ErrClosed is returned by operations on a closed RendererContext.
	ErrClosed = errors.New("renderer closed")
)

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that could not be linked.
type LinkError struct {
	Vertex   Shader
	Fragment Shader
	Err      error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program (vertex=%d, fragment=%d): %v", e.Vertex, e.Fragment, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }
