package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// GLFWPlatform implements triangle.Platform with GLFW.
// All methods must be called from the main thread.
type GLFWPlatform struct {
	// Context version requested for new windows.
	Major, Minor int
	// Hidden creates windows without showing them (offscreen capture).
	Hidden bool
}

// NewGLFWPlatform returns a platform that requests an OpenGL 4.1 core,
// forward-compatible context.
func NewGLFWPlatform() *GLFWPlatform {
	return &GLFWPlatform{Major: 4, Minor: 1}
}

// Init initializes GLFW.
func (p *GLFWPlatform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

// CreateWindow opens a window with a current-able OpenGL context.
func (p *GLFWPlatform) CreateWindow(width, height int, title string) (triangle.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, p.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, p.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if p.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return &GLFWWindow{window: w}, nil
}

// Terminate destroys remaining windows and frees GLFW resources.
func (p *GLFWPlatform) Terminate() {
	glfw.Terminate()
}

// GLFWWindow implements triangle.Window over a *glfw.Window.
type GLFWWindow struct {
	window *glfw.Window
}

func (w *GLFWWindow) MakeContextCurrent() {
	w.window.MakeContextCurrent()
}

// SetSwapInterval applies to the current context.
func (w *GLFWWindow) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (w *GLFWWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *GLFWWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending events without blocking.
func (w *GLFWWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *GLFWWindow) Destroy() {
	w.window.Destroy()
}
