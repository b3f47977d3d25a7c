// Command gen renders the triangle in a hidden window, captures the presented
// frame, and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// frameLimit closes the hidden window after a fixed number of presents.
type frameLimit struct {
	triangle.Window
	frames, limit int
}

func (w *frameLimit) SwapBuffers() {
	w.Window.SwapBuffers()
	w.frames++
}

func (w *frameLimit) ShouldClose() bool {
	return w.frames >= w.limit || w.Window.ShouldClose()
}

// hiddenPlatform wraps every window it creates in a frameLimit.
type hiddenPlatform struct {
	*opengl.GLFWPlatform
	limit int
}

func (p *hiddenPlatform) CreateWindow(width, height int, title string) (triangle.Window, error) {
	w, err := p.GLFWPlatform.CreateWindow(width, height, title)
	if err != nil {
		return nil, err
	}
	return &frameLimit{Window: w, limit: p.limit}, nil
}

func run() error {
	glfwPlatform := opengl.NewGLFWPlatform()
	glfwPlatform.Hidden = true
	dev := opengl.NewDevice()

	r, err := triangle.New(&hiddenPlatform{GLFWPlatform: glfwPlatform, limit: 2}, dev,
		triangle.WithTitle("screenshot-gen"))
	if err != nil {
		return err
	}
	defer r.Close()

	if err := r.Run(context.Background()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	img := dev.Snapshot(triangle.DefaultWidth, triangle.DefaultHeight)
	path := filepath.Join(outDir, "triangle.jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	fmt.Printf("  %s (%dx%d, %d frames)\n", path, triangle.DefaultWidth, triangle.DefaultHeight, r.Frames())
	return nil
}
