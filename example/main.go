// Example opens a 640x480 window and draws a red triangle until the window
// is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Exit status is 0 after a normal close and -1 when GLFW cannot be
// initialized or the window cannot be created.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	r, err := triangle.New(opengl.NewGLFWPlatform(), opengl.NewDevice())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	defer r.Close()

	if err := r.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// exitCode maps startup failures to the process status.
func exitCode(err error) int {
	if errors.Is(err, triangle.ErrPlatformInit) || errors.Is(err, triangle.ErrWindowCreate) {
		return -1
	}
	return 1
}
