/*
Package triangle draws a single red triangle with OpenGL: it opens a window,
compiles a fixed vertex/fragment shader pair, uploads three vertices, and
redraws them every frame until the window is closed.

# Overview

The package talks to the graphics driver through [Device] and to the window
system through [Platform] and [Window]. backend/opengl implements them with
go-gl and GLFW; tests use in-memory fakes.

# Quick Start

	func init() { runtime.LockOSThread() } // GLFW must run on the main thread

	r, err := triangle.New(opengl.NewGLFWPlatform(), opengl.NewDevice())
	if err != nil {
	    os.Exit(-1)
	}
	defer r.Close()

	r.Run(context.Background())

# Initialization Order

[New] runs these steps once, in order:

	Platform.Init            failure: ErrPlatformInit, nothing else runs
	Platform.CreateWindow    failure: Terminate, then ErrWindowCreate
	Window.MakeContextCurrent
	Device.Init              failure is logged; startup continues
	UploadTriangle           vertex array + static buffer, attribute slot 0
	BuildProgram             Compile x2, Link x1, UseProgram

# Frame Loop

[RendererContext.Run] checks the close flag before every frame, then runs
[RendererContext.Frame]:

	Clear -> DrawArrays(Triangles, 0, VertexCount) -> SwapBuffers -> PollEvents

If the program failed to build, frames are still cleared and presented but
nothing is drawn.

# Shader Failures

[Compile] writes "Failed to compile: Vertex" (or "Fragment") followed by the
driver log to the diagnostics writer and returns the zero [Shader]. [Link]
refuses a zero handle with [ErrInvalidShader]. A driver-side link failure is
logged at warn level only.

# Logging

Log records go to stderr through log/slog. Debug output is off by default;
enable it with [SetVerbose] or supply a logger with [WithLogger].
*/
package triangle
