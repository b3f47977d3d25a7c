package triangle

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// VertexSource passes the 2D position in attribute slot 0 straight through.
const VertexSource = `#version 330 core

layout(location = 0) in vec4 position;

void main() {
    gl_Position = position;
}
`

// FragmentSource paints every fragment opaque red.
const FragmentSource = `#version 330 core

layout(location = 0) out vec4 color;

void main() {
    color = vec4(1.0, 0.0, 0.0, 1.0);
}
`

// Compile compiles source for the given stage.
//
// On failure the driver log is written to diag (stderr when nil) under a
// "Failed to compile: <Stage>" line, the shader object is deleted, and the
// zero Shader is returned with a *CompileError. On success the caller owns
// the returned shader.
func Compile(dev Device, diag io.Writer, stage ShaderStage, source string) (Shader, error) {
	if source == "" {
		return 0, fmt.Errorf("compile %s: %w", stage, ErrEmptySource)
	}
	if diag == nil {
		diag = os.Stderr
	}

	s := dev.CreateShader(stage)
	dev.ShaderSource(s, source)
	dev.CompileShader(s)

	if !dev.ShaderCompiled(s) {
		log := dev.ShaderInfoLog(s)
		fmt.Fprintf(diag, "Failed to compile: %s\n", stage)
		fmt.Fprintln(diag, log)
		dev.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return s, nil
}

// Link attaches vs and fs to a new program, links and validates it, then
// deletes both shaders.
//
// A zero input handle is refused with a *LinkError wrapping
// ErrInvalidShader and no program object is created. A driver-side link or
// validate failure is logged but the program is still returned.
func Link(dev Device, logger *slog.Logger, vs, fs Shader) (Program, error) {
	if vs == 0 || fs == 0 {
		return 0, &LinkError{Vertex: vs, Fragment: fs, Err: ErrInvalidShader}
	}
	logger = loggerOrDefault(logger)

	p := dev.CreateProgram()
	dev.AttachShader(p, vs)
	dev.AttachShader(p, fs)
	dev.LinkProgram(p)
	dev.ValidateProgram(p)

	if !dev.ProgramLinked(p) {
		logger.Warn("program link failed", "program", p, "log", dev.ProgramInfoLog(p))
	} else if !dev.ProgramValidated(p) {
		logger.Warn("program validation failed", "program", p, "log", dev.ProgramInfoLog(p))
	}

	// Shaders are linked into the program now
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	return p, nil
}

// BuildProgram compiles both stages, links them and makes the result the
// current program.
func BuildProgram(dev Device, diag io.Writer, logger *slog.Logger, vertexSource, fragmentSource string) (Program, error) {
	vs, vsErr := Compile(dev, diag, StageVertex, vertexSource)
	fs, fsErr := Compile(dev, diag, StageFragment, fragmentSource)

	p, err := Link(dev, logger, vs, fs)
	if err != nil {
		// Release whichever stage did compile
		if vs != 0 {
			dev.DeleteShader(vs)
		}
		if fs != 0 {
			dev.DeleteShader(fs)
		}
		if vsErr != nil {
			return 0, fmt.Errorf("%w: %w", err, vsErr)
		}
		if fsErr != nil {
			return 0, fmt.Errorf("%w: %w", err, fsErr)
		}
		return 0, err
	}

	dev.UseProgram(p)
	return p, nil
}
