package triangle

// Device is the graphics driver boundary. All methods must be called from
// the thread that owns the current context.
//
// Implementations translate these calls one-to-one into the native API;
// backend/opengl provides the OpenGL one.
type Device interface {
	// Init loads the driver entry points for the current context.
	Init() error
	// Version reports the driver/loader version string.
	Version() string

	CreateShader(stage ShaderStage) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ValidateProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramValidated(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	DeleteProgram(p Program)

	GenVertexArray() VertexArray
	BindVertexArray(v VertexArray)
	DeleteVertexArray(v VertexArray)

	GenBuffer() Buffer
	BindArrayBuffer(b Buffer)
	BufferData(data []float32, usage BufferUsage)
	DeleteBuffer(b Buffer)

	EnableVertexAttrib(index uint32)
	VertexAttribPointer(layout AttribLayout)
	// VertexAttrib queries the layout the driver holds for an attribute slot.
	VertexAttrib(index uint32) AttribLayout

	ClearColor(c Color)
	Clear()
	DrawArrays(mode Primitive, first, count int32)
}

// Platform is the window system boundary.
type Platform interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)
	Terminate()
}

// Window is an OS window with an attached graphics context.
type Window interface {
	MakeContextCurrent()
	SetSwapInterval(interval int)
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
	Destroy()
}
