package triangle

// Shader is a driver-side shader object handle. The zero value is the
// failure sentinel returned by Compile.
type Shader uint32

// Program is a driver-side linked program handle. Zero means no program.
type Program uint32

// Buffer is a driver-side buffer object handle.
type Buffer uint32

// VertexArray is a driver-side vertex array object handle.
type VertexArray uint32

// ShaderStage selects the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

// String returns the stage name used in compile diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "Vertex"
	case StageFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// AttribType is the component type of a vertex attribute.
type AttribType int

const (
	AttribFloat AttribType = iota + 1
)

// String returns the attribute type name.
func (t AttribType) String() string {
	if t == AttribFloat {
		return "float"
	}
	return "unknown"
}

// BufferUsage is the driver hint for how often buffer contents change.
type BufferUsage int

const (
	// StaticDraw marks data uploaded once and drawn many times.
	StaticDraw BufferUsage = iota + 1
)

// Primitive is the primitive assembly mode for a draw call.
type Primitive int

const (
	Triangles Primitive = iota + 1
)

// AttribLayout describes how buffer bytes map to one vertex attribute slot.
type AttribLayout struct {
	Index      uint32
	Enabled    bool
	Components int32      // Values per vertex (1-4)
	Type       AttribType // Component type
	Normalized bool
	Stride     int32   // Bytes between consecutive vertices
	Offset     uintptr // Byte offset of the first component
}

// Color is a linear RGBA clear color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorBlack is the default clear color.
var ColorBlack = Color{A: 1}
