// Package opengl provides the OpenGL 4.1 and GLFW 3.3 collaborators for the
// triangle renderer.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/triangle"
)

// Device implements triangle.Device on the current OpenGL context.
type Device struct {
	initialized bool
}

// NewDevice returns a device. Call Init once a context is current.
func NewDevice() *Device {
	return &Device{}
}

// Init loads the OpenGL function pointers for the current context.
func (d *Device) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	d.initialized = true
	return nil
}

// Version returns the GL_VERSION string, or "unavailable" before Init succeeds.
func (d *Device) Version() string {
	if !d.initialized {
		return "unavailable"
	}
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) CreateShader(stage triangle.ShaderStage) triangle.Shader {
	return triangle.Shader(gl.CreateShader(shaderType(stage)))
}

func (d *Device) ShaderSource(s triangle.Shader, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (d *Device) CompileShader(s triangle.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s triangle.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(s triangle.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(s), logLength, nil, &log[0])
	return trimLog(log)
}

func (d *Device) DeleteShader(s triangle.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() triangle.Program {
	return triangle.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p triangle.Program, s triangle.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p triangle.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ValidateProgram(p triangle.Program) {
	gl.ValidateProgram(uint32(p))
}

func (d *Device) ProgramLinked(p triangle.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramValidated(p triangle.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(p triangle.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(p), logLength, nil, &log[0])
	return trimLog(log)
}

func (d *Device) UseProgram(p triangle.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) DeleteProgram(p triangle.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) GenVertexArray() triangle.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return triangle.VertexArray(vao)
}

func (d *Device) BindVertexArray(v triangle.VertexArray) {
	gl.BindVertexArray(uint32(v))
}

func (d *Device) DeleteVertexArray(v triangle.VertexArray) {
	vao := uint32(v)
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) GenBuffer() triangle.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return triangle.Buffer(vbo)
}

func (d *Device) BindArrayBuffer(b triangle.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

func (d *Device) BufferData(data []float32, usage triangle.BufferUsage) {
	if len(data) == 0 {
		return
	}
	size := len(data) * int(unsafe.Sizeof(data[0]))
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(data), bufferUsage(usage))
}

func (d *Device) DeleteBuffer(b triangle.Buffer) {
	vbo := uint32(b)
	gl.DeleteBuffers(1, &vbo)
}

func (d *Device) EnableVertexAttrib(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) VertexAttribPointer(l triangle.AttribLayout) {
	gl.VertexAttribPointerWithOffset(l.Index, l.Components, attribType(l.Type), l.Normalized, l.Stride, l.Offset)
}

// VertexAttrib reads back the attribute state of the bound vertex array.
func (d *Device) VertexAttrib(index uint32) triangle.AttribLayout {
	var enabled, size, xtype, normalized, stride int32
	gl.GetVertexAttribiv(index, gl.VERTEX_ATTRIB_ARRAY_ENABLED, &enabled)
	gl.GetVertexAttribiv(index, gl.VERTEX_ATTRIB_ARRAY_SIZE, &size)
	gl.GetVertexAttribiv(index, gl.VERTEX_ATTRIB_ARRAY_TYPE, &xtype)
	gl.GetVertexAttribiv(index, gl.VERTEX_ATTRIB_ARRAY_NORMALIZED, &normalized)
	gl.GetVertexAttribiv(index, gl.VERTEX_ATTRIB_ARRAY_STRIDE, &stride)

	var ptr unsafe.Pointer
	gl.GetVertexAttribPointerv(index, gl.VERTEX_ATTRIB_ARRAY_POINTER, &ptr)

	return triangle.AttribLayout{
		Index:      index,
		Enabled:    enabled != gl.FALSE,
		Components: size,
		Type:       fromGLAttribType(uint32(xtype)),
		Normalized: normalized != gl.FALSE,
		Stride:     stride,
		Offset:     uintptr(ptr),
	}
}

func (d *Device) ClearColor(c triangle.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawArrays(mode triangle.Primitive, first, count int32) {
	gl.DrawArrays(primitive(mode), first, count)
}

func shaderType(stage triangle.ShaderStage) uint32 {
	if stage == triangle.StageFragment {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func bufferUsage(triangle.BufferUsage) uint32 {
	// StaticDraw is the only usage the renderer uploads with
	return gl.STATIC_DRAW
}

func attribType(triangle.AttribType) uint32 {
	return gl.FLOAT
}

func fromGLAttribType(t uint32) triangle.AttribType {
	if t == gl.FLOAT {
		return triangle.AttribFloat
	}
	return 0
}

func primitive(triangle.Primitive) uint32 {
	return gl.TRIANGLES
}

// trimLog converts a NUL-terminated driver log into a Go string.
func trimLog(log []byte) string {
	return strings.TrimRight(string(log), "\x00\n")
}
