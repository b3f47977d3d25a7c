package triangle

import "unsafe"

// ComponentsPerVertex is the number of floats per vertex (x, y).
const ComponentsPerVertex = 2

// Vertices is the triangle in normalized device coordinates.
var Vertices = [6]float32{
	-0.5, -0.5,
	+0.5, -0.5,
	+0.0, +0.5,
}

// VertexCount is the number of vertices drawn each frame.
const VertexCount = int32(len(Vertices) / ComponentsPerVertex)

// TriangleLayout is the attribute slot 0 layout for Vertices.
var TriangleLayout = AttribLayout{
	Index:      0,
	Enabled:    true,
	Components: ComponentsPerVertex,
	Type:       AttribFloat,
	Normalized: false,
	Stride:     ComponentsPerVertex * int32(unsafe.Sizeof(float32(0))),
	Offset:     0,
}

// Geometry holds the driver objects backing the uploaded triangle.
type Geometry struct {
	VAO    VertexArray
	Buffer Buffer
}

// UploadTriangle copies Vertices into a new static buffer and registers
// TriangleLayout on attribute slot 0. The vertex array and buffer stay bound.
func UploadTriangle(dev Device) Geometry {
	var g Geometry

	g.VAO = dev.GenVertexArray()
	dev.BindVertexArray(g.VAO)

	g.Buffer = dev.GenBuffer()
	dev.BindArrayBuffer(g.Buffer)
	dev.BufferData(Vertices[:], StaticDraw)

	dev.EnableVertexAttrib(TriangleLayout.Index)
	dev.VertexAttribPointer(TriangleLayout)

	return g
}

// Delete releases the buffer and vertex array.
func (g *Geometry) Delete(dev Device) {
	if g.Buffer != 0 {
		dev.DeleteBuffer(g.Buffer)
		g.Buffer = 0
	}
	if g.VAO != 0 {
		dev.DeleteVertexArray(g.VAO)
		g.VAO = 0
	}
}

// QueryAttrib returns the layout the driver reports for an attribute slot.
func QueryAttrib(dev Device, index uint32) AttribLayout {
	return dev.VertexAttrib(index)
}
