package triangle_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-theft-auto/triangle"
)

// recorder collects calls from every fake so tests can check ordering.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type fakeShader struct {
	stage    triangle.ShaderStage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	attached  []triangle.Shader
	linked    bool
	validated bool
}

type drawCall struct {
	mode         triangle.Primitive
	first, count int32
	program      triangle.Program
}

// fakeDevice is an in-memory driver. A source compiles when it declares
// main and its parentheses and braces balance.
type fakeDevice struct {
	rec *recorder

	initErr  error
	failLink bool

	next     uint32
	shaders  map[triangle.Shader]*fakeShader
	programs map[triangle.Program]*fakeProgram
	buffers  map[triangle.Buffer][]float32
	vaos     map[triangle.VertexArray]bool
	attribs  map[uint32]triangle.AttribLayout
	usage    triangle.BufferUsage

	deletedShaders []triangle.Shader
	boundVAO       triangle.VertexArray
	boundBuffer    triangle.Buffer
	current        triangle.Program
	clearColor     triangle.Color
	draws          []drawCall
}

func newFakeDevice(rec *recorder) *fakeDevice {
	if rec == nil {
		rec = &recorder{}
	}
	return &fakeDevice{
		rec:      rec,
		shaders:  make(map[triangle.Shader]*fakeShader),
		programs: make(map[triangle.Program]*fakeProgram),
		buffers:  make(map[triangle.Buffer][]float32),
		vaos:     make(map[triangle.VertexArray]bool),
		attribs:  make(map[uint32]triangle.AttribLayout),
	}
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) Init() error {
	d.rec.add("dev.Init")
	return d.initErr
}

func (d *fakeDevice) Version() string { return "4.1 fake" }

func (d *fakeDevice) CreateShader(stage triangle.ShaderStage) triangle.Shader {
	s := triangle.Shader(d.id())
	d.shaders[s] = &fakeShader{stage: stage}
	d.rec.add("dev.CreateShader %s", stage)
	return s
}

func (d *fakeDevice) ShaderSource(s triangle.Shader, source string) {
	d.shaders[s].source = source
}

func (d *fakeDevice) CompileShader(s triangle.Shader) {
	sh := d.shaders[s]
	src := sh.source
	switch {
	case !strings.Contains(src, "void main"):
		sh.log = "0:1(1): error: no main function"
	case strings.Count(src, "(") != strings.Count(src, ")"),
		strings.Count(src, "{") != strings.Count(src, "}"):
		sh.log = "0:5(1): error: syntax error, unexpected end of file"
	default:
		sh.compiled = true
	}
}

func (d *fakeDevice) ShaderCompiled(s triangle.Shader) bool { return d.shaders[s].compiled }

func (d *fakeDevice) ShaderInfoLog(s triangle.Shader) string { return d.shaders[s].log }

func (d *fakeDevice) DeleteShader(s triangle.Shader) {
	d.deletedShaders = append(d.deletedShaders, s)
	delete(d.shaders, s)
}

func (d *fakeDevice) CreateProgram() triangle.Program {
	p := triangle.Program(d.id())
	d.programs[p] = &fakeProgram{}
	d.rec.add("dev.CreateProgram")
	return p
}

func (d *fakeDevice) AttachShader(p triangle.Program, s triangle.Shader) {
	d.programs[p].attached = append(d.programs[p].attached, s)
}

func (d *fakeDevice) LinkProgram(p triangle.Program) {
	prog := d.programs[p]
	if d.failLink || len(prog.attached) != 2 {
		return
	}
	for _, s := range prog.attached {
		sh, ok := d.shaders[s]
		if !ok || !sh.compiled {
			return
		}
	}
	prog.linked = true
}

func (d *fakeDevice) ValidateProgram(p triangle.Program) {
	d.programs[p].validated = d.programs[p].linked
}

func (d *fakeDevice) ProgramLinked(p triangle.Program) bool { return d.programs[p].linked }

func (d *fakeDevice) ProgramValidated(p triangle.Program) bool { return d.programs[p].validated }

func (d *fakeDevice) ProgramInfoLog(p triangle.Program) string {
	if d.programs[p].linked {
		return ""
	}
	return "error: linking failed"
}

func (d *fakeDevice) UseProgram(p triangle.Program) {
	d.rec.add("dev.UseProgram")
	d.current = p
}

func (d *fakeDevice) DeleteProgram(p triangle.Program) {
	d.rec.add("dev.DeleteProgram")
	delete(d.programs, p)
	if d.current == p {
		d.current = 0
	}
}

func (d *fakeDevice) GenVertexArray() triangle.VertexArray {
	v := triangle.VertexArray(d.id())
	d.vaos[v] = true
	return v
}

func (d *fakeDevice) BindVertexArray(v triangle.VertexArray) { d.boundVAO = v }

func (d *fakeDevice) DeleteVertexArray(v triangle.VertexArray) {
	d.rec.add("dev.DeleteVertexArray")
	delete(d.vaos, v)
}

func (d *fakeDevice) GenBuffer() triangle.Buffer {
	b := triangle.Buffer(d.id())
	d.buffers[b] = nil
	return b
}

func (d *fakeDevice) BindArrayBuffer(b triangle.Buffer) { d.boundBuffer = b }

func (d *fakeDevice) BufferData(data []float32, usage triangle.BufferUsage) {
	d.rec.add("dev.BufferData")
	d.buffers[d.boundBuffer] = append([]float32(nil), data...)
	d.usage = usage
}

func (d *fakeDevice) DeleteBuffer(b triangle.Buffer) {
	d.rec.add("dev.DeleteBuffer")
	delete(d.buffers, b)
}

func (d *fakeDevice) EnableVertexAttrib(index uint32) {
	l := d.attribs[index]
	l.Index = index
	l.Enabled = true
	d.attribs[index] = l
}

func (d *fakeDevice) VertexAttribPointer(layout triangle.AttribLayout) {
	layout.Enabled = d.attribs[layout.Index].Enabled
	d.attribs[layout.Index] = layout
}

func (d *fakeDevice) VertexAttrib(index uint32) triangle.AttribLayout {
	l, ok := d.attribs[index]
	if !ok {
		return triangle.AttribLayout{Index: index}
	}
	return l
}

func (d *fakeDevice) ClearColor(c triangle.Color) { d.clearColor = c }

func (d *fakeDevice) Clear() { d.rec.add("dev.Clear") }

func (d *fakeDevice) DrawArrays(mode triangle.Primitive, first, count int32) {
	d.rec.add("dev.DrawArrays %d", count)
	d.draws = append(d.draws, drawCall{mode: mode, first: first, count: count, program: d.current})
}

// fakePlatform hands out a single fakeWindow.
type fakePlatform struct {
	rec       *recorder
	initErr   error
	createErr error
	window    *fakeWindow
}

func (p *fakePlatform) Init() error {
	p.rec.add("platform.Init")
	return p.initErr
}

func (p *fakePlatform) CreateWindow(width, height int, title string) (triangle.Window, error) {
	p.rec.add("platform.CreateWindow %dx%d %s", width, height, title)
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.window, nil
}

func (p *fakePlatform) Terminate() { p.rec.add("platform.Terminate") }

// fakeWindow requests close once closeAfter frames have been presented.
type fakeWindow struct {
	rec          *recorder
	closeAfter   int
	swaps        int
	swapInterval int
	current      bool
	destroyed    bool
}

func (w *fakeWindow) MakeContextCurrent() {
	w.rec.add("window.MakeContextCurrent")
	w.current = true
}

func (w *fakeWindow) SetSwapInterval(interval int) { w.swapInterval = interval }

func (w *fakeWindow) ShouldClose() bool { return w.swaps >= w.closeAfter }

func (w *fakeWindow) SwapBuffers() {
	w.rec.add("window.SwapBuffers")
	w.swaps++
}

func (w *fakeWindow) PollEvents() { w.rec.add("window.PollEvents") }

func (w *fakeWindow) Destroy() {
	w.rec.add("window.Destroy")
	w.destroyed = true
}

var errNoDisplay = errors.New("X11: The DISPLAY environment variable is missing")

// newFakes wires a platform, window and device to one recorder.
func newFakes(closeAfter int) (*recorder, *fakePlatform, *fakeDevice) {
	rec := &recorder{}
	win := &fakeWindow{rec: rec, closeAfter: closeAfter}
	return rec, &fakePlatform{rec: rec, window: win}, newFakeDevice(rec)
}
