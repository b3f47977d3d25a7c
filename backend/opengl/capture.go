package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Snapshot reads the last presented frame (front buffer) into an image.
// Call it after SwapBuffers.
func (d *Device) Snapshot(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	flipRows(img)
	return img
}

// flipRows mirrors img vertically (OpenGL origin is bottom-left).
func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	rowLen := img.Stride
	tmp := make([]byte, rowLen)
	for y := 0; y < h/2; y++ {
		top := y * rowLen
		bot := (h - 1 - y) * rowLen
		copy(tmp, img.Pix[top:top+rowLen])
		copy(img.Pix[top:top+rowLen], img.Pix[bot:bot+rowLen])
		copy(img.Pix[bot:bot+rowLen], tmp)
	}
}
