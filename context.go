package spark

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the engine's drawing surface: an offscreen image the render
// hook draws onto each frame, blitted to the window afterwards. Keeping the
// surface offscreen is what lets pause hold the last frame without
// redrawing it.
type Canvas struct {
	image  *ebiten.Image
	width  int
	height int
	ctx    *Context
}

// NewCanvas creates a drawing surface with the given pixel dimensions.
// Returns a ConfigError if either dimension is not positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, configErrorf("canvas dimensions must be positive, got %dx%d", width, height)
	}
	c := &Canvas{
		image:  ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
	c.ctx = &Context{target: c.image, size: Size{float64(width), float64(height)}}
	return c, nil
}

// Context returns the drawing context for this canvas. The same Context is
// passed to render hooks; it is valid for the lifetime of the canvas.
func (c *Canvas) Context() *Context {
	return c.ctx
}

// Image returns the backing ebiten image.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() Size {
	return Size{float64(c.width), float64(c.height)}
}

// Bounds returns the canvas rectangle with its origin at the top-left.
func (c *Canvas) Bounds() Rect {
	return Rect{0, 0, float64(c.width), float64(c.height)}
}

// SavePNG writes the current canvas contents to a PNG file at the given
// path. Intended for debugging and visual test baselines.
func (c *Canvas) SavePNG(path string) error {
	pixels := make([]byte, 4*c.width*c.height)
	c.image.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spark: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("spark: encode %s: %w", path, err)
	}
	return f.Close()
}

// Context is the 2D drawing handle handed to render hooks and GameObject
// draw routines. It exposes the small set of filled-primitive operations
// the toy needs.
type Context struct {
	target *ebiten.Image
	size   Size
}

// Clear erases the full surface to transparent black.
func (c *Context) Clear() {
	c.target.Clear()
}

// Fill floods the full surface with a solid color.
func (c *Context) Fill(col Color) {
	c.target.Fill(col.toRGBA())
}

// FillCircle draws a filled, antialiased circle of radius r centered at
// (cx, cy).
func (c *Context) FillCircle(cx, cy, r float64, col Color) {
	vector.DrawFilledCircle(c.target, float32(cx), float32(cy), float32(r), col.toRGBA(), true)
}

// FillRect draws a filled rectangle.
func (c *Context) FillRect(r Rect, col Color) {
	vector.DrawFilledRect(c.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col.toRGBA(), false)
}

// Size returns the surface dimensions in pixels.
func (c *Context) Size() Size {
	return c.size
}
