package core

import "image"

// BytesPerPixel is the stride of one RGBA8888 pixel.
const BytesPerPixel = 4

// Surface is a software RGBA8888 pixel buffer.
// Rows are Pitch bytes apart; the compositor writes into Pix directly and the
// presentation layer reads it back once per frame.
type Surface struct {
	width  int
	height int
	pitch  int
	pix    []byte
}

// NewSurface creates a cleared surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		pitch:  width * BytesPerPixel,
	}
	s.pix = make([]byte, s.pitch*height)
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pitch returns the number of bytes between two rows.
func (s *Surface) Pitch() int {
	return s.pitch
}

// Pix returns the raw pixel buffer.
func (s *Surface) Pix() []byte {
	return s.pix
}

// Offset returns the byte offset of (x, y), or -1 when out of bounds.
func (s *Surface) Offset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.pitch + x*BytesPerPixel
}

// Clear sets every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.pix)
}

// Fill sets every pixel to the given color.
func (s *Surface) Fill(c Color) {
	for i := 0; i < len(s.pix); i += BytesPerPixel {
		s.pix[i] = c.R
		s.pix[i+1] = c.G
		s.pix[i+2] = c.B
		s.pix[i+3] = c.A
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	off := s.Offset(x, y)
	if off < 0 {
		return
	}
	s.pix[off] = c.R
	s.pix[off+1] = c.G
	s.pix[off+2] = c.B
	s.pix[off+3] = c.A
}

// Get returns the pixel at (x, y), transparent for out-of-bounds coordinates.
func (s *Surface) Get(x, y int) Color {
	off := s.Offset(x, y)
	if off < 0 {
		return ColorTransparent
	}
	return Color{R: s.pix[off], G: s.pix[off+1], B: s.pix[off+2], A: s.pix[off+3]}
}

// CopyFrom copies src into s. Both surfaces must have the same geometry;
// otherwise only the overlapping rows are copied.
func (s *Surface) CopyFrom(src *Surface) {
	if src.pitch == s.pitch && len(src.pix) == len(s.pix) {
		copy(s.pix, src.pix)
		return
	}
	rows := min(s.height, src.height)
	n := min(s.pitch, src.pitch)
	for y := 0; y < rows; y++ {
		copy(s.pix[y*s.pitch:y*s.pitch+n], src.pix[y*src.pitch:y*src.pitch+n])
	}
}

// FillRect fills a rectangle, clipped to the surface.
func (s *Surface) FillRect(r Rect, c Color) {
	r = r.Intersect(NewRect(0, 0, s.width, s.height))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, c)
		}
	}
}

// DrawRect draws a one pixel rectangle outline.
func (s *Surface) DrawRect(r Rect, c Color) {
	if r.Empty() {
		return
	}
	s.DrawHLine(r.X, r.Y, r.W, c)
	s.DrawHLine(r.X, r.Bottom()-1, r.W, c)
	s.DrawVLine(r.X, r.Y, r.H, c)
	s.DrawVLine(r.Right()-1, r.Y, r.H, c)
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Surface) DrawHLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, c)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Surface) DrawVLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, c)
	}
}

// Image returns an image.RGBA view sharing the surface's pixels.
func (s *Surface) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.pix,
		Stride: s.pitch,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}
