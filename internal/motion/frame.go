// Package motion estimates gross hand movement from successive video frames
// using per-pixel frame differencing on a downsampled RGB grid.
package motion

// Frame is a downsampled video frame holding W×H RGB pixel samples.
// Pix is packed row-major as R, G, B triples.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame creates an all-black frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At returns the RGB sample at (x, y).
func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Set stores the RGB sample at (x, y).
func (f *Frame) Set(x, y int, r, g, b uint8) {
	i := (y*f.Width + x) * 3
	f.Pix[i] = r
	f.Pix[i+1] = g
	f.Pix[i+2] = b
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{Width: f.Width, Height: f.Height, Pix: make([]uint8, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// valid reports whether the frame carries a complete pixel grid.
// Frames read before the camera has warmed up can arrive empty or truncated.
func (f *Frame) valid() bool {
	return f != nil && f.Width > 0 && f.Height > 0 && len(f.Pix) == f.Width*f.Height*3
}
