package pixelloop

import "fmt"

// Color is an RGBA pixel value, one byte per channel, in storage order.
// Colors are plain values; copy them freely.
type Color struct {
	R, G, B, A uint8
}

// ColorFromBytes builds a Color from a 4-byte slice in R, G, B, A order.
// It panics if the slice is not exactly 4 bytes long; feeding it anything
// else is a defect in the caller, not a runtime condition.
func ColorFromBytes(b []byte) Color {
	if len(b) != 4 {
		panic(fmt.Sprintf("pixelloop: color needs exactly 4 bytes, got %d", len(b)))
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}
}

// RGBA builds a Color from explicit channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// Bytes returns the color in storage order: R, G, B, A.
func (c Color) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}
