package xbr

import "image/color"

// Pixel is a packed 24-bit RGB color: red in bits 16-23, green in bits 8-15,
// blue in bits 0-7. Bits above 23 are ignored on read and forced to zero on
// write. There is no alpha channel.
type Pixel uint32

// R returns the red channel.
func (p Pixel) R() uint8 {
	return uint8((p & 0xFF0000) >> 16)
}

// G returns the green channel.
func (p Pixel) G() uint8 {
	return uint8((p & 0x00FF00) >> 8)
}

// B returns the blue channel.
func (p Pixel) B() uint8 {
	return uint8(p & 0x0000FF)
}

// RF returns the red channel widened to float32.
func (p Pixel) RF() float32 {
	return float32(p.R())
}

// GF returns the green channel widened to float32.
func (p Pixel) GF() float32 {
	return float32(p.G())
}

// BF returns the blue channel widened to float32.
func (p Pixel) BF() float32 {
	return float32(p.B())
}

// Pack builds a Pixel from 8-bit channels.
func Pack(r, g, b uint8) Pixel {
	return Pixel(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// PackFloat builds a Pixel from float32 channels. Each channel is truncated
// to an integer and masked to 8 bits (wrapping, not saturating); callers are
// expected to pass values in [0, 255].
func PackFloat(r, g, b float32) Pixel {
	return Pack(
		uint8(uint32(r)&0xFF),
		uint8(uint32(g)&0xFF),
		uint8(uint32(b)&0xFF),
	)
}

// Blend linearly interpolates from a to b by alpha and re-packs the result.
// alpha is expected in [0, 1]; out-of-range values are not rejected and wrap
// per PackFloat's masking rule.
func Blend(a, b Pixel, alpha float32) Pixel {
	inv := 1 - alpha
	return PackFloat(
		alpha*b.RF()+inv*a.RF(),
		alpha*b.GF()+inv*a.GF(),
		alpha*b.BF()+inv*a.BF(),
	)
}

// Color converts p to the standard color.Color interface.
func (p Pixel) Color() color.Color {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: 0xFF}
}

// FromColor converts a standard color.Color to a Pixel, discarding alpha.
func FromColor(c color.Color) Pixel {
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
