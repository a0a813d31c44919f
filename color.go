//go:build !windows && !ios && !android && (amd64 || arm64)

package sdlpix

import (
	"fmt"
)

// Color is an RGB or RGBA value. The two variants are distinct: RGB(1, 2, 3)
// and RGBA(1, 2, 3, 255) are not equal. Colors are comparable with ==.
type Color struct {
	R, G, B uint8

	a        uint8
	hasAlpha bool
}

// RGB returns a color without an alpha channel.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns a color with an alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, a: a, hasAlpha: true}
}

// Channels returns the red, green and blue channels of either variant.
func (c Color) Channels() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// Alpha returns the alpha channel. ok is false for RGB colors.
func (c Color) Alpha() (a uint8, ok bool) {
	return c.a, c.hasAlpha
}

// HasAlpha reports whether c is the RGBA variant.
func (c Color) HasAlpha() bool {
	return c.hasAlpha
}

// Equal reports whether c and other are the same variant with the same channels.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String returns "rgb(r, g, b)" or "rgba(r, g, b, a)".
func (c Color) String() string {
	if c.hasAlpha {
		return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.a)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. RGB colors report full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := uint32(0xff)
	if c.hasAlpha {
		alpha = uint32(c.a)
	}
	// Premultiply and widen to 16 bits, as image/color.NRGBA does.
	r = uint32(c.R)
	r |= r << 8
	r *= alpha
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= alpha
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= alpha
	b /= 0xff
	a = alpha | alpha<<8
	return r, g, b, a
}

// ToPacked packs c into the pixel layout described by f. RGB colors go
// through SDL_MapRGB and RGBA colors through SDL_MapRGBA; the bit layout is
// entirely SDL's.
func (c Color) ToPacked(f Format) (uint32, error) {
	p, lib, err := f.ref.resolve()
	if err != nil {
		return 0, err
	}
	if c.hasAlpha {
		return lib.svc.MapRGBA(p, c.R, c.G, c.B, c.a), nil
	}
	return lib.svc.MapRGB(p, c.R, c.G, c.B), nil
}

// FromPacked unpacks a pixel value with SDL_GetRGBA. The result is always
// the RGBA variant, even for formats without alpha, where SDL reports its
// own fixed alpha (255). Packing an RGB color and unpacking it therefore
// does not give back an RGB color.
func FromPacked(f Format, packed uint32) (Color, error) {
	p, lib, err := f.ref.resolve()
	if err != nil {
		return Color{}, err
	}
	r, g, b, a := lib.svc.GetRGBA(packed, p)
	return RGBA(r, g, b, a), nil
}
