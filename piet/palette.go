package piet

import "image/color"

// palette is the canonical 20-color Piet palette, keyed by its
// standard RGB reference values. Any pixel color not present here is
// treated as white, per spec.md section 4.1.
var palette = map[color.RGBA]Color{
	{0xFF, 0xC0, 0xC0, 0xFF}: NewColor(HueRed, LightLight),
	{0xFF, 0x00, 0x00, 0xFF}: NewColor(HueRed, LightNormal),
	{0xC0, 0x00, 0x00, 0xFF}: NewColor(HueRed, LightDark),

	{0xFF, 0xFF, 0xC0, 0xFF}: NewColor(HueYellow, LightLight),
	{0xFF, 0xFF, 0x00, 0xFF}: NewColor(HueYellow, LightNormal),
	{0xC0, 0xC0, 0x00, 0xFF}: NewColor(HueYellow, LightDark),

	{0xC0, 0xFF, 0xC0, 0xFF}: NewColor(HueGreen, LightLight),
	{0x00, 0xFF, 0x00, 0xFF}: NewColor(HueGreen, LightNormal),
	{0x00, 0xC0, 0x00, 0xFF}: NewColor(HueGreen, LightDark),

	{0xC0, 0xFF, 0xFF, 0xFF}: NewColor(HueCyan, LightLight),
	{0x00, 0xFF, 0xFF, 0xFF}: NewColor(HueCyan, LightNormal),
	{0x00, 0xC0, 0xC0, 0xFF}: NewColor(HueCyan, LightDark),

	{0xC0, 0xC0, 0xFF, 0xFF}: NewColor(HueBlue, LightLight),
	{0x00, 0x00, 0xFF, 0xFF}: NewColor(HueBlue, LightNormal),
	{0x00, 0x00, 0xC0, 0xFF}: NewColor(HueBlue, LightDark),

	{0xFF, 0xC0, 0xFF, 0xFF}: NewColor(HueMagenta, LightLight),
	{0xFF, 0x00, 0xFF, 0xFF}: NewColor(HueMagenta, LightNormal),
	{0xC0, 0x00, 0xC0, 0xFF}: NewColor(HueMagenta, LightDark),

	{0xFF, 0xFF, 0xFF, 0xFF}: White,
	{0x00, 0x00, 0x00, 0xFF}: Black,
}

var reversePalette map[Color]color.RGBA

func init() {
	reversePalette = make(map[Color]color.RGBA, len(palette))
	for rgba, c := range palette {
		reversePalette[c] = rgba
	}
}

// FromRGBA maps a pixel color to its Piet Color, defaulting to White
// for anything outside the canonical 20-color palette.
func FromRGBA(c color.Color) Color {
	r, g, b, a := c.RGBA()
	key := color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	if pc, ok := palette[key]; ok {
		return pc
	}
	return White
}

// ToRGBA returns the canonical RGB reference value for c. Panics if c
// is not one of the 20 palette colors (a programmer error: every
// Color this package hands out comes from NewColor, White, or Black).
func ToRGBA(c Color) color.RGBA {
	rgba, ok := reversePalette[c]
	if !ok {
		panic("piet: color outside the 20-color palette: " + c.String())
	}
	return rgba
}
