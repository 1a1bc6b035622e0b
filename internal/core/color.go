package core

// Color is a palette index for a screen cell. Frontends map it to a terminal
// or RGB color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorSand
	ColorSky
)

// RGB returns the 8-bit components used by graphical frontends.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xd0, 0x30, 0x30
	case ColorGreen:
		return 0x40, 0xb0, 0x40
	case ColorYellow:
		return 0xf0, 0xd0, 0x30
	case ColorBlue:
		return 0x30, 0x60, 0xd0
	case ColorMagenta:
		return 0xb0, 0x40, 0xb0
	case ColorCyan:
		return 0x40, 0xc0, 0xc0
	case ColorWhite:
		return 0xf0, 0xf0, 0xf0
	case ColorOrange:
		return 0xf0, 0x90, 0x20
	case ColorGray:
		return 0xae, 0xb1, 0xa6
	case ColorBrown:
		return 0x62, 0x58, 0x51
	case ColorSand:
		return 0xd0, 0xd0, 0xb5
	case ColorSky:
		return 0x7e, 0xa1, 0xdb
	default:
		return 0xc0, 0xc0, 0xc0
	}
}
