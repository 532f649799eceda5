package core

import "image/color"

// Color identifies the color of a screen cell or a locked block.
// The zero value means "no color" and is never part of a piece palette.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPink
	ColorPurple
	ColorSkyBlue
	ColorWhite
	ColorGray
	ColorDarkGray
)

// ANSI returns the 256-color terminal code for c.
// ColorNone maps to the empty string (terminal default).
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "196"
	case ColorGreen:
		return "46"
	case ColorBlue:
		return "33"
	case ColorYellow:
		return "226"
	case ColorOrange:
		return "214"
	case ColorPink:
		return "211"
	case ColorPurple:
		return "141"
	case ColorSkyBlue:
		return "117"
	case ColorWhite:
		return "15"
	case ColorGray:
		return "245"
	case ColorDarkGray:
		return "238"
	default:
		return ""
	}
}

// RGBA returns the color used by pixel frontends.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{230, 41, 55, 255}
	case ColorGreen:
		return color.RGBA{0, 228, 48, 255}
	case ColorBlue:
		return color.RGBA{0, 121, 241, 255}
	case ColorYellow:
		return color.RGBA{253, 249, 0, 255}
	case ColorOrange:
		return color.RGBA{255, 161, 0, 255}
	case ColorPink:
		return color.RGBA{255, 109, 194, 255}
	case ColorPurple:
		return color.RGBA{200, 122, 255, 255}
	case ColorSkyBlue:
		return color.RGBA{102, 191, 255, 255}
	case ColorWhite:
		return color.RGBA{255, 255, 255, 255}
	case ColorGray:
		return color.RGBA{130, 130, 130, 255}
	case ColorDarkGray:
		return color.RGBA{80, 80, 80, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// String returns a lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	case ColorPurple:
		return "purple"
	case ColorSkyBlue:
		return "skyblue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorDarkGray:
		return "darkgray"
	default:
		return "unknown"
	}
}
