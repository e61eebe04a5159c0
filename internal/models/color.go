package models

import "strings"

// Color tags dice and scorecard rows
type Color string

const (
	// ColorRed is an ascending scorecard row
	ColorRed Color = "R"

	// ColorYellow is an ascending scorecard row
	ColorYellow Color = "Y"

	// ColorGreen is a descending scorecard row
	ColorGreen Color = "G"

	// ColorBlue is a descending scorecard row
	ColorBlue Color = "B"

	// ColorWhite is the neutral dice color; it owns no scorecard row
	ColorWhite Color = "W"
)

// ScoringColors lists the four row colors in scorecard order.
var ScoringColors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

func (c Color) String() string {
	return string(c)
}

// IsScoring reports whether the color owns a scorecard row.
func (c Color) IsScoring() bool {
	switch c {
	case ColorRed, ColorYellow, ColorGreen, ColorBlue:
		return true
	default:
		return false
	}
}

// ParseColor maps a letter code (case-insensitive) back to its color.
func ParseColor(s string) (Color, error) {
	switch Color(strings.ToUpper(s)) {
	case ColorRed:
		return ColorRed, nil
	case ColorYellow:
		return ColorYellow, nil
	case ColorGreen:
		return ColorGreen, nil
	case ColorBlue:
		return ColorBlue, nil
	case ColorWhite:
		return ColorWhite, nil
	default:
		return "", ErrUnknownColor
	}
}
