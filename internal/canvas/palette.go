package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// palette maps the colour names used by the card artwork to hex values.
var palette = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"green":       "#00ff00",
	"felt":        "#008000",
	"light green": "#90ee90",
	"dark green":  "#006400",
	"orange":      "#ffa500",
	"red":         "#ff0000",
	"crimson":     "#dc143c",
	"pink":        "#ffc0cb",
	"magenta":     "#ff00ff",
	"light blue":  "#add8e6",
	"yellow":      "#ffff00",
	"brown":       "#8b4513",
	"olive":       "#556b2f",
	"khaki":       "#f0e68c",
}

// ParseColor resolves a palette name or a "#rrggbb" hex string.
func ParseColor(name string) (color.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := palette[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return nil, fmt.Errorf("unknown colour %q: %v", name, err)
	}
	return c, nil
}

// Named returns the palette colour called name and panics for names
// missing from the palette. It is meant for the fixed artwork colours.
func Named(name string) color.Color {
	hex, ok := palette[name]
	if !ok {
		panic(fmt.Sprintf("canvas: colour %q not in palette", name))
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("canvas: bad palette colour %q: %v", name, err))
	}
	return c
}
