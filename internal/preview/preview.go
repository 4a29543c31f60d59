package preview

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/term"
)

// ToANSI converts an image to ANSI art of width x height character cells
func ToANSI(img image.Image, width, height int, trueColor bool) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid preview size %dx%d", width, height)
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Get the four pixels that will make up one character cell
			c1 := colorAt(resized, x, y)
			c2 := colorAt(resized, x+1, y)
			c3 := colorAt(resized, x, y+1)
			c4 := colorAt(resized, x+1, y+1)

			col1, _ := colorful.MakeColor(c1)
			col2, _ := colorful.MakeColor(c2)
			col3, _ := colorful.MakeColor(c3)
			col4, _ := colorful.MakeColor(c4)

			// Top pixels as foreground, bottom pixels as background
			fg := toRGBA(averageColor(col1, col2))
			bg := toRGBA(averageColor(col3, col4))

			buffer.WriteString(cell('▀', fg, bg, trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String(), nil
}

// SizeFor returns a preview height keeping the image aspect ratio for the
// given width. Terminal cells are about twice as tall as they are wide, so
// a row of cells covers half the height a column covers in width.
func SizeFor(img image.Image, width int) (int, int) {
	b := img.Bounds()
	if b.Dx() == 0 || width <= 0 {
		return width, 0
	}
	height := width * b.Dy() / (2 * b.Dx())
	if height < 1 {
		height = 1
	}
	return width, height
}

// TerminalWidth returns the width of stdout, or fallback when stdout is
// not a terminal
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// colorAt returns the color at a specific coordinate
func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255} // black outside the image
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// cell formats a character with ANSI color codes
func cell(char rune, fg, bg color.RGBA, trueColor bool) string {
	if trueColor {
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
			fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
	}

	// Without true colour fall back to a brightness ramp
	ramp := []rune(" .:-=+*#%@")
	l, _, _ := colorful.Color{R: float64(fg.R) / 255, G: float64(fg.G) / 255, B: float64(fg.B) / 255}.Lab()
	idx := int(l * float64(len(ramp)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ramp) {
		idx = len(ramp) - 1
	}
	return string(ramp[idx])
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// SideBySide lays text lines to the right of art, padding each art line
// to the widest one plus spacing
func SideBySide(art string, info []string, spacing int) string {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := len([]rune(StripANSI(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}
	infoStartCol := maxArtWidth + spacing

	var b strings.Builder
	lines := max(len(artLines), len(info))
	for i := 0; i < lines; i++ {
		b.WriteString("  ")
		if i < len(artLines) {
			b.WriteString(artLines[i])
			visible := len([]rune(StripANSI(artLines[i])))
			b.WriteString(strings.Repeat(" ", infoStartCol-visible))
		} else {
			b.WriteString(strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			b.WriteString(info[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}
