package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/types"
)

// ASCII characters for grayscale, from lighter to darker
const asciiChars = " .,:;i1tfLCG08@"

// Dividing factor to convert the gray range to an index into asciiChars
const grayFactor = 255.0 / float64(len(asciiChars)-1)

// Grayscale conversion factors for RGB components (luminosity method)
const (
	RFactor = 0.299
	GFactor = 0.587
	BFactor = 0.114
)

// rgbToGray converts an RGB pixel to grayscale using the luminosity method
func rgbToGray(pixel types.RGBPixel) uint8 {
	r := RFactor * float64(pixel.R)
	g := GFactor * float64(pixel.G)
	b := BFactor * float64(pixel.B)
	return uint8(math.Min(255, math.Round(r+g+b)))
}

// grayToAscii maps a grayscale value to an ASCII character.
// Any lit pixel gets at least the first visible character.
func grayToAscii(gray uint8) string {
	index := int(math.Ceil(float64(gray) / grayFactor))
	if index > len(asciiChars)-1 {
		index = len(asciiChars) - 1
	}
	return string(asciiChars[index])
}

// rgbToAnsi converts an RGB pixel to an ANSI escape code for that color
func rgbToAnsi(pixel types.RGBPixel) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", pixel.R, pixel.G, pixel.B)
}

// RenderToASCII converts a 2D slice of types.RGBPixels, indexed [row][column],
// to a colored ASCII string resolution columns wide. Each sample is printed
// twice to compensate for the height of terminal cells.
func RenderToASCII(pixels [][]types.RGBPixel, resolution int) string {
	height := len(pixels)
	if height == 0 || resolution <= 0 {
		return ""
	}
	width := len(pixels[0])
	if width == 0 {
		return ""
	}
	step := float64(width) / float64(resolution)
	var ascii strings.Builder
	for y := 0.0; y < float64(height); y += step {
		for x := 0.0; x < float64(width); x += step {
			i, j := int(math.Floor(x)), int(math.Floor(y))
			pixel := pixels[j][i]
			gray := rgbToGray(pixel)
			// Convert pixel to colored ASCII character
			ansi := rgbToAnsi(pixel)
			ascii.WriteString(ansi + grayToAscii(gray) + "\033[0m") // Reset color after each character
			ascii.WriteString(ansi + grayToAscii(gray) + "\033[0m")
		}
		ascii.WriteString("\n")
	}
	return ascii.String()
}

// Header is the score line printed above each frame.
func Header(snapshot game.Snapshot, episode int, agentEnabled bool) string {
	agent := "off"
	if agentEnabled {
		agent = "on"
	}
	return fmt.Sprintf("LEFT %d : %d RIGHT   episode %d   step %d   agent %s\n",
		snapshot.LeftScore, snapshot.RightScore, episode, snapshot.Steps, agent)
}

// Frame renders a StepUpdate as a header line followed by the ASCII field.
func Frame(canvas *game.Canvas, update game.StepUpdate, resolution int) string {
	pixels := canvas.DrawSnapshotOnRGBGrid(update.Snapshot)
	return Header(update.Snapshot, update.Episode, update.AgentEnabled) + RenderToASCII(pixels, resolution)
}
