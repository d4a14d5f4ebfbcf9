package types

// RGBPixel is one cell of a rendered frame.
type RGBPixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

var (
	Black = RGBPixel{R: 0, G: 0, B: 0}
	White = RGBPixel{R: 255, G: 255, B: 255}
)
