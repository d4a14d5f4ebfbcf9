// File: game/canvas.go
package game

import (
	"fmt"
	"math"

	"github.com/lguibr/pongai/types"
	"github.com/lguibr/pongai/utils"
)

// Canvas rasterizes snapshots into a coarse RGB grid, Scale world units per cell.
type Canvas struct {
	Width  int `json:"width"`  // Columns
	Height int `json:"height"` // Rows
	Scale  int `json:"scale"`
}

var (
	paddleColor     = types.RGBPixel{R: 0, G: 255, B: 0}
	ballColor       = types.RGBPixel{R: 255, G: 255, B: 255}
	centerLineColor = types.RGBPixel{R: 60, G: 60, B: 60}
	scoreColor      = types.RGBPixel{R: 255, G: 0, B: 0}
)

func NewCanvas(world utils.WorldConfig, scale int) *Canvas {
	if scale <= 0 {
		panic(fmt.Sprintf("NewCanvas: scale must be positive, got %d", scale))
	}
	return &Canvas{
		Width:  int(math.Ceil(world.Width / float64(scale))),
		Height: int(math.Ceil(world.Height / float64(scale))),
		Scale:  scale,
	}
}

// DrawSnapshotOnRGBGrid returns a grid indexed [row][column].
func (c *Canvas) DrawSnapshotOnRGBGrid(snapshot Snapshot) [][]types.RGBPixel {
	grid := make([][]types.RGBPixel, c.Height)
	for i := range grid {
		grid[i] = make([]types.RGBPixel, c.Width)
	}

	// Dashed center line
	mid := c.Width / 2
	for row := 0; row < c.Height; row += 2 {
		grid[row][mid] = centerLineColor
	}

	c.fillRect(grid, snapshot.Left.Rect, paddleColor)
	c.fillRect(grid, snapshot.Right.Rect, paddleColor)
	c.fillRect(grid, snapshot.Ball.Rect, ballColor)

	// One pip per point, growing from the center line outwards
	for i := 0; i < snapshot.LeftScore && mid-2-i*2 >= 0; i++ {
		grid[0][mid-2-i*2] = scoreColor
	}
	for i := 0; i < snapshot.RightScore && mid+2+i*2 < c.Width; i++ {
		grid[0][mid+2+i*2] = scoreColor
	}

	return grid
}

// fillRect paints every cell the rectangle touches, clipped to the grid.
func (c *Canvas) fillRect(grid [][]types.RGBPixel, rect Rect, color types.RGBPixel) {
	scale := float64(c.Scale)
	startCol := int(math.Floor(rect.Left() / scale))
	endCol := int(math.Ceil(rect.Right()/scale)) - 1
	startRow := int(math.Floor(rect.Top() / scale))
	endRow := int(math.Ceil(rect.Bottom()/scale)) - 1

	if startCol < 0 {
		startCol = 0
	}
	if startRow < 0 {
		startRow = 0
	}
	if endCol > c.Width-1 {
		endCol = c.Width - 1
	}
	if endRow > c.Height-1 {
		endRow = c.Height - 1
	}

	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			grid[row][col] = color
		}
	}
}
