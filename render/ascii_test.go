package render

import (
	"strings"
	"testing"

	"github.com/lguibr/pongai/game"
	"github.com/lguibr/pongai/types"
	"github.com/lguibr/pongai/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayToAscii(t *testing.T) {
	assert.Equal(t, " ", grayToAscii(0))
	assert.Equal(t, ".", grayToAscii(1))
	assert.Equal(t, "@", grayToAscii(255))
}

func TestRgbToGray(t *testing.T) {
	assert.Equal(t, uint8(0), rgbToGray(types.Black))
	assert.Equal(t, uint8(255), rgbToGray(types.White))
	assert.Equal(t, uint8(150), rgbToGray(types.RGBPixel{G: 255}))
}

func TestRenderToASCII(t *testing.T) {
	pixels := make([][]types.RGBPixel, 4)
	for i := range pixels {
		pixels[i] = make([]types.RGBPixel, 4)
	}
	pixels[1][2] = types.White

	out := RenderToASCII(pixels, 4)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, 2, strings.Count(lines[1], "@"))
	assert.NotContains(t, lines[0], "@")

	half := RenderToASCII(pixels, 2)
	assert.Len(t, strings.Split(strings.TrimSuffix(half, "\n"), "\n"), 2)

	assert.Equal(t, "", RenderToASCII(nil, 4))
	assert.Equal(t, "", RenderToASCII(pixels, 0))
}

func TestFrame(t *testing.T) {
	world := utils.DefaultWorld()
	sim := game.NewSimulation(world, utils.NewSequenceSource(1, 1))
	result := sim.Step(game.ActionStay, game.ActionStay)
	update := game.NewStepUpdate(4, result, true, sim.Snapshot())

	frame := Frame(game.NewCanvas(world, 10), update, 80)

	lines := strings.Split(strings.TrimSuffix(frame, "\n"), "\n")
	assert.Equal(t, "LEFT 0 : 0 RIGHT   episode 4   step 1   agent on", lines[0])
	assert.Len(t, lines, 61)
	assert.Contains(t, frame, "@")
}
