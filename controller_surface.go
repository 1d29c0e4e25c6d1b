package neongrid

import (
	"fmt"
	"image"

	"github.com/edwinsyarief/neongrid/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Projects the displaced grid into the reusable vertex buffer.
func (self *controller) projectSurface(width, height int) {
	for i, vert := range self.grid.Vertices() {
		pos, _ := self.camera.project(vert.X, vert.Elevation, vert.Z, width, height)
		self.shaderVertices[i] = ebiten.Vertex{
			DstX:    float32(pos.X),
			DstY:    float32(pos.Y),
			ColorR:  1,
			ColorG:  1,
			ColorB:  1,
			ColorA:  1,
			Custom0: float32(vert.U),
			Custom1: float32(vert.V),
			Custom2: float32(vert.Elevation),
		}
	}
}

func (self *controller) drawSurface(target *ebiten.Image) {
	bounds := target.Bounds()
	self.projectSurface(bounds.Dx(), bounds.Dy())

	if self.shaderOpts.Uniforms == nil {
		self.shaderOpts.Uniforms = make(map[string]any, 6)
	}
	if self.paletteDirty {
		self.shaderOpts.Uniforms["Base"] = utils.Uniform3(self.palette.Base)
		self.shaderOpts.Uniforms["Accent"] = utils.Uniform3(self.palette.Accent)
		self.shaderOpts.Uniforms["Neon"] = utils.Uniform3(self.palette.Neon)
		self.shaderOpts.Uniforms["Horizon"] = utils.Uniform3(self.palette.Horizon)
		self.paletteDirty = false
	}
	self.shaderOpts.Uniforms["Time"] = float32(self.lastParams.Time)
	self.shaderOpts.Uniforms["Reveal"] = float32(self.reveal.Activity())

	target.DrawTrianglesShader(
		self.shaderVertices, self.shaderVertIndices,
		self.shader, &self.shaderOpts,
	)
}

// Canvas rectangle of the centered overlay panel.
func (self *controller) overlayPanel(width, height int) image.Rectangle {
	panelW, panelH := min(width*3/5, 420), 120
	x, y := (width-panelW)/2, (height-panelH)/2
	return image.Rect(x, y, x+panelW, y+panelH)
}

func (self *controller) drawOverlay(target *ebiten.Image) {
	bounds := target.Bounds()
	panel := self.overlayPanel(bounds.Dx(), bounds.Dy())
	x, y := float32(panel.Min.X), float32(panel.Min.Y)
	panelW, panelH := float32(panel.Dx()), float32(panel.Dy())

	vector.DrawFilledRect(target, x, y, panelW, panelH, overlayPanelColor, false)
	vector.StrokeRect(target, x, y, panelW, panelH, 2, overlayBorderColor, false)

	params := self.lastParams
	lines := []string{
		"neongrid",
		fmt.Sprintf("elapsed  %.1fs", params.Time),
		fmt.Sprintf("pointer  (%+.2f, %+.2f)", params.PointerX, params.PointerY),
		"",
		"press Esc to close",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(target, line, int(x)+12, int(y)+10+i*18)
	}
}
