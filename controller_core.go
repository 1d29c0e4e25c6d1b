package neongrid

import (
	_ "embed"
	"fmt"
	"image"
	"math"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/neongrid/frame"
	"github.com/edwinsyarief/neongrid/surface"
	"github.com/edwinsyarief/neongrid/tracker"
	"github.com/edwinsyarief/neongrid/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "github.com/silbinarywolf/preferdiscretegpu"
)

//go:embed shaders/surface.kage
var surfaceShaderSrc []byte

var pkgController controller

func init() {
	pkgController.cfg = DefaultConfig()
	pkgController.palette = surface.DefaultPalette
	pkgController.camera = newViewCamera(pkgController.cfg.Camera)
	pkgController.registerDefaultHandlers()
}

type controller struct {
	// core state
	cfg                   Config
	hiResWidth            int
	hiResHeight           int
	prevHiResCanvasWidth  int // used to update layoutHasChanged even on unexpected cases *
	prevHiResCanvasHeight int // used to update layoutHasChanged even on unexpected cases
	// * https://github.com/hajimehoshi/ebiten/issues/2978
	logicWidth       int
	canvasScale      float64
	clampWarnedAt    float64
	layoutHasChanged bool
	inDraw           bool
	now              func() time.Time

	// surface
	driver         *frame.Driver
	pointerTracker tracker.Tracker
	grid           *surface.Grid
	palette        surface.Palette
	camera         viewCamera
	lastParams     surface.Params
	paletteDirty   bool

	// events
	events       eventTable
	cursorX      int
	cursorY      int
	cursorKnown  bool
	cursorPlaced bool
	hovering     bool
	hoverRegions []image.Rectangle

	// presentation
	reveal      fadeChannel
	overlayOpen bool

	// shaders
	shader            *ebiten.Shader
	shaderOpts        ebiten.DrawTrianglesShaderOptions
	shaderVertices    []ebiten.Vertex
	shaderVertIndices []uint16

	// debug
	debugInfo  []string
	debugStats bool
}

// --- ebiten.Game implementation ---

func (self *controller) Update() error {
	self.pollInput()

	params := self.driver.Tick(self.now())
	self.reveal.Update()
	self.lastParams = params
	self.grid.Displace(params)

	if self.debugStats {
		p := self.driver.Pointer().Smoothed
		self.debugDrawf("tick %d  t=%.2fs  pointer=(%.3f, %.3f)  tps=%.1f",
			self.driver.Ticks(), params.Time, p.X, p.Y, ebiten.ActualTPS())
	}
	self.layoutHasChanged = false
	return nil
}

func (self *controller) Draw(hiResCanvas *ebiten.Image) {
	self.inDraw = true

	hiResBounds := hiResCanvas.Bounds()
	hiResWidth, hiResHeight := hiResBounds.Dx(), hiResBounds.Dy()
	if hiResWidth != self.prevHiResCanvasWidth || hiResHeight != self.prevHiResCanvasHeight {
		self.prevHiResCanvasWidth = hiResWidth
		self.prevHiResCanvasHeight = hiResHeight
		self.layoutHasChanged = true
	}

	hiResCanvas.Fill(utils.ToColor(self.palette.Base))
	self.drawSurface(hiResCanvas)
	self.drawHero(hiResCanvas)
	if self.overlayOpen {
		self.drawOverlay(hiResCanvas)
	}
	self.drawCursor(hiResCanvas)
	self.debugDrawAll(hiResCanvas)
	self.inDraw = false
}

func (self *controller) Layout(logicWinWidth, logicWinHeight int) (int, int) {
	return self.applyLayout(logicWinWidth, logicWinHeight, ebiten.Monitor().DeviceScaleFactor())
}

// Size of the high resolution canvas for a logical window size. The
// device scale is capped at maxScale.
func canvasSize(logicWidth, logicHeight int, deviceScale, maxScale float64) (int, int) {
	scale := min(deviceScale, maxScale)
	return int(math.Ceil(float64(logicWidth) * scale)), int(math.Ceil(float64(logicHeight) * scale))
}

func (self *controller) applyLayout(logicWinWidth, logicWinHeight int, deviceScale float64) (int, int) {
	maxScale := self.cfg.Render.MaxDeviceScale
	if deviceScale > maxScale && deviceScale != self.clampWarnedAt {
		self.clampWarnedAt = deviceScale
		Logger().Warn("device scale clamped", "device", deviceScale, "max", maxScale)
	}
	self.canvasScale = min(deviceScale, maxScale)
	if logicWinWidth != self.logicWidth {
		self.logicWidth = logicWinWidth
		self.driver.SetDecorations(logicWinWidth > decorationMinWidth)
	}

	hiResWidth, hiResHeight := canvasSize(logicWinWidth, logicWinHeight, deviceScale, maxScale)
	if hiResWidth != self.hiResWidth || hiResHeight != self.hiResHeight {
		self.layoutHasChanged = true
		self.hiResWidth, self.hiResHeight = hiResWidth, hiResHeight
		Logger().Debug("layout changed",
			"window", fmt.Sprintf("%dx%d", logicWinWidth, logicWinHeight),
			"canvas", fmt.Sprintf("%dx%d", hiResWidth, hiResHeight),
			"scale", self.canvasScale)
		if !self.cursorPlaced {
			self.cursorPlaced = true
			self.driver.Cursor().Reset(ebimath.V(float64(hiResWidth)/2, float64(hiResHeight)/2))
		}
		self.events.dispatch(Event{Kind: EventResize, X: float64(hiResWidth), Y: float64(hiResHeight)})
	}
	return self.hiResWidth, self.hiResHeight
}

// --- run ---

func (self *controller) run(cfg Config) error {
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := self.setup(cfg); err != nil {
		return err
	}

	shader, err := ebiten.NewShader(surfaceShaderSrc)
	if err != nil {
		return fmt.Errorf("compile surface shader: %w", err)
	}
	self.shader = shader
	Logger().Info("surface shader compiled")

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(self)
}

// Prepares everything that doesn't need a graphics context.
func (self *controller) setup(cfg Config) error {
	palette, err := cfg.SurfacePalette()
	if err != nil {
		return err
	}
	grid, err := surface.NewGrid(cfg.Grid.SegmentsX, cfg.Grid.SegmentsZ, cfg.Grid.Width, cfg.Grid.Depth)
	if err != nil {
		return fmt.Errorf("build surface grid: %w", err)
	}

	self.cfg = cfg
	self.palette = palette
	self.paletteDirty = true
	self.grid = grid
	self.camera = newViewCamera(cfg.Camera)
	if self.now == nil {
		self.now = time.Now
	}
	pointerTracker := self.pointerTracker
	if pointerTracker == nil {
		pointerTracker = cfg.pointerTracker()
	}
	self.driver = frame.NewDriver(frame.Options{
		Tracker:      pointerTracker,
		PointerScale: cfg.Pointer.WorldScale,
		Start:        self.now(),
	})
	self.canvasScale = 1
	self.reveal = fadeChannel{}
	self.reveal.Trigger(cfg.Reveal.FadeInTicks, maxUint32, ZeroTicks)
	self.shaderVertices = make([]ebiten.Vertex, len(grid.Vertices()))
	self.shaderVertIndices = grid.Indices()

	segX, segZ := grid.Segments()
	Logger().Info("surface grid built",
		"segments", fmt.Sprintf("%dx%d", segX, segZ),
		"vertices", len(grid.Vertices()),
		"triangles", len(grid.Indices())/3)
	return nil
}

func (self *controller) surfaceSetPalette(palette surface.Palette) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "set palette"))
	}
	self.palette = palette
	self.paletteDirty = true
}

// --- overlay ---

var (
	overlayPanelColor  = utils.RGBA(8, 2, 18, 220)
	overlayBorderColor = utils.RGB(255, 0, 153)
)

func (self *controller) setOverlayOpen(open bool) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "toggle overlay"))
	}
	if open != self.overlayOpen {
		Logger().Debug("overlay toggled", "open", open)
	}
	self.overlayOpen = open
}

// --- debug ---

func (self *controller) debugDrawf(format string, args ...any) {
	self.debugInfo = append(self.debugInfo, fmt.Sprintf(format, args...))
}

func (self *controller) debugPrintfe(everyNTicks uint64, format string, args ...any) {
	if everyNTicks == 0 || self.driver.Ticks()%everyNTicks == 0 {
		fmt.Printf(format, args...)
	}
}

func (self *controller) debugPrintfk(key ebiten.Key, format string, args ...any) {
	if ebiten.IsKeyPressed(key) {
		fmt.Printf(format, args...)
	}
}

func (self *controller) debugDrawAll(target *ebiten.Image) {
	for i, line := range self.debugInfo {
		ebitenutil.DebugPrintAt(target, line, 4, 4+i*16)
	}
	self.debugInfo = self.debugInfo[:0]
}
