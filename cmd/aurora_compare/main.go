// Package main 极光渲染对比工具
//
// 左半边为 Kage 着色器实时渲染，右半边为 CPU 参考实现（aurora.ShadePixel）按相同时间渲染，
// 用于检查着色器与参考算法是否一致。
//
// Usage:
//
//	go run cmd/aurora_compare/main.go [flags]
//
// Flags:
//
//	--config <path>   视觉配置文件（默认 data/visual.yaml）
//	--scale <n>       CPU 侧降采样倍数（默认 4，越大越快）
//	--verbose         启用详细日志
//
// Controls:
//
//	Space             暂停 / 继续
//	Q/Escape          退出
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/aurora/internal/noise"
	"github.com/decker502/aurora/pkg/aurora"
	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/frame"
	"github.com/decker502/aurora/pkg/page"
)

const (
	screenWidth  = 1280
	screenHeight = 480
	gpuElementID = "gpu"
)

var (
	configFlag  = flag.String("config", config.DefaultVisualConfigPath, "Path to visual config YAML")
	scaleFlag   = flag.Int("scale", 4, "Downsampling factor for the CPU reference")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// compareGame 并排显示两种渲染结果
type compareGame struct {
	window    *page.Window
	document  *page.Document
	scheduler *frame.Scheduler
	clock     *frame.ManualClock
	renderer  *aurora.Renderer

	field     *noise.Field
	strip     *aurora.NoiseStrip
	reference *ebiten.Image
	scale     int
	paused    bool
}

func newCompareGame(cfg *config.VisualConfig, scale int) (*compareGame, error) {
	g := &compareGame{
		window:    page.NewWindow(),
		scheduler: frame.NewScheduler(),
		clock:     frame.NewManualClock(0),
		strip:     aurora.NewNoiseStrip(0),
		scale:     scale,
	}
	g.document = page.NewDocument(g.window)

	if _, err := g.document.AddElement(gpuElementID, page.Box{Width: 0.5, Height: 1}); err != nil {
		return nil, err
	}

	field, err := noise.NewField(noise.Params{
		Seed:    cfg.Aurora.Noise.Seed,
		Alpha:   cfg.Aurora.Noise.Alpha,
		Beta:    cfg.Aurora.Noise.Beta,
		Octaves: cfg.Aurora.Noise.Octaves,
		Gain:    cfg.Aurora.Noise.Gain,
	})
	if err != nil {
		return nil, fmt.Errorf("噪声配置无效: %w", err)
	}
	g.field = field

	g.renderer, err = aurora.Init(g.document, gpuElementID, cfg.Aurora, g.scheduler, aurora.NewGPUSurface)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (g *compareGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.paused {
			g.renderer.Stop()
		} else {
			g.renderer.Start()
		}
	}

	// 固定步长推进，暂停时两侧停在同一时刻
	if !g.paused {
		g.clock.Advance(time.Second / ebiten.DefaultTPS)
	}
	return nil
}

// renderReference 以 GPU 侧的当前时间渲染降采样的 CPU 参考图
func (g *compareGame) renderReference() {
	u := g.renderer.Uniforms()
	if !u.HasResolution() {
		return
	}

	w := int(u.Resolution[0]) / g.scale
	h := int(u.Resolution[1]) / g.scale
	if w == 0 || h == 0 {
		return
	}
	u.Resolution = [2]float64{float64(w), float64(h)}

	g.strip.Resize(w)
	g.strip.Fill(g.field, u.Time)
	img := aurora.RenderReference(u, g.strip)

	if g.reference != nil {
		b := g.reference.Bounds()
		if b.Dx() != w || b.Dy() != h {
			g.reference.Deallocate()
			g.reference = nil
		}
	}
	if g.reference == nil {
		g.reference = ebiten.NewImage(w, h)
	}
	g.reference.WritePixels(img.Pix)
}

func (g *compareGame) Draw(screen *ebiten.Image) {
	g.scheduler.Dispatch(g.clock.Now())
	g.document.Draw(screen)

	if !g.paused || g.reference == nil {
		g.renderReference()
	}
	if g.reference != nil {
		size := g.window.InnerSize()
		b := g.reference.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(size.Width/2)/float64(b.Dx()), float64(size.Height)/float64(b.Dy()))
		op.GeoM.Translate(float64(size.Width/2), 0)
		screen.DrawImage(g.reference, op)
	}

	status := fmt.Sprintf("GPU | CPU 1/%d  t=%.3f", g.scale, g.renderer.Uniforms().Time)
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *compareGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.window.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}
	if *scaleFlag < 1 {
		*scaleFlag = 1
	}

	cfg, err := config.LoadVisualConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	g, err := newCompareGame(cfg, *scaleFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Aurora GPU / CPU Comparison")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
