// Package app 提供页面应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/aurora/pkg/aurora"
	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/embedded"
	"github.com/decker502/aurora/pkg/frame"
	"github.com/decker502/aurora/pkg/page"
	"github.com/decker502/aurora/pkg/systems"
	"github.com/decker502/aurora/pkg/theme"
	"github.com/decker502/aurora/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 视觉配置文件路径，为空则使用内嵌的 data/visual.yaml
	ConfigPath string

	// 以下字段为空时使用默认实现，测试中可替换
	Clock      frame.Clock
	NewSurface aurora.SurfaceFactory
	NewCanvas  systems.CanvasFactory
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	visual    *config.VisualConfig
	window    *page.Window
	document  *page.Document
	scheduler *frame.Scheduler
	clock     frame.Clock

	aurora  *aurora.Renderer
	sparks  *systems.SparkSystem
	themes  *theme.Switch
	palette *theme.Palette

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化页面应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init()。
// 极光初始化失败只记录日志，页面其余部分照常运行。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	visual, err := loadVisualConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	if cfg.Clock == nil {
		cfg.Clock = frame.NewSystemClock()
	}
	if cfg.NewSurface == nil {
		cfg.NewSurface = aurora.NewGPUSurface
	}
	if cfg.NewCanvas == nil {
		cfg.NewCanvas = systems.NewEbitenCanvas
	}

	a := &App{
		visual:    visual,
		window:    page.NewWindow(),
		scheduler: frame.NewScheduler(),
		clock:     cfg.Clock,
	}
	a.document = page.NewDocument(a.window)

	// 挂载点：火花画布在极光之上
	for _, el := range []config.ElementConfig{visual.Layout.AuroraContainer, visual.Layout.SparkCanvas} {
		if el.ID == "" {
			continue
		}
		if _, err := a.document.AddElement(el.ID, el.Box); err != nil {
			return nil, fmt.Errorf("页面布局无效: %w", err)
		}
	}

	// 主题
	initial, err := theme.ParseScheme(visual.Theme.Initial)
	if err != nil {
		return nil, fmt.Errorf("主题配置无效: %w", err)
	}
	a.palette, err = theme.NewPalette(visual.Theme)
	if err != nil {
		return nil, fmt.Errorf("主题配置无效: %w", err)
	}
	a.themes = theme.NewSwitch(initial)

	// 极光背景
	a.aurora, err = aurora.Init(a.document, visual.Layout.AuroraContainer.ID, visual.Aurora, a.scheduler, cfg.NewSurface)
	if err != nil {
		log.Printf("[App] 极光背景初始化失败，页面继续运行: %v", err)
		a.aurora = nil
	}

	// 点击火花
	a.sparks, err = systems.InitSparkSystem(a.document, visual.Layout.SparkCanvas.ID, visual.Spark,
		a.palette.SparkColor(initial), a.scheduler, a.clock, cfg.NewCanvas)
	if err != nil {
		return nil, fmt.Errorf("点击火花初始化失败: %w", err)
	}

	if a.sparks != nil {
		a.themes.Subscribe(func(s theme.Scheme) {
			if err := a.sparks.SetStrokeColor(a.palette.SparkColor(s)); err != nil {
				log.Printf("[App] %v", err)
			}
		})
	}

	log.Printf("[App] 初始化完成，主题 %s", initial)
	return a, nil
}

// loadVisualConfig 读取视觉配置
// 优先使用命令行指定的文件，其次是内嵌文件，都没有时使用内置默认值
func loadVisualConfig(path string) (*config.VisualConfig, error) {
	if path != "" {
		visual, err := config.LoadVisualConfig(path)
		if err != nil {
			return nil, fmt.Errorf("视觉配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载视觉配置: %s", path)
		return visual, nil
	}

	if !embedded.Exists(config.DefaultVisualConfigPath) {
		log.Printf("[Config] 未找到内嵌的 %s，使用默认视觉配置", config.DefaultVisualConfigPath)
		return config.DefaultVisualConfig(), nil
	}

	data, err := embedded.ReadFile(config.DefaultVisualConfigPath)
	if err != nil {
		return nil, fmt.Errorf("视觉配置加载失败: %w", err)
	}
	visual, err := config.ParseVisualConfig(data)
	if err != nil {
		return nil, fmt.Errorf("内嵌视觉配置 %s: %w", config.DefaultVisualConfigPath, err)
	}
	log.Printf("[Config] 加载视觉配置: %s (embedded)", config.DefaultVisualConfigPath)
	return visual, nil
}

// Update 处理输入
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// T 切换明暗主题
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.themes.Toggle()
	}

	// 鼠标点击或触摸
	if pressed, x, y := utils.IsJustTouchedOrClicked(); pressed {
		a.window.DispatchPointerDown(float64(x), float64(y))
	}

	return nil
}

// Draw 执行本帧的动画回调并合成页面
func (a *App) Draw(screen *ebiten.Image) {
	a.advanceFrame()
	screen.Fill(a.palette.Background(a.themes.Scheme()))
	a.document.Draw(screen)
}

// advanceFrame 派发一帧动画回调
func (a *App) advanceFrame() {
	a.scheduler.Dispatch(a.clock.Now())
}

// Layout 使用窗口实际尺寸作为逻辑尺寸
// 尺寸变化（以及第一次布局时的 load）通过 page.Window 通知各组件
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.window.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 停止所有动画循环并释放 GPU 资源
func (a *App) Close() {
	if a.aurora != nil {
		a.aurora.Close()
	}
	if a.sparks != nil {
		a.sparks.Stop()
	}
	log.Printf("[App] closed")
}

