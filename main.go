// Package main 桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose           启用详细日志
//	--config <path>     使用外部视觉配置文件（默认使用内嵌的 data/visual.yaml）
//
// Controls:
//
//	鼠标点击 / 触摸     在点击位置生成火花
//	T                   切换明暗主题
//	F11                 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/aurora/pkg/app"
	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/embedded"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Path to a visual config YAML (default: embedded data/visual.yaml)")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	page, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer page.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(page); err != nil {
		log.Fatal(err)
	}
}
