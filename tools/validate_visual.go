package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/utils"
)

func main() {
	path := flag.String("config", config.DefaultVisualConfigPath, "视觉配置文件路径")
	flag.Parse()

	cfg, err := config.LoadVisualConfig(*path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确: %s\n", *path)

	ramp, err := utils.NewColorRampFromHex(cfg.Aurora.ColorStops)
	if err != nil {
		fmt.Printf("❌ 渐变无效: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 极光渐变:")
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf(" %.2f=%s", x, ramp.Evaluate(x).Hex())
	}
	fmt.Println()
	fmt.Printf("✅ 极光参数: amplitude=%.2f blend=%.2f speed=%.2f octaves=%d\n",
		cfg.Aurora.Amplitude, cfg.Aurora.Blend, cfg.Aurora.Speed, cfg.Aurora.Noise.Octaves)
	fmt.Printf("✅ 火花: %d 个/次, 半径 %.0f, 长度 %.0f, 生命周期 %v\n",
		cfg.Spark.Count, cfg.Spark.Radius, cfg.Spark.Size, cfg.Spark.Duration)
	fmt.Printf("✅ 主题: 初始 %s, 火花 %s / %s\n",
		cfg.Theme.Initial, cfg.Theme.DarkSparkColor, cfg.Theme.LightSparkColor)

	elements := []struct {
		name string
		el   config.ElementConfig
	}{
		{"极光容器", cfg.Layout.AuroraContainer},
		{"火花画布", cfg.Layout.SparkCanvas},
	}
	for _, e := range elements {
		if e.el.ID == "" {
			fmt.Printf("⚠️  %s 未配置，对应效果不会显示\n", e.name)
			continue
		}
		fmt.Printf("✅ %s %q: %+v\n", e.name, e.el.ID, e.el.Box)
	}
}
