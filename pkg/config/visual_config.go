package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/aurora/pkg/page"
	"github.com/decker502/aurora/pkg/utils"
)

// DefaultVisualConfigPath 内嵌默认配置文件路径
const DefaultVisualConfigPath = "data/visual.yaml"

// VisualConfig 视觉层配置文件的顶层结构
//
// Structure:
//
//	aurora:
//	  color_stops: ["#FF3232", "#FF94B4", "#3A29FF"]
//	  amplitude: 1.0
//	  blend: 0.5
//	  speed: 0.5
//	  noise: {seed: 1979, alpha: 2, beta: 2, octaves: 3, gain: 1.4}
//	spark:
//	  count: 8
//	  size: 10
//	  radius: 15
//	  duration: 400ms
//	  line_width: 2
//	theme: {...}
//	layout: {...}
type VisualConfig struct {
	Aurora AuroraConfig `yaml:"aurora"`
	Spark  SparkConfig  `yaml:"spark"`
	Theme  ThemeConfig  `yaml:"theme"`
	Layout LayoutConfig `yaml:"layout"`
}

// AuroraConfig 极光背景参数
type AuroraConfig struct {
	// ColorStops 三个十六进制颜色，依次位于 0、0.5、1
	ColorStops []string `yaml:"color_stops"`

	// Amplitude 噪声形变幅度
	Amplitude float64 `yaml:"amplitude"`

	// Blend 透明度过渡窗口宽度
	Blend float64 `yaml:"blend"`

	// Speed 时间流速
	Speed float64 `yaml:"speed"`

	// Noise 噪声场参数
	Noise NoiseConfig `yaml:"noise"`
}

// NoiseConfig 噪声场参数
type NoiseConfig struct {
	Seed    int64   `yaml:"seed"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int     `yaml:"octaves"`
	Gain    float64 `yaml:"gain"`
}

// SparkConfig 点击火花参数
type SparkConfig struct {
	// Count 每次点击生成的火花数量
	Count int `yaml:"count"`

	// Size 火花线段初始长度（像素）
	Size float64 `yaml:"size"`

	// Radius 火花飞散的最大距离（像素）
	Radius float64 `yaml:"radius"`

	// Duration 单个火花的生命周期（如 "400ms"）
	Duration time.Duration `yaml:"duration"`

	// LineWidth 线宽（像素）
	LineWidth float64 `yaml:"line_width"`
}

// ThemeConfig 主题配色
type ThemeConfig struct {
	// Initial 初始主题："dark" 或 "light"
	Initial string `yaml:"initial"`

	DarkSparkColor  string `yaml:"dark_spark_color"`
	LightSparkColor string `yaml:"light_spark_color"`
	DarkBackground  string `yaml:"dark_background"`
	LightBackground string `yaml:"light_background"`
}

// LayoutConfig 挂载点布局
type LayoutConfig struct {
	AuroraContainer ElementConfig `yaml:"aurora_container"`
	SparkCanvas     ElementConfig `yaml:"spark_canvas"`
}

// ElementConfig 单个挂载点
// ID 为空表示页面上不存在该挂载点，对应组件静默跳过初始化
type ElementConfig struct {
	ID  string   `yaml:"id"`
	Box page.Box `yaml:"box"`
}

// DefaultVisualConfig 返回内置默认配置
func DefaultVisualConfig() *VisualConfig {
	return &VisualConfig{
		Aurora: AuroraConfig{
			ColorStops: []string{"#FF3232", "#FF94B4", "#3A29FF"},
			Amplitude:  1.0,
			Blend:      0.5,
			Speed:      0.5,
			Noise: NoiseConfig{
				Seed:    1979,
				Alpha:   2,
				Beta:    2,
				Octaves: 3,
				Gain:    1.4,
			},
		},
		Spark: SparkConfig{
			Count:     8,
			Size:      10,
			Radius:    15,
			Duration:  400 * time.Millisecond,
			LineWidth: 2,
		},
		Theme: ThemeConfig{
			Initial:         "dark",
			DarkSparkColor:  "#fff",
			LightSparkColor: "#3A29FF",
			DarkBackground:  "#000",
			LightBackground: "#fff",
		},
		Layout: LayoutConfig{
			AuroraContainer: ElementConfig{
				ID:  AuroraContainerID,
				Box: page.Box{X: 0, Y: 0, Width: 1, Height: AuroraContainerHeightRatio},
			},
			SparkCanvas: ElementConfig{
				ID:  SparkCanvasID,
				Box: page.Box{X: 0, Y: 0, Width: 1, Height: 1},
			},
		},
	}
}

// LoadVisualConfig 从 YAML 文件加载配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *VisualConfig: 合并默认值并通过校验的配置
//   - error: 读取、解析或校验错误
func LoadVisualConfig(path string) (*VisualConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}

	cfg, err := ParseVisualConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s: %w", path, err)
	}
	return cfg, nil
}

// ParseVisualConfig 解析 YAML 内容
// 文件中未出现的字段保留默认值
func ParseVisualConfig(data []byte) (*VisualConfig, error) {
	cfg := DefaultVisualConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("无法解析 YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("验证失败: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的完整性和正确性
func (c *VisualConfig) Validate() error {
	// 极光
	if _, err := utils.NewColorRampFromHex(c.Aurora.ColorStops); err != nil {
		return fmt.Errorf("aurora.color_stops: %w", err)
	}
	if c.Aurora.Amplitude < 0 {
		return fmt.Errorf("aurora.amplitude 不能为负: %v", c.Aurora.Amplitude)
	}
	// 着色器中 smoothstep 的窗口宽度为 0 时结果未定义
	if c.Aurora.Blend <= 0 {
		return fmt.Errorf("aurora.blend 必须为正数: %v", c.Aurora.Blend)
	}
	if c.Aurora.Speed < 0 {
		return fmt.Errorf("aurora.speed 不能为负: %v", c.Aurora.Speed)
	}
	if c.Aurora.Noise.Octaves <= 0 {
		return fmt.Errorf("aurora.noise.octaves 必须为正数: %d", c.Aurora.Noise.Octaves)
	}
	if c.Aurora.Noise.Alpha <= 0 || c.Aurora.Noise.Beta <= 0 || c.Aurora.Noise.Gain <= 0 {
		return fmt.Errorf("aurora.noise alpha/beta/gain 必须为正数: %+v", c.Aurora.Noise)
	}

	// 火花
	if c.Spark.Count <= 0 {
		return fmt.Errorf("spark.count 必须为正数: %d", c.Spark.Count)
	}
	if c.Spark.Size <= 0 || c.Spark.Radius < 0 {
		return fmt.Errorf("spark.size/radius 无效: size=%v radius=%v", c.Spark.Size, c.Spark.Radius)
	}
	if c.Spark.Duration <= 0 {
		return fmt.Errorf("spark.duration 必须为正数: %v", c.Spark.Duration)
	}
	if c.Spark.LineWidth <= 0 {
		return fmt.Errorf("spark.line_width 必须为正数: %v", c.Spark.LineWidth)
	}

	// 主题
	// 与 theme.ParseScheme 一致：忽略大小写和首尾空白
	switch strings.ToLower(strings.TrimSpace(c.Theme.Initial)) {
	case "dark", "light":
	default:
		return fmt.Errorf("theme.initial 必须为 dark 或 light: %q", c.Theme.Initial)
	}
	colors := map[string]string{
		"theme.dark_spark_color":  c.Theme.DarkSparkColor,
		"theme.light_spark_color": c.Theme.LightSparkColor,
		"theme.dark_background":   c.Theme.DarkBackground,
		"theme.light_background":  c.Theme.LightBackground,
	}
	for field, value := range colors {
		if _, err := utils.ParseColor(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	// 布局
	for name, el := range map[string]ElementConfig{
		"layout.aurora_container": c.Layout.AuroraContainer,
		"layout.spark_canvas":     c.Layout.SparkCanvas,
	} {
		if el.ID == "" {
			continue
		}
		if err := el.Box.Validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.Layout.AuroraContainer.ID != "" && c.Layout.AuroraContainer.ID == c.Layout.SparkCanvas.ID {
		return fmt.Errorf("layout: 两个挂载点的 ID 不能相同: %s", c.Layout.AuroraContainer.ID)
	}

	return nil
}
