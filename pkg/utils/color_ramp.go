package utils

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorStop 颜色渐变中的一个关键点
// Color 为 [0,1]³ 的 RGB 三元组，Position 为 [0,1] 内的归一化位置
type ColorStop struct {
	Color    colorful.Color
	Position float64
}

// ColorRamp 三段式颜色渐变（分段线性插值）
//
// 不变量：恰好 3 个关键点，位置严格递增，首个为 0.0，末个为 1.0。
// 值类型，构造后不可变。
type ColorRamp [3]ColorStop

// DefaultStopPositions 三个关键点的默认归一化位置
var DefaultStopPositions = [3]float64{0.0, 0.5, 1.0}

// NewColorRamp 根据关键点列表创建渐变，并校验不变量
func NewColorRamp(stops []ColorStop) (ColorRamp, error) {
	var ramp ColorRamp
	if len(stops) != len(ramp) {
		return ramp, fmt.Errorf("颜色渐变需要 %d 个关键点，实际 %d 个", len(ramp), len(stops))
	}
	if stops[0].Position != 0 {
		return ramp, fmt.Errorf("首个关键点位置必须为 0，实际 %v", stops[0].Position)
	}
	if stops[len(stops)-1].Position != 1 {
		return ramp, fmt.Errorf("末个关键点位置必须为 1，实际 %v", stops[len(stops)-1].Position)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Position <= stops[i-1].Position {
			return ramp, fmt.Errorf("关键点位置必须严格递增: #%d=%v, #%d=%v",
				i-1, stops[i-1].Position, i, stops[i].Position)
		}
	}
	copy(ramp[:], stops)
	return ramp, nil
}

// NewColorRampFromHex 使用十六进制颜色在默认位置 {0, 0.5, 1} 上创建渐变
func NewColorRampFromHex(hexes []string) (ColorRamp, error) {
	if len(hexes) != len(DefaultStopPositions) {
		return ColorRamp{}, fmt.Errorf("颜色渐变需要 %d 个颜色，实际 %d 个", len(DefaultStopPositions), len(hexes))
	}
	stops := make([]ColorStop, len(hexes))
	for i, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return ColorRamp{}, fmt.Errorf("无法解析颜色 #%d %q: %w", i, hex, err)
		}
		stops[i] = ColorStop{Color: c, Position: DefaultStopPositions[i]}
	}
	return NewColorRamp(stops)
}

// Evaluate 计算位置 x 处的颜色
//
// x 超出 [0,1] 时先钳制。选取最后一个 Position ≤ x 的关键点作为下界（上界索引不超过 2），
// 在该区段内按局部比例线性插值。
func (r ColorRamp) Evaluate(x float64) colorful.Color {
	x = Clamp01(x)

	index := 0
	for i := 0; i < len(r)-1; i++ {
		if r[i].Position <= x {
			index = i
		}
	}

	lower, upper := r[index], r[index+1]
	factor := (x - lower.Position) / (upper.Position - lower.Position)
	return lower.Color.BlendRgb(upper.Color, factor)
}

// ParseColor 解析颜色字符串
// 支持 "#rgb"、"#rrggbb" 以及 CSS/SVG 颜色名（如 "white"、"royalblue"）
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("颜色字符串为空")
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return colorful.Color{}, fmt.Errorf("无效的十六进制颜色 %q", s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("无效的十六进制颜色 %q: %w", s, err)
		}
		return c, nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("未知的颜色名 %q", s)
	}
	c, ok := colorful.MakeColor(named)
	if !ok {
		return colorful.Color{}, fmt.Errorf("颜色 %q 完全透明", s)
	}
	return c, nil
}
