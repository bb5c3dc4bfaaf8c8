package aurora

import (
	"github.com/decker502/aurora/pkg/utils"
)

// 着色常量
const (
	// MidPoint 透明度过渡窗口的中心
	MidPoint = 0.20

	// IntensityScale 条带高度到亮度的比例
	IntensityScale = 0.6

	// HeightBias 条带基准偏移
	HeightBias = 0.2

	// NoiseXScale / NoiseXSpeed / NoiseYSpeed 噪声采样坐标：(uv.x*2 + t*0.1, t*0.25)
	NoiseXScale = 2.0
	NoiseXSpeed = 0.1
	NoiseYSpeed = 0.25

	// TimeScale 毫秒到着色时间的比例（再乘以 speed）
	TimeScale = 0.01 * 0.1
)

// UniformState 每帧的着色参数
// Time 只用于在 CPU 端采样噪声条，不上传给着色器
type UniformState struct {
	Time       float64
	Amplitude  float64
	Blend      float64
	Resolution [2]float64
	Ramp       utils.ColorRamp
}

// ShaderTime 将毫秒时间戳换算为着色时间
func ShaderTime(ms, speed float64) float64 {
	return ms * TimeScale * speed
}

// Uniforms 转换为 DrawTrianglesShaderOptions.Uniforms
func (u UniformState) Uniforms() map[string]any {
	stops := make([]float32, 0, 9)
	positions := make([]float32, 0, 3)
	for _, s := range u.Ramp {
		stops = append(stops, float32(s.Color.R), float32(s.Color.G), float32(s.Color.B))
		positions = append(positions, float32(s.Position))
	}

	return map[string]any{
		"Amplitude":     float32(u.Amplitude),
		"Blend":         float32(u.Blend),
		"Resolution":    []float32{float32(u.Resolution[0]), float32(u.Resolution[1])},
		"ColorStops":    stops,
		"StopPositions": positions,
	}
}

// HasResolution 分辨率是否已知（两个维度都大于 0）
func (u UniformState) HasResolution() bool {
	return u.Resolution[0] > 0 && u.Resolution[1] > 0
}
