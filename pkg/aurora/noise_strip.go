package aurora

import (
	"math"

	"github.com/decker502/aurora/internal/noise"
)

// Sampler 二维噪声采样
type Sampler interface {
	Sample(x, y float64) float64
}

// NoiseStrip 每列一个噪声值的纹理条
//
// 着色器中的噪声只依赖 (uv.x, time)，因此每帧在 CPU 上为每列计算一次，
// 以 16 位精度写入 W×1 图像的 R(高位)/G(低位) 通道后交给着色器采样。
type NoiseStrip struct {
	values []float64
	pixels []byte
}

// NewNoiseStrip 创建指定宽度的噪声条
func NewNoiseStrip(width int) *NoiseStrip {
	s := &NoiseStrip{}
	s.Resize(width)
	return s
}

// Width 返回列数
func (s *NoiseStrip) Width() int {
	return len(s.values)
}

// Resize 调整列数，内容在下次 Fill 时重新计算
func (s *NoiseStrip) Resize(width int) {
	if width < 0 {
		width = 0
	}
	if width == len(s.values) {
		return
	}
	s.values = make([]float64, width)
	s.pixels = make([]byte, width*4)
}

// Fill 按时间 t 采样每列噪声
// 第 i 列取像素中心 uv.x = (i+0.5)/W
func (s *NoiseStrip) Fill(sampler Sampler, t float64) {
	w := len(s.values)
	if w == 0 {
		return
	}
	y := t * NoiseYSpeed
	for i := range s.values {
		uvx := (float64(i) + 0.5) / float64(w)
		n := sampler.Sample(uvx*NoiseXScale+t*NoiseXSpeed, y)
		s.values[i] = n

		hi, lo := EncodeNoise(n)
		p := s.pixels[i*4:]
		p[0] = hi
		p[1] = lo
		p[2] = 0
		p[3] = 0xff
	}
}

// Value 返回第 col 列的原始噪声值
func (s *NoiseStrip) Value(col int) float64 {
	return s.values[col]
}

// Pixels 返回 RGBA 像素数据（长度 4×W），可直接用于 WritePixels
func (s *NoiseStrip) Pixels() []byte {
	return s.pixels
}

// EncodeNoise 将 [-1, 1] 的噪声值量化为 16 位
func EncodeNoise(n float64) (hi, lo byte) {
	n = math.Max(noise.MinValue, math.Min(noise.MaxValue, n))
	v := uint16(math.Round((n + 1) / 2 * 65535))
	return byte(v >> 8), byte(v & 0xff)
}

// DecodeNoise EncodeNoise 的逆运算（与着色器中的 decodeNoise 一致）
func DecodeNoise(hi, lo byte) float64 {
	v := float64(uint16(hi)<<8|uint16(lo)) / 65535
	return v*2 - 1
}
