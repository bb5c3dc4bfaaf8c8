package aurora

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/aurora/pkg/utils"
)

// ShadePixel 计算像素 (px, py) 的预乘颜色，与 aurora.kage 的逐像素算法一致
//
// n 为该列的噪声值（见 NoiseStrip）。返回值均在 [0, 1]，r/g/b 已乘以 alpha。
func ShadePixel(u UniformState, px, py int, n float64) (r, g, b, a float64) {
	if !u.HasResolution() {
		return 0, 0, 0, 0
	}

	// 像素中心，y 轴翻转
	uvx := (float64(px) + 0.5) / u.Resolution[0]
	uvy := 1 - (float64(py)+0.5)/u.Resolution[1]

	ramp := u.Ramp.Evaluate(uvx)

	height := math.Exp(n * 0.5 * u.Amplitude)
	height = uvy*2 - height + HeightBias
	intensity := IntensityScale * height

	alpha := utils.Smoothstep(MidPoint-u.Blend*0.5, MidPoint+u.Blend*0.5, intensity)

	r = clampUnit(intensity * ramp.R * alpha)
	g = clampUnit(intensity * ramp.G * alpha)
	b = clampUnit(intensity * ramp.B * alpha)
	return r, g, b, alpha
}

// RenderReference 在 CPU 上渲染整帧，结果为预乘 RGBA
// 用于离屏对比和测试，不参与实时渲染
func RenderReference(u UniformState, strip *NoiseStrip) *image.RGBA {
	w, h := int(u.Resolution[0]), int(u.Resolution[1])
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if !u.HasResolution() || strip.Width() != w {
		return img
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := DecodeNoise(EncodeNoise(strip.Value(x)))
			r, g, b, a := ShadePixel(u, x, y, n)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(r),
				G: toByte(g),
				B: toByte(b),
				A: toByte(a),
			})
		}
	}
	return img
}

// clampUnit 预乘分量写入帧缓冲时会被钳制到 [0, 1]
func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}
