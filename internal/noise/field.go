// Package noise 提供极光条带形变使用的二维相干噪声场
//
// 噪声场要求：确定性（相同输入得到相同输出）、连续（输入微小变化时输出变化微小、无接缝）、
// 输出有界、在实际采样范围内视觉上无明显周期。
// 实现基于 github.com/aquilax/go-perlin 的梯度/置换哈希格点噪声。
package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// 输出范围
const (
	MinValue = -1.0
	MaxValue = 1.0
)

// Params 噪声场参数
type Params struct {
	Seed    int64   // 置换表随机种子
	Alpha   float64 // 每个倍频程的振幅衰减除数
	Beta    float64 // 每个倍频程的频率倍数
	Octaves int     // 倍频程数量
	Gain    float64 // 输出增益（钳制前）
}

// DefaultParams 默认噪声参数
func DefaultParams() Params {
	return Params{
		Seed:    1979,
		Alpha:   2,
		Beta:    2,
		Octaves: 3,
		Gain:    1.4,
	}
}

// Field 二维相干噪声场
// 构造后只读，可被多个调用方共享
type Field struct {
	perlin *perlin.Perlin
	gain   float64
}

// NewField 创建噪声场
func NewField(p Params) (*Field, error) {
	if p.Octaves <= 0 {
		return nil, fmt.Errorf("噪声倍频程数量必须为正数，实际 %d", p.Octaves)
	}
	if p.Alpha <= 0 || p.Beta <= 0 {
		return nil, fmt.Errorf("噪声 alpha/beta 必须为正数，实际 alpha=%v beta=%v", p.Alpha, p.Beta)
	}
	if p.Gain <= 0 {
		return nil, fmt.Errorf("噪声增益必须为正数，实际 %v", p.Gain)
	}

	return &Field{
		perlin: perlin.NewPerlin(p.Alpha, p.Beta, int32(p.Octaves), p.Seed),
		gain:   p.Gain,
	}, nil
}

// Sample 在 (x, y) 处采样，返回值位于 [MinValue, MaxValue]
func (f *Field) Sample(x, y float64) float64 {
	v := f.perlin.Noise2D(x, y) * f.gain
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
