package utils

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（火花飞散使用此曲线）
// 公式：f(t) = t(2-t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// Clamp01 将值限制在 [0, 1] 区间
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoothstep 三次 Hermite 平滑过渡
// 与 GLSL/Kage 的 smoothstep 一致：窗口 [edge0, edge1] 外被钳制，窗口内为 3t²-2t³
//
// edge0 == edge1 时退化为阶跃函数（x < edge0 返回 0，否则返回 1）
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

