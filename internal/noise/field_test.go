package noise

import (
	"math"
	"testing"
)

func newTestField(t *testing.T) *Field {
	t.Helper()
	f, err := NewField(DefaultParams())
	if err != nil {
		t.Fatalf("NewField failed: %v", err)
	}
	return f
}

// TestSampleDeterministic 相同输入两次采样结果一致，相同参数的两个噪声场结果一致
func TestSampleDeterministic(t *testing.T) {
	a := newTestField(t)
	b := newTestField(t)

	points := [][2]float64{{0, 0}, {0.37, 1.2}, {12.5, -3.75}, {1999.1, 450.25}}
	for _, p := range points {
		first := a.Sample(p[0], p[1])
		second := a.Sample(p[0], p[1])
		if first != second {
			t.Errorf("Sample(%v, %v) 两次结果不同: %v vs %v", p[0], p[1], first, second)
		}
		if other := b.Sample(p[0], p[1]); other != first {
			t.Errorf("相同参数的噪声场在 (%v, %v) 结果不同: %v vs %v", p[0], p[1], first, other)
		}
	}
}

// TestSampleBounded 输出位于 [-1, 1]
func TestSampleBounded(t *testing.T) {
	f := newTestField(t)
	for i := 0; i < 200; i++ {
		for j := 0; j < 200; j++ {
			v := f.Sample(float64(i)*0.173, float64(j)*0.291)
			if v < MinValue || v > MaxValue || math.IsNaN(v) {
				t.Fatalf("Sample 越界: %v", v)
			}
		}
	}
}

// TestSampleContinuous 细网格上相邻采样差值有界，且随步长缩小而缩小
func TestSampleContinuous(t *testing.T) {
	f := newTestField(t)

	maxDelta := func(step float64) float64 {
		worst := 0.0
		for i := 0; i < 400; i++ {
			x := 0.5 + float64(i)*step
			y := 0.25 + float64(i)*step*0.5
			d := math.Abs(f.Sample(x+step, y) - f.Sample(x, y))
			if d > worst {
				worst = d
			}
			d = math.Abs(f.Sample(x, y+step) - f.Sample(x, y))
			if d > worst {
				worst = d
			}
		}
		return worst
	}

	coarse := maxDelta(1e-2)
	fine := maxDelta(1e-4)

	if coarse > 0.2 {
		t.Errorf("步长 1e-2 时相邻差值过大: %v", coarse)
	}
	if fine > 0.002 {
		t.Errorf("步长 1e-4 时相邻差值过大: %v", fine)
	}
	if fine > coarse {
		t.Errorf("步长缩小后差值应该缩小: fine=%v coarse=%v", fine, coarse)
	}
}

// TestSampleNotConstant 噪声场不应退化为常数
func TestSampleNotConstant(t *testing.T) {
	f := newTestField(t)
	first := f.Sample(0.31, 0.47)
	for i := 1; i < 50; i++ {
		if f.Sample(0.31+float64(i)*0.21, 0.47) != first {
			return
		}
	}
	t.Error("噪声场在采样范围内为常数")
}

// TestNewFieldValidation 参数校验
func TestNewFieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"倍频程为0", func(p *Params) { p.Octaves = 0 }},
		{"alpha为0", func(p *Params) { p.Alpha = 0 }},
		{"beta为负", func(p *Params) { p.Beta = -1 }},
		{"增益为0", func(p *Params) { p.Gain = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			if _, err := NewField(p); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}
