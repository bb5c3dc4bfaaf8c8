package aurora

import (
	"testing"
)

func newTestSurface(t *testing.T) *GPUSurface {
	t.Helper()
	surface, err := NewGPUSurface()
	if err != nil {
		t.Fatalf("NewGPUSurface() error = %v", err)
	}
	s, ok := surface.(*GPUSurface)
	if !ok {
		t.Fatalf("NewGPUSurface() 返回 %T, want *GPUSurface", surface)
	}
	return s
}

// TestGPUSurface_Resize 缓冲尺寸与覆盖三角形顶点
func TestGPUSurface_Resize(t *testing.T) {
	s := newTestSurface(t)
	if s.Image() != nil {
		t.Error("第一次 Resize 前不应分配缓冲")
	}

	s.Resize(64, 32)

	if b := s.Image().Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("目标缓冲 = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
	if b := s.strip.Bounds(); b.Dx() != 64 || b.Dy() != 1 {
		t.Errorf("噪声条缓冲 = %dx%d, want 64x1", b.Dx(), b.Dy())
	}

	want := [3][2]float32{{0, 0}, {128, 0}, {0, 64}}
	for i, v := range s.vertices {
		if v.DstX != want[i][0] || v.DstY != want[i][1] {
			t.Errorf("顶点 %d = (%v,%v), want (%v,%v)", i, v.DstX, v.DstY, want[i][0], want[i][1])
		}
		if v.SrcX != v.DstX {
			t.Errorf("顶点 %d SrcX = %v, want %v", i, v.SrcX, v.DstX)
		}
		if v.SrcY != 0.5 {
			t.Errorf("顶点 %d SrcY = %v, want 0.5", i, v.SrcY)
		}
	}
	if s.indices != [3]uint16{0, 1, 2} {
		t.Errorf("indices = %v", s.indices)
	}
}

// TestGPUSurface_ResizeKeepsBuffers 尺寸不变或为 0 时不重新分配
func TestGPUSurface_ResizeKeepsBuffers(t *testing.T) {
	s := newTestSurface(t)
	s.Resize(64, 32)
	target, strip := s.target, s.strip

	tests := []struct {
		name          string
		width, height int
	}{
		{"尺寸不变", 64, 32},
		{"宽为0", 0, 32},
		{"高为0", 64, 0},
		{"负尺寸", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Resize(tt.width, tt.height)
			if s.target != target || s.strip != strip {
				t.Error("不应重新分配缓冲")
			}
		})
	}

	s.Resize(32, 16)
	if s.target == target {
		t.Error("尺寸变化后应重新分配缓冲")
	}
	if b := s.strip.Bounds(); b.Dx() != 32 {
		t.Errorf("噪声条宽度 = %d, want 32", b.Dx())
	}
}

// TestGPUSurface_DrawSkipped 缓冲未就绪、宽度不匹配或已释放时 Draw 不做任何事
func TestGPUSurface_DrawSkipped(t *testing.T) {
	s := newTestSurface(t)
	u := UniformState{Amplitude: 1, Blend: 0.5, Resolution: [2]float64{64, 32}}

	// 尚未 Resize
	s.Draw(NewNoiseStrip(64), u)

	s.Resize(64, 32)
	s.Draw(NewNoiseStrip(16), u)

	s.Dispose()
	if s.Image() != nil || s.shader != nil {
		t.Error("Dispose() 后应释放着色器和缓冲")
	}
	s.Draw(NewNoiseStrip(64), u)

	// 重复释放无副作用
	s.Dispose()
}
