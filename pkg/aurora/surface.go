package aurora

import (
	_ "embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/aurora/pkg/page"
)

//go:embed aurora.kage
var shaderSource []byte

// Surface 极光绘制表面
// 作为图层安装到容器元素中，由 Renderer 每帧驱动
type Surface interface {
	page.Layer

	// Resize 调整绘制缓冲尺寸（像素）
	Resize(width, height int)

	// Draw 清空缓冲并以单个覆盖视口的三角形绘制一帧
	Draw(strip *NoiseStrip, u UniformState)

	// Dispose 释放 GPU 资源
	Dispose()
}

// SurfaceFactory 创建绘制表面，失败通常意味着着色器编译失败或 GPU 不可用
type SurfaceFactory func() (Surface, error)

// GPUSurface 基于 Kage 着色器的绘制表面
type GPUSurface struct {
	shader *ebiten.Shader
	target *ebiten.Image
	strip  *ebiten.Image

	vertices [3]ebiten.Vertex
	indices  [3]uint16
}

// NewGPUSurface 编译着色器并创建表面（缓冲在第一次 Resize 时分配）
func NewGPUSurface() (Surface, error) {
	shader, err := ebiten.NewShader(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("极光着色器编译失败: %w", err)
	}
	return &GPUSurface{
		shader:  shader,
		indices: [3]uint16{0, 1, 2},
	}, nil
}

// Image 实现 page.Layer
func (s *GPUSurface) Image() *ebiten.Image {
	return s.target
}

// Resize 重新分配缓冲，尺寸不变时不做任何事
func (s *GPUSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.target != nil {
		b := s.target.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		s.target.Deallocate()
		s.strip.Deallocate()
	}

	s.target = ebiten.NewImage(width, height)
	s.strip = ebiten.NewImage(width, 1)

	// 覆盖整个视口的单个三角形：(0,0) (2W,0) (0,2H)
	// 源坐标 x 与目标 x 相同，y 固定在噪声条的唯一一行
	w, h := float32(width), float32(height)
	corners := [3][2]float32{{0, 0}, {2 * w, 0}, {0, 2 * h}}
	for i, c := range corners {
		s.vertices[i] = ebiten.Vertex{
			DstX:   c[0],
			DstY:   c[1],
			SrcX:   c[0],
			SrcY:   0.5,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

// Draw 上传噪声条并绘制一帧
// 已释放或尚未分配缓冲时不做任何事
func (s *GPUSurface) Draw(strip *NoiseStrip, u UniformState) {
	if s.shader == nil || s.target == nil || strip.Width() != s.strip.Bounds().Dx() {
		return
	}

	s.strip.WritePixels(strip.Pixels())
	s.target.Clear()

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Uniforms = u.Uniforms()
	op.Images[0] = s.strip
	op.Blend = ebiten.BlendSourceOver
	s.target.DrawTrianglesShader(s.vertices[:], s.indices[:], s.shader, op)
}

// Dispose 释放着色器和缓冲
func (s *GPUSurface) Dispose() {
	if s.target != nil {
		s.target.Deallocate()
		s.strip.Deallocate()
		s.target = nil
		s.strip = nil
	}
	if s.shader != nil {
		s.shader.Deallocate()
		s.shader = nil
	}
}
