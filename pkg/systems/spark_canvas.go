package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/aurora/pkg/page"
)

// Canvas 火花绘制画布
type Canvas interface {
	page.Layer

	// Resize 调整画布尺寸（像素），宽或高为 0 时忽略
	Resize(width, height int)

	// Size 返回当前画布尺寸
	Size() (width, height int)

	// Clear 清空整个画布
	Clear()

	// StrokeLine 绘制线段
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// CanvasFactory 创建画布
type CanvasFactory func() Canvas

// EbitenCanvas 基于 *ebiten.Image 的画布
// 缓冲在第一次有效 Resize 时分配
type EbitenCanvas struct {
	image *ebiten.Image
}

// NewEbitenCanvas 创建空画布
func NewEbitenCanvas() Canvas {
	return &EbitenCanvas{}
}

// Image 实现 page.Layer
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.image
}

// Resize 尺寸变化时重新分配缓冲（ebiten.NewImage 不接受 0 尺寸）
func (c *EbitenCanvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.image != nil {
		b := c.image.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
}

// Size 返回画布尺寸，未分配时为 0
func (c *EbitenCanvas) Size() (int, int) {
	if c.image == nil {
		return 0, 0
	}
	b := c.image.Bounds()
	return b.Dx(), b.Dy()
}

// Clear 清空画布
func (c *EbitenCanvas) Clear() {
	if c.image != nil {
		c.image.Clear()
	}
}

// StrokeLine 使用抗锯齿线段绘制
func (c *EbitenCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	if c.image == nil {
		return
	}
	vector.StrokeLine(c.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
