package page

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Layer 可以安装到元素中的绘制表面
// Image 返回 nil 表示本帧没有可合成的内容
type Layer interface {
	Image() *ebiten.Image
}

// Box 元素在视口中的位置与尺寸（相对视口的比例，0~1）
type Box struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Validate 检查比例是否落在视口内
func (b Box) Validate() error {
	if b.X < 0 || b.Y < 0 || b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("元素区域不能为负: %+v", b)
	}
	if b.X+b.Width > 1 || b.Y+b.Height > 1 {
		return fmt.Errorf("元素区域超出视口: %+v", b)
	}
	return nil
}

// Rect 像素矩形
type Rect struct {
	X, Y          int
	Width, Height int
}

// Element 挂载点元素
type Element struct {
	id     string
	box    Box
	window *Window
	layers []Layer
}

// ID 返回元素 ID
func (e *Element) ID() string {
	return e.id
}

// Rect 返回元素在当前视口中的像素矩形
func (e *Element) Rect() Rect {
	vp := e.window.InnerSize()
	return Rect{
		X:      int(math.Round(e.box.X * float64(vp.Width))),
		Y:      int(math.Round(e.box.Y * float64(vp.Height))),
		Width:  int(math.Round(e.box.Width * float64(vp.Width))),
		Height: int(math.Round(e.box.Height * float64(vp.Height))),
	}
}

// ContentBox 返回元素内容区尺寸
func (e *Element) ContentBox() Size {
	r := e.Rect()
	return Size{Width: r.Width, Height: r.Height}
}

// Append 安装图层，后安装的图层绘制在上方
func (e *Element) Append(l Layer) {
	e.layers = append(e.layers, l)
}

// Layers 返回已安装的图层数量
func (e *Element) Layers() int {
	return len(e.layers)
}

// Document 挂载点元素集合
type Document struct {
	window   *Window
	elements map[string]*Element
	order    []*Element
}

// NewDocument 创建绑定到窗口的文档
func NewDocument(w *Window) *Document {
	return &Document{
		window:   w,
		elements: make(map[string]*Element),
	}
}

// Window 返回文档所属窗口
func (d *Document) Window() *Window {
	return d.window
}

// AddElement 添加挂载点元素
func (d *Document) AddElement(id string, box Box) (*Element, error) {
	if id == "" {
		return nil, fmt.Errorf("元素 ID 不能为空")
	}
	if _, exists := d.elements[id]; exists {
		return nil, fmt.Errorf("元素 ID 重复: %s", id)
	}
	if err := box.Validate(); err != nil {
		return nil, fmt.Errorf("元素 %s: %w", id, err)
	}

	el := &Element{id: id, box: box, window: d.window}
	d.elements[id] = el
	d.order = append(d.order, el)
	return el, nil
}

// ElementByID 按 ID 查找元素
func (d *Document) ElementByID(id string) (*Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

// Draw 按元素添加顺序合成所有图层
// 图层被拉伸到元素矩形大小（相当于 width:100%; height:100%）
func (d *Document) Draw(screen *ebiten.Image) {
	for _, el := range d.order {
		rect := el.Rect()
		if rect.Width <= 0 || rect.Height <= 0 {
			continue
		}
		for _, layer := range el.layers {
			img := layer.Image()
			if img == nil {
				continue
			}
			bounds := img.Bounds()
			if bounds.Dx() == 0 || bounds.Dy() == 0 {
				continue
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(rect.Width)/float64(bounds.Dx()), float64(rect.Height)/float64(bounds.Dy()))
			op.GeoM.Translate(float64(rect.X), float64(rect.Y))
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(img, op)
		}
	}
}
