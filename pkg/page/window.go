// Package page 提供承载两个动画表面的宿主页面模型
//
// Window 对应浏览器窗口（视口尺寸、resize/load/pointer-down 事件），
// Document 按 ID 管理挂载点元素，并在每帧把元素中安装的图层合成到屏幕上。
package page

import "log"

// Size 像素尺寸
type Size struct {
	Width  int
	Height int
}

// Empty 宽或高为零时返回 true
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Window 视口与事件源
//
// 事件都在游戏主循环 goroutine 上同步派发，监听器无需加锁。
type Window struct {
	size   Size
	loaded bool

	resizeListeners  []func()
	loadListeners    []func()
	pointerListeners []func(x, y float64)
}

// NewWindow 创建尺寸为 0x0、尚未加载的窗口
func NewWindow() *Window {
	return &Window{}
}

// InnerSize 返回当前视口尺寸
func (w *Window) InnerSize() Size {
	return w.size
}

// AddResizeListener 注册 resize 监听器
func (w *Window) AddResizeListener(fn func()) {
	w.resizeListeners = append(w.resizeListeners, fn)
}

// AddLoadListener 注册 load 监听器
func (w *Window) AddLoadListener(fn func()) {
	w.loadListeners = append(w.loadListeners, fn)
}

// AddPointerDownListener 注册指针按下监听器（视口坐标）
func (w *Window) AddPointerDownListener(fn func(x, y float64)) {
	w.pointerListeners = append(w.pointerListeners, fn)
}

// SetSize 更新视口尺寸
//
// 尺寸变化时派发 resize；第一次调用时额外派发一次 load。
// 宿主每帧都可以调用，尺寸不变时不派发 resize。
func (w *Window) SetSize(width, height int) {
	next := Size{Width: width, Height: height}
	changed := next != w.size
	w.size = next

	if changed {
		log.Printf("[Window] resize %dx%d", width, height)
		for _, fn := range w.resizeListeners {
			fn()
		}
	}

	if !w.loaded {
		w.loaded = true
		log.Printf("[Window] load")
		for _, fn := range w.loadListeners {
			fn()
		}
	}
}

// DispatchPointerDown 派发指针按下事件
func (w *Window) DispatchPointerDown(x, y float64) {
	for _, fn := range w.pointerListeners {
		fn(x, y)
	}
}
