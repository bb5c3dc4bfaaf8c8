package aurora

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/frame"
	"github.com/decker502/aurora/pkg/page"
)

// fakeSurface 记录调用次数，不访问 GPU
type fakeSurface struct {
	resizes  [][2]int
	draws    int
	last     UniformState
	stripW   int
	disposed bool
}

func (s *fakeSurface) Image() *ebiten.Image { return nil }

func (s *fakeSurface) Resize(width, height int) {
	s.resizes = append(s.resizes, [2]int{width, height})
}

func (s *fakeSurface) Draw(strip *NoiseStrip, u UniformState) {
	s.draws++
	s.last = u
	s.stripW = strip.Width()
}

func (s *fakeSurface) Dispose() { s.disposed = true }

type fixture struct {
	window  *page.Window
	doc     *page.Document
	sched   *frame.Scheduler
	surface *fakeSurface
	created int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		window:  page.NewWindow(),
		sched:   frame.NewScheduler(),
		surface: &fakeSurface{},
	}
	f.doc = page.NewDocument(f.window)
	if _, err := f.doc.AddElement("aurora-container", page.Box{X: 0, Y: 0, Width: 1, Height: 0.5}); err != nil {
		t.Fatalf("AddElement() error = %v", err)
	}
	return f
}

func (f *fixture) factory() (Surface, error) {
	f.created++
	return f.surface, nil
}

func (f *fixture) init(t *testing.T) *Renderer {
	t.Helper()
	r, err := Init(f.doc, "aurora-container", config.DefaultVisualConfig().Aurora, f.sched, f.factory)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if r == nil {
		t.Fatal("Init() 返回 nil 渲染器")
	}
	return r
}

// TestInit_MissingContainer 容器不存在时静默跳过
func TestInit_MissingContainer(t *testing.T) {
	f := newFixture(t)

	r, err := Init(f.doc, "no-such-container", config.DefaultVisualConfig().Aurora, f.sched, f.factory)
	if err != nil {
		t.Fatalf("期望无错误，得到 %v", err)
	}
	if r != nil {
		t.Error("期望返回 nil 渲染器")
	}
	if f.created != 0 {
		t.Errorf("不应创建绘制表面，实际创建 %d 次", f.created)
	}
	if f.sched.Pending() != 0 {
		t.Errorf("不应注册帧回调，实际 %d 个", f.sched.Pending())
	}
}

// TestInit_SurfaceFailure 绘制表面创建失败只中止极光本身
func TestInit_SurfaceFailure(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("shader compile error")

	r, err := Init(f.doc, "aurora-container", config.DefaultVisualConfig().Aurora, f.sched, func() (Surface, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("期望包装的编译错误，得到 %v", err)
	}
	if r != nil {
		t.Error("失败时不应返回渲染器")
	}

	el, _ := f.doc.ElementByID("aurora-container")
	if el.Layers() != 0 {
		t.Errorf("失败时容器内不应安装图层，实际 %d 个", el.Layers())
	}
	if f.sched.Pending() != 0 {
		t.Error("失败时不应开始帧循环")
	}
}

// TestInit_InvalidConfig 渐变配置无效时返回错误
func TestInit_InvalidConfig(t *testing.T) {
	f := newFixture(t)
	cfg := config.DefaultVisualConfig().Aurora
	cfg.ColorStops = []string{"#FF3232"}

	if _, err := Init(f.doc, "aurora-container", cfg, f.sched, f.factory); err == nil {
		t.Error("期望渐变配置错误")
	}
	if f.created != 0 {
		t.Error("配置无效时不应创建绘制表面")
	}
}

// TestZeroSizeContainer 容器尺寸为 0 时不绘制，加载后恢复
func TestZeroSizeContainer(t *testing.T) {
	f := newFixture(t)
	r := f.init(t)

	el, _ := f.doc.ElementByID("aurora-container")
	if el.Layers() != 1 {
		t.Fatalf("期望安装 1 个图层，实际 %d 个", el.Layers())
	}
	if len(f.surface.resizes) != 0 {
		t.Errorf("零尺寸时不应调整缓冲: %v", f.surface.resizes)
	}

	for i := 1; i <= 3; i++ {
		f.sched.Dispatch(time.Duration(i) * 16 * time.Millisecond)
	}
	if f.surface.draws != 0 {
		t.Errorf("分辨率为 0 时不应绘制，实际 %d 次", f.surface.draws)
	}
	if !r.Running() {
		t.Error("零尺寸时循环应继续运行")
	}

	// 页面加载：resize 和 load 都会触发
	f.window.SetSize(800, 600)
	if len(f.surface.resizes) == 0 {
		t.Fatal("加载后应调整缓冲")
	}
	for _, sz := range f.surface.resizes {
		if sz != [2]int{800, 300} {
			t.Errorf("缓冲尺寸 = %v, want [800 300]", sz)
		}
	}
	if got := r.Uniforms().Resolution; got != [2]float64{800, 300} {
		t.Errorf("Resolution = %v, want [800 300]", got)
	}

	f.sched.Dispatch(64 * time.Millisecond)
	if f.surface.draws != 1 {
		t.Errorf("加载后应绘制 1 次，实际 %d 次", f.surface.draws)
	}
	if f.surface.stripW != 800 {
		t.Errorf("噪声条宽度 = %d, want 800", f.surface.stripW)
	}
}

// TestResize_IgnoresZero 窗口变为 0 时保留原分辨率
func TestResize_IgnoresZero(t *testing.T) {
	f := newFixture(t)
	f.window.SetSize(400, 400)
	r := f.init(t)

	f.window.SetSize(0, 0)
	if got := r.Uniforms().Resolution; got != [2]float64{400, 200} {
		t.Errorf("Resolution = %v, want [400 200]", got)
	}
	if len(f.surface.resizes) != 1 {
		t.Errorf("零尺寸不应调整缓冲，调整记录 %v", f.surface.resizes)
	}
}

// TestRenderFrame_OneDrawPerFrame N 帧恰好发起 N 次绘制
func TestRenderFrame_OneDrawPerFrame(t *testing.T) {
	f := newFixture(t)
	f.window.SetSize(320, 240)
	r := f.init(t)

	const frames = 5
	for i := 0; i < frames; i++ {
		f.sched.Dispatch(time.Duration(i) * 16 * time.Millisecond)
	}
	if f.surface.draws != frames {
		t.Errorf("draws = %d, want %d", f.surface.draws, frames)
	}
	if r.Draws() != frames {
		t.Errorf("Draws() = %d, want %d", r.Draws(), frames)
	}
	if f.sched.Pending() != 1 {
		t.Errorf("循环应始终保留下一帧请求，Pending = %d", f.sched.Pending())
	}
}

// TestRenderFrame_TimeScaling 时间 = 毫秒 × 0.01 × speed × 0.1
func TestRenderFrame_TimeScaling(t *testing.T) {
	f := newFixture(t)
	f.window.SetSize(100, 100)
	f.init(t)

	tests := []struct {
		name string
		now  time.Duration
		want float64
	}{
		{"起点", 0, 0},
		{"1 秒", time.Second, 0.5},
		{"10 秒", 10 * time.Second, 5},
		{"半毫秒", 500 * time.Microsecond, 0.00025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.sched.Dispatch(tt.now)
			if got := f.surface.last.Time; math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Time = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestStopStart 停止后不再绘制，重新开始后恢复
func TestStopStart(t *testing.T) {
	f := newFixture(t)
	f.window.SetSize(100, 100)
	r := f.init(t)

	f.sched.Dispatch(0)
	r.Stop()
	f.sched.Dispatch(16 * time.Millisecond)
	f.sched.Dispatch(32 * time.Millisecond)
	if f.surface.draws != 1 {
		t.Errorf("停止后不应绘制，draws = %d", f.surface.draws)
	}

	r.Start()
	f.sched.Dispatch(48 * time.Millisecond)
	if f.surface.draws != 2 {
		t.Errorf("重新开始后应继续绘制，draws = %d", f.surface.draws)
	}

	r.Close()
	if !f.surface.disposed {
		t.Error("Close() 应释放绘制表面")
	}
	if r.Running() {
		t.Error("Close() 后循环应停止")
	}
}

// TestClose_IgnoresLaterEvents 关闭后 Start 与窗口事件都不再触碰已释放的表面
func TestClose_IgnoresLaterEvents(t *testing.T) {
	f := newFixture(t)
	f.window.SetSize(200, 200)
	r := f.init(t)

	f.sched.Dispatch(0)
	r.Close()
	resizes := len(f.surface.resizes)

	r.Start()
	if r.Running() {
		t.Error("Close() 之后 Start() 不应恢复循环")
	}
	if f.sched.Pending() != 0 {
		t.Errorf("Close() 之后不应有帧请求，Pending = %d", f.sched.Pending())
	}

	f.window.SetSize(640, 480)
	f.sched.Dispatch(16 * time.Millisecond)
	if len(f.surface.resizes) != resizes {
		t.Errorf("关闭后不应调整缓冲: %v", f.surface.resizes[resizes:])
	}
	if f.surface.draws != 1 {
		t.Errorf("关闭后不应绘制，draws = %d", f.surface.draws)
	}

	// 重复关闭无副作用
	r.Close()
}
