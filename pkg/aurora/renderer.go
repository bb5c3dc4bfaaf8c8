// Package aurora 实现页面首屏区域的动画极光背景
//
// 渲染器在容器元素中安装一个绘制表面，每帧用 Kage 着色器绘制一个覆盖视口的三角形：
// 水平方向按三色渐变着色，垂直方向由随时间漂移的噪声形变，并通过平滑阶跃淡入透明。
// 容器不存在时渲染器不做任何事；着色器编译失败只影响极光本身，页面其余部分照常运行。
package aurora

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/aurora/internal/noise"
	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/frame"
	"github.com/decker502/aurora/pkg/page"
	"github.com/decker502/aurora/pkg/utils"
)

// Renderer 极光渲染器
type Renderer struct {
	container *page.Element
	surface   Surface
	strip     *NoiseStrip
	field     Sampler
	speed     float64
	uniforms  UniformState
	loop      *frame.Loop
	draws     uint64
	closed    bool
}

// Init 在 containerID 指定的容器中创建极光渲染器并开始动画
//
// 返回：
//   - (nil, nil): 容器不存在，静默跳过
//   - (nil, err): 配置无效或绘制表面创建失败，容器内不安装任何东西
//   - (*Renderer, nil): 已安装并开始循环
func Init(doc *page.Document, containerID string, cfg config.AuroraConfig, sched *frame.Scheduler, newSurface SurfaceFactory) (*Renderer, error) {
	container, ok := doc.ElementByID(containerID)
	if !ok {
		log.Printf("[Aurora] 容器 %q 不存在，跳过极光背景", containerID)
		return nil, nil
	}

	ramp, err := utils.NewColorRampFromHex(cfg.ColorStops)
	if err != nil {
		return nil, fmt.Errorf("极光渐变配置无效: %w", err)
	}

	field, err := noise.NewField(noise.Params{
		Seed:    cfg.Noise.Seed,
		Alpha:   cfg.Noise.Alpha,
		Beta:    cfg.Noise.Beta,
		Octaves: cfg.Noise.Octaves,
		Gain:    cfg.Noise.Gain,
	})
	if err != nil {
		return nil, fmt.Errorf("极光噪声配置无效: %w", err)
	}

	surface, err := newSurface()
	if err != nil {
		return nil, fmt.Errorf("无法创建极光绘制表面: %w", err)
	}

	r := &Renderer{
		container: container,
		surface:   surface,
		strip:     NewNoiseStrip(0),
		field:     field,
		speed:     cfg.Speed,
		uniforms: UniformState{
			Amplitude: cfg.Amplitude,
			Blend:     cfg.Blend,
			Ramp:      ramp,
		},
	}

	container.Append(surface)

	// 初始分辨率取容器当前尺寸，可能为 0（页面尚未加载）
	size := container.ContentBox()
	r.uniforms.Resolution = [2]float64{float64(size.Width), float64(size.Height)}

	win := doc.Window()
	win.AddResizeListener(r.Resize)
	win.AddLoadListener(r.Resize)

	r.loop = frame.NewLoop(sched, r.RenderFrame)
	r.loop.Start()

	r.Resize()

	log.Printf("[Aurora] 已安装到容器 %q", containerID)
	return r, nil
}

// Resize 将绘制缓冲和分辨率同步到容器当前尺寸
// 容器宽或高为 0 时不做任何改变
func (r *Renderer) Resize() {
	if r.closed {
		return
	}
	size := r.container.ContentBox()
	if size.Empty() {
		return
	}

	r.surface.Resize(size.Width, size.Height)
	r.strip.Resize(size.Width)
	r.uniforms.Resolution = [2]float64{float64(size.Width), float64(size.Height)}

	log.Printf("[Aurora] resize %dx%d", size.Width, size.Height)
}

// RenderFrame 绘制一帧
// now 为帧时间戳；分辨率仍为 0 时只更新时间，不发起绘制
func (r *Renderer) RenderFrame(now time.Duration) {
	if r.closed {
		return
	}
	r.uniforms.Time = ShaderTime(frame.Milliseconds(now), r.speed)

	if !r.uniforms.HasResolution() || r.strip.Width() == 0 {
		return
	}

	r.strip.Fill(r.field, r.uniforms.Time)
	r.surface.Draw(r.strip, r.uniforms)
	r.draws++
}

// Start 恢复动画循环，Close 之后调用无效
func (r *Renderer) Start() {
	if r.closed {
		return
	}
	r.loop.Start()
}

// Stop 停止动画循环（表面保留最后一帧）
func (r *Renderer) Stop() {
	r.loop.Stop()
}

// Running 返回动画循环是否在运行
func (r *Renderer) Running() bool {
	return r.loop.Running()
}

// Uniforms 返回当前着色参数
func (r *Renderer) Uniforms() UniformState {
	return r.uniforms
}

// Draws 返回已发起的绘制次数
func (r *Renderer) Draws() uint64 {
	return r.draws
}

// Close 停止循环并释放绘制表面
// 之后窗口的 resize/load 事件以及 Start 都不再生效
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.loop.Stop()
	r.surface.Dispose()
}
