package systems

import (
	"fmt"
	"log"
	"math"
	"slices"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/aurora/pkg/components"
	"github.com/decker502/aurora/pkg/config"
	"github.com/decker502/aurora/pkg/ecs"
	"github.com/decker502/aurora/pkg/frame"
	"github.com/decker502/aurora/pkg/page"
	"github.com/decker502/aurora/pkg/utils"
)

// SparkSystem 点击火花系统
//
// 每次指针按下在点击位置生成一圈火花，火花沿各自方向飞散并缩短，
// 生命周期结束后移除。火花以 ECS 实体保存，实体 ID 从不复用。
type SparkSystem struct {
	entityManager *ecs.EntityManager
	canvas        Canvas
	element       *page.Element
	window        *page.Window
	clock         frame.Clock
	cfg           config.SparkConfig
	loop          *frame.Loop

	strokeColor colorful.Color
	strokeStyle string
}

// InitSparkSystem 在 canvasID 指定的元素上创建火花系统并开始循环
//
// 画布元素不存在时返回 (nil, nil)。initialColor 无法解析时返回错误。
func InitSparkSystem(doc *page.Document, canvasID string, cfg config.SparkConfig, initialColor string,
	sched *frame.Scheduler, clock frame.Clock, newCanvas CanvasFactory) (*SparkSystem, error) {

	el, ok := doc.ElementByID(canvasID)
	if !ok {
		log.Printf("[SparkSystem] 画布 %q 不存在，跳过点击火花", canvasID)
		return nil, nil
	}

	clr, err := utils.ParseColor(initialColor)
	if err != nil {
		return nil, fmt.Errorf("火花初始颜色无效: %w", err)
	}

	s := &SparkSystem{
		entityManager: ecs.NewEntityManager(),
		canvas:        newCanvas(),
		element:       el,
		window:        doc.Window(),
		clock:         clock,
		cfg:           cfg,
		strokeColor:   clr,
		strokeStyle:   initialColor,
	}

	el.Append(s.canvas)
	s.resizeCanvas()

	s.window.AddResizeListener(s.resizeCanvas)
	s.window.AddPointerDownListener(s.OnPointerDown)

	s.loop = frame.NewLoop(sched, s.AdvanceAndDraw)
	s.loop.Start()

	log.Printf("[SparkSystem] 已安装到画布 %q，颜色 %s", canvasID, initialColor)
	return s, nil
}

// resizeCanvas 画布缓冲与元素内容区一致
// 合成时图层按元素矩形绘制，缓冲尺寸不同会被拉伸
func (s *SparkSystem) resizeCanvas() {
	size := s.element.ContentBox()
	if size.Empty() {
		return
	}
	s.canvas.Resize(size.Width, size.Height)
}

// OnPointerDown 在窗口坐标 (x, y) 生成一圈火花
// 原点换算为画布元素内的坐标；所有火花共享同一个生成时间戳，角度均匀分布
func (s *SparkSystem) OnPointerDown(x, y float64) {
	rect := s.element.Rect()
	x -= float64(rect.X)
	y -= float64(rect.Y)

	now := s.clock.Now()
	for i := 0; i < s.cfg.Count; i++ {
		id := s.entityManager.CreateEntity()
		s.entityManager.AddComponent(id, &components.SparkComponent{
			OriginX:   x,
			OriginY:   y,
			Angle:     2 * math.Pi * float64(i) / float64(s.cfg.Count),
			SpawnTime: now,
		})
	}
}

// AdvanceAndDraw 清空画布，推进并绘制所有火花
// 生命周期结束的火花被永久移除
func (s *SparkSystem) AdvanceAndDraw(now time.Duration) {
	s.canvas.Clear()

	for _, id := range s.sortedSparks() {
		spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, id)
		if !ok {
			continue
		}

		elapsed := now - spark.SpawnTime
		if elapsed >= s.cfg.Duration {
			s.entityManager.DestroyEntity(id)
			continue
		}

		x0, y0, x1, y1 := s.segment(spark, elapsed)
		s.canvas.StrokeLine(x0, y0, x1, y1, s.cfg.LineWidth, s.strokeColor)
	}

	s.entityManager.RemoveMarkedEntities()
}

// segment 计算火花在 elapsed 时刻的线段端点
//
// 进度 p 经二次缓出后得到 eased：
// 线段起点离原点 eased×radius，长度 size×(1-eased)
func (s *SparkSystem) segment(spark *components.SparkComponent, elapsed time.Duration) (x0, y0, x1, y1 float64) {
	progress := utils.Clamp01(float64(elapsed) / float64(s.cfg.Duration))
	eased := utils.EaseOutQuad(progress)

	distance := eased * s.cfg.Radius
	length := s.cfg.Size * (1 - eased)

	cos, sin := math.Cos(spark.Angle), math.Sin(spark.Angle)
	x0 = spark.OriginX + distance*cos
	y0 = spark.OriginY + distance*sin
	x1 = spark.OriginX + (distance+length)*cos
	y1 = spark.OriginY + (distance+length)*sin
	return x0, y0, x1, y1
}

// sortedSparks 按创建顺序返回火花实体
func (s *SparkSystem) sortedSparks() []ecs.EntityID {
	ids := ecs.GetEntitiesWith1[*components.SparkComponent](s.entityManager)
	slices.Sort(ids)
	return ids
}

// SetStrokeColor 设置火花颜色，下一次绘制生效
//
// 支持 "#rgb"、"#rrggbb" 和颜色名。无法解析时保留原颜色并返回错误。
func (s *SparkSystem) SetStrokeColor(style string) error {
	clr, err := utils.ParseColor(style)
	if err != nil {
		return fmt.Errorf("火花颜色无效，保留 %s: %w", s.strokeStyle, err)
	}
	s.strokeColor = clr
	s.strokeStyle = style
	log.Printf("[SparkSystem] 颜色 -> %s", style)
	return nil
}

// StrokeStyle 返回当前颜色字符串
func (s *SparkSystem) StrokeStyle() string {
	return s.strokeStyle
}

// Count 返回存活的火花数量
func (s *SparkSystem) Count() int {
	return s.entityManager.EntityCount()
}

// Sparks 按创建顺序返回存活火花的快照
func (s *SparkSystem) Sparks() []components.SparkComponent {
	ids := s.sortedSparks()
	out := make([]components.SparkComponent, 0, len(ids))
	for _, id := range ids {
		if spark, ok := ecs.GetComponent[*components.SparkComponent](s.entityManager, id); ok {
			out = append(out, *spark)
		}
	}
	return out
}

// Start 恢复动画循环
func (s *SparkSystem) Start() {
	s.loop.Start()
}

// Stop 停止动画循环
func (s *SparkSystem) Stop() {
	s.loop.Stop()
}

// Running 返回动画循环是否在运行
func (s *SparkSystem) Running() bool {
	return s.loop.Running()
}
