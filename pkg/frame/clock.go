// Package frame 提供与显示刷新同步的帧调度
//
// 每个渲染器通过 Loop 向 Scheduler 注册一个可取消的循环回调；宿主（Ebitengine 的 Draw）
// 每帧调用一次 Scheduler.Dispatch。所有回调都在同一个 goroutine 上执行，
// 因此回调之间、回调与输入事件之间不存在数据竞争。
package frame

import "time"

// Clock 单调时钟，返回自启动以来经过的时间
type Clock interface {
	Now() time.Duration
}

// SystemClock 基于系统单调时间的时钟
type SystemClock struct {
	start time.Time
}

// NewSystemClock 创建以当前时刻为零点的时钟
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now 返回自创建以来经过的时间
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock 手动推进的时钟
// 用于测试和离屏工具，使帧时间完全可控
type ManualClock struct {
	now time.Duration
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance 将时钟向前推进 d
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Set 将时钟设置到指定时刻（不允许回退）
func (c *ManualClock) Set(now time.Duration) {
	if now > c.now {
		c.now = now
	}
}

// Milliseconds 将时间戳转换为浮点毫秒（与浏览器高精度时间戳同一单位）
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
