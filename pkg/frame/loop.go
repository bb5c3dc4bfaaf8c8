package frame

import "time"

// Loop 可取消的循环帧任务
//
// 每帧先重新注册自身，再执行 tick，因此 tick 内部调用 Stop 也能正确终止循环。
type Loop struct {
	scheduler *Scheduler
	tick      Callback
	requestID RequestID
	running   bool
}

// NewLoop 创建循环任务（创建后处于停止状态）
func NewLoop(s *Scheduler, tick Callback) *Loop {
	return &Loop{
		scheduler: s,
		tick:      tick,
	}
}

// Start 开始循环，重复调用无副作用
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.requestID = l.scheduler.RequestFrame(l.run)
}

// Stop 停止循环并取消已注册的下一帧
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.scheduler.CancelFrame(l.requestID)
}

// Running 返回循环是否在运行
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) run(now time.Duration) {
	if !l.running {
		return
	}
	l.requestID = l.scheduler.RequestFrame(l.run)
	l.tick(now)
}
