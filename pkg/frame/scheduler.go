package frame

import "time"

// Callback 帧回调，参数为本帧的时间戳
type Callback func(now time.Duration)

// RequestID 帧请求标识，可用于取消
type RequestID uint64

type request struct {
	id RequestID
	cb Callback
}

// Scheduler 显示刷新调度器
//
// RequestFrame 注册的回调会在下一次 Dispatch 中执行且只执行一次；
// 在 Dispatch 过程中新注册的回调推迟到再下一次 Dispatch。
type Scheduler struct {
	nextID  RequestID
	queue   []request
	pending map[RequestID]struct{}
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID:  1,
		pending: make(map[RequestID]struct{}),
	}
}

// RequestFrame 请求在下一帧执行 cb
func (s *Scheduler) RequestFrame(cb Callback) RequestID {
	id := s.nextID
	s.nextID++
	s.queue = append(s.queue, request{id: id, cb: cb})
	s.pending[id] = struct{}{}
	return id
}

// CancelFrame 取消尚未执行的请求
// 对已执行或未知的 ID 调用是安全的空操作
func (s *Scheduler) CancelFrame(id RequestID) {
	delete(s.pending, id)
}

// Pending 返回尚未执行的请求数量
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Dispatch 执行本帧之前注册的所有回调，返回实际执行的数量
func (s *Scheduler) Dispatch(now time.Duration) int {
	batch := s.queue
	s.queue = nil

	ran := 0
	for _, r := range batch {
		if _, ok := s.pending[r.id]; !ok {
			continue // 已取消
		}
		delete(s.pending, r.id)
		r.cb(now)
		ran++
	}
	return ran
}
