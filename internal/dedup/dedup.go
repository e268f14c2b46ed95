// Package dedup suppresses re-execution of a repeated alert within the same
// wall-clock second.
package dedup

import (
	"sync"
	"time"
)

// Suppressor 按「order id + 整秒时间戳」去重。
// 内部只保留每个 order id 最近一次放行的秒数，并在写入时顺带清理
// 超出窗口的陈旧条目，内存上界为活跃 order id 的数量。
// 注意：这是粗粒度的秒级防抖，不是幂等保证——相隔一秒的相同信号不会被拦截。
type Suppressor struct {
	mu       sync.Mutex
	lastSeen map[string]int64
	window   int64 // seconds before an idle entry is swept
}

func NewSuppressor(window time.Duration) *Suppressor {
	sec := int64(window / time.Second)
	if sec <= 0 {
		sec = 1
	}
	return &Suppressor{
		lastSeen: make(map[string]int64),
		window:   sec,
	}
}

// CheckAndMark returns true when an alert for the same identifier was already
// let through during the same integer second (caller must skip execution).
// Otherwise it records the identifier for the current second and returns false.
func (s *Suppressor) CheckAndMark(orderID string, now time.Time) bool {
	sec := now.Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.lastSeen[orderID]; ok && last == sec {
		return true
	}
	s.sweepLocked(sec)
	s.lastSeen[orderID] = sec
	return false
}

// Len reports the number of tracked identifiers.
func (s *Suppressor) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lastSeen)
}

func (s *Suppressor) sweepLocked(nowSec int64) {
	for id, last := range s.lastSeen {
		if nowSec-last > s.window {
			delete(s.lastSeen, id)
		}
	}
}
