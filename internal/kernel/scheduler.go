package kernel

import "container/heap"

// SchedulerEvent is a pending invocation of a steppable component, ordered
// by Clock ascending (earliest first). Seq is a monotonically increasing
// insertion counter used only to keep ties between equal clocks stable
// within a run; CHIP-8 timing never depends on which of two
// same-timestamp components runs first.
type SchedulerEvent struct {
	Clock     Instant
	Component Component
	Seq       uint64
}

// eventQueue is a min-heap of SchedulerEvents keyed by (Clock, Seq).
type eventQueue []*SchedulerEvent

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].Clock != q[j].Clock {
		return q[i].Clock < q[j].Clock
	}
	return q[i].Seq < q[j].Seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) {
	*q = append(*q, x.(*SchedulerEvent))
}

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ heap.Interface = (*eventQueue)(nil)
