package reconstruct

import (
	"container/list"

	"github.com/chazu/ballpivot/pkg/topology"
)

// frontQueue is the active front: a double-ended sequence of edges pending
// pivot, supporting push-front, push-back, and pop-front. Membership is
// advisory — an edge popped off the queue must be re-checked for Front type
// because its status may have changed since it was enqueued.
type frontQueue struct {
	l *list.List
}

func newFrontQueue() *frontQueue {
	return &frontQueue{l: list.New()}
}

func (q *frontQueue) pushFront(e *topology.Edge) {
	q.l.PushFront(e)
}

func (q *frontQueue) pushBack(e *topology.Edge) {
	q.l.PushBack(e)
}

func (q *frontQueue) popFront() (*topology.Edge, bool) {
	front := q.l.Front()
	if front == nil {
		return nil, false
	}
	q.l.Remove(front)
	return front.Value.(*topology.Edge), true
}

func (q *frontQueue) empty() bool {
	return q.l.Len() == 0
}
