package scalarstar

import "container/heap"

// Frontier pairs the priority queue with the authoritative open-set
// membership. Superseded heap entries are never removed eagerly; Pop drops
// them when they surface.
type Frontier struct {
	queue        PriorityQueue
	members      map[uint64]Point
	nextSequence uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	frontier := &Frontier{
		queue:   make(PriorityQueue, 0),
		members: make(map[uint64]Point),
	}
	heap.Init(&frontier.queue)
	return frontier
}

// Open marks point as a frontier member and enqueues it with fScore.
func (frontier *Frontier) Open(point Point, fScore float64) {
	frontier.members[point.Key()] = point
	heap.Push(&frontier.queue, PriorityQueueItem{
		Point:    point,
		FScore:   fScore,
		Sequence: frontier.nextSequence,
	})
	frontier.nextSequence++
}

// Pop returns the lowest-scored live entry and removes it from the open set.
// Entries whose state is no longer open are discarded on the way.
func (frontier *Frontier) Pop() (PriorityQueueItem, bool) {
	for frontier.queue.Len() > 0 {
		item := heap.Pop(&frontier.queue).(PriorityQueueItem)
		key := item.Point.Key()
		if _, live := frontier.members[key]; !live {
			continue
		}
		delete(frontier.members, key)
		return item, true
	}
	return PriorityQueueItem{}, false
}

// Contains reports whether point is currently open.
func (frontier *Frontier) Contains(point Point) bool {
	_, live := frontier.members[point.Key()]
	return live
}

// Len is the number of open states.
func (frontier *Frontier) Len() int { return len(frontier.members) }

// HeapLen is the number of queued entries, stale ones included.
func (frontier *Frontier) HeapLen() int { return frontier.queue.Len() }

// Members returns a copy of the open states.
func (frontier *Frontier) Members() []Point {
	points := make([]Point, 0, len(frontier.members))
	for _, point := range frontier.members {
		points = append(points, point)
	}
	return points
}
