package scalarstar

// PriorityQueueItem is an immutable heap entry. The state's current best
// score lives in the Ledger; an item only records the f-score it was pushed with.
type PriorityQueueItem struct {
	Point    Point
	FScore   float64
	Sequence uint64
}

// PriorityQueue is a min-heap on FScore. Equal scores pop in insertion order.
type PriorityQueue []PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }
func (queue PriorityQueue) Less(i, j int) bool {
	if queue[i].FScore != queue[j].FScore {
		return queue[i].FScore < queue[j].FScore
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
